package expr

// precedence order, low to high: OR < CONCAT < {STAR, PLUS, QUESTION}.
// Literal bytes are given the highest precedence of all (trivialPrecedence)
// so that, once pushed, they are drained to the output by the very next
// token processed — effectively sending them straight through while still
// sharing the single operator-stack discipline of the rest of the
// algorithm.
const trivialPrecedence = 100

func precedenceOf(a Atom) int {
	if a.Kind == KindLiteral {
		return trivialPrecedence
	}
	switch a.Op {
	case LParen, RParen:
		// Never drained by ordinary precedence comparison: parentheses
		// are only removed by the explicit RPAREN handling below.
		return -1
	case Or:
		return 1
	case Concat:
		return 2
	case KleeneStar, OneOrMore, ZeroOrOne:
		return 3
	default:
		return trivialPrecedence
	}
}

// ShuntingYard converts an infix atom sequence (with explicit
// concatenation already inserted) into postfix notation (step 5).
// LPAREN/RPAREN never appear in the output. All operators are
// left-associative.
func ShuntingYard(atoms Atoms) Atoms {
	var postfix Atoms
	var stack Atoms

	for _, c := range atoms {
		switch {
		case c.IsOp(LParen):
			stack = append(stack, c)
		case c.IsOp(RParen):
			for len(stack) > 0 && !stack[len(stack)-1].IsOp(LParen) {
				postfix = append(postfix, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) > 0 {
				stack = stack[:len(stack)-1] // drop the matching LPAREN
			}
		default:
			cPrec := precedenceOf(c)
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if precedenceOf(top) >= cPrec {
					postfix = append(postfix, top)
					stack = stack[:len(stack)-1]
				} else {
					break
				}
			}
			stack = append(stack, c)
		}
	}

	for len(stack) > 0 {
		postfix = append(postfix, stack[len(stack)-1])
		stack = stack[:len(stack)-1]
	}
	return postfix
}
