package syntaxtree

import (
	"sort"

	"github.com/chamale-rac/xcompi-c/internal/errjournal"
	"github.com/chamale-rac/xcompi-c/internal/expr"
)

// Build constructs a syntax tree from a postfix atom sequence (spec.md
// §4.2): literal bytes push leaves, KLEENE_STAR pops one operand,
// ZERO_OR_ONE desugars to OR(x, EPSILON), ONE_OR_MORE desugars to
// CONCAT(STAR(x), copy(x)) using a deep copy so the two subtrees receive
// distinct positions later, and OR/CONCAT pop two operands (right then
// left). It also collects the literal alphabet encountered, sorted in
// ascending byte order.
func Build(postfix expr.Atoms) (*Node, []byte, *errjournal.Journal) {
	j := errjournal.New()
	var stack []*Node
	alphabet := map[byte]struct{}{}

	for _, a := range postfix {
		switch {
		case a.IsLiteral():
			stack = append(stack, &Node{Kind: Literal, Byte: a.Literal})
			alphabet[a.Literal] = struct{}{}
		case a.IsOp(expr.KleeneStar):
			if len(stack) < 1 {
				j.Add("there is no operand to apply the Kleene star to", "invalid regular expression")
				return nil, nil, j
			}
			x := pop(&stack)
			stack = append(stack, &Node{Kind: Star, Left: x})
		case a.IsOp(expr.ZeroOrOne):
			if len(stack) < 1 {
				j.Add("there is no operand to apply the zero-or-one operator to", "invalid regular expression")
				return nil, nil, j
			}
			x := pop(&stack)
			stack = append(stack, &Node{Kind: Or, Left: x, Right: &Node{Kind: Epsilon}})
		case a.IsOp(expr.OneOrMore):
			if len(stack) < 1 {
				j.Add("there is no operand to apply the one-or-more operator to", "invalid regular expression")
				return nil, nil, j
			}
			x := pop(&stack)
			stack = append(stack, &Node{Kind: Concat, Left: &Node{Kind: Star, Left: x}, Right: x.DeepCopy()})
		case a.IsOp(expr.Or), a.IsOp(expr.Concat):
			if len(stack) < 2 {
				j.Addf("invalid regular expression", "not enough operands for operator %q", a.Op.String())
				return nil, nil, j
			}
			right := pop(&stack)
			left := pop(&stack)
			kind := Or
			if a.IsOp(expr.Concat) {
				kind = Concat
			}
			stack = append(stack, &Node{Kind: kind, Left: left, Right: right})
		default:
			j.Addf("invalid regular expression", "unexpected token %q in postfix expression", a.String())
			return nil, nil, j
		}
	}

	if len(stack) != 1 {
		j.Add("malformed postfix expression: stack is not a singleton at end of input", "invalid regular expression")
		return nil, nil, j
	}

	sortedAlphabet := make([]byte, 0, len(alphabet))
	for b := range alphabet {
		sortedAlphabet = append(sortedAlphabet, b)
	}
	sort.Slice(sortedAlphabet, func(i, k int) bool { return sortedAlphabet[i] < sortedAlphabet[k] })

	return stack[0], sortedAlphabet, j
}

func pop(stack *[]*Node) *Node {
	n := len(*stack)
	top := (*stack)[n-1]
	*stack = (*stack)[:n-1]
	return top
}
