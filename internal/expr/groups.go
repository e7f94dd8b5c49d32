package expr

import (
	"sort"

	"github.com/chamale-rac/xcompi-c/internal/errjournal"
)

// literalize converts a structural operator atom into the literal byte
// of the character it was parsed from, for use when that character
// appears inside a quoted region of a character group (where its
// structural meaning is suppressed).
func literalize(a Atom) Atom {
	if a.Kind == KindLiteral {
		return a
	}
	return Lit(byte(a.Op.String()[0]))
}

// TransformGroupsOfCharacters expands every `[...]` bracket group into an
// explicit `( b1 | b2 | ... | bn )` alternation over its constituent
// bytes (step 3). Ranges `a-b` inside a group are expanded to the
// inclusive set of byte codes between a and b. The result set is
// deduplicated and emitted in ascending byte order so that alternation
// order, and therefore later DFA state numbering, stays reproducible
// across runs. Outside a group, a quoted region ('c' or "text") becomes
// a parenthesized run of its characters as literal bytes.
func TransformGroupsOfCharacters(atoms Atoms, j *errjournal.Journal) Atoms {
	result := make(Atoms, 0, len(atoms))
	idx := 0

	for idx < len(atoms) {
		a := atoms[idx]
		if a.IsOp(SingleQuote) || a.IsOp(DoubleQuote) {
			closing := a.Op
			idx++
			result = append(result, Op(LParen))
			for idx < len(atoms) && !atoms[idx].IsOp(closing) {
				result = append(result, literalize(atoms[idx]))
				idx++
			}
			result = append(result, Op(RParen))
			idx++ // consume the closing quote
			continue
		}
		if !a.IsOp(LBracket) {
			result = append(result, a)
			idx++
			continue
		}

		idx++ // consume '['
		var collected Atoms

		for idx < len(atoms) && !atoms[idx].IsOp(RBracket) {
			switch {
			case atoms[idx].IsOp(SingleQuote):
				idx++
				for idx < len(atoms) && !atoms[idx].IsOp(SingleQuote) {
					switch {
					case atoms[idx].IsOp(Range):
						collected = append(collected, Lit('-'))
					case atoms[idx].IsOp(OneOrMore):
						collected = append(collected, Lit('+'))
					case atoms[idx].IsLiteral():
						collected = append(collected, atoms[idx])
					default:
						collected = append(collected, literalize(atoms[idx]))
					}
					idx++
				}
			case atoms[idx].IsOp(DoubleQuote):
				idx++
				for idx < len(atoms) && !atoms[idx].IsOp(DoubleQuote) {
					if atoms[idx].IsLiteral() {
						collected = append(collected, atoms[idx])
					} else {
						collected = append(collected, literalize(atoms[idx]))
					}
					idx++
				}
			case atoms[idx].IsOp(Range):
				collected = append(collected, Op(Range))
			}
			idx++
		}
		if idx >= len(atoms) {
			j.Add("unterminated character group", "group expansion aborted")
			return result
		}
		idx++ // consume ']'

		bytes, ok := resolveGroup(collected, j)
		if !ok {
			return result
		}
		if len(bytes) == 0 {
			j.Add("empty character group", "group expansion aborted")
			return result
		}

		result = append(result, Op(LParen))
		for i, b := range bytes {
			if i > 0 {
				result = append(result, Op(Or))
			}
			result = append(result, Lit(b))
		}
		result = append(result, Op(RParen))
	}

	return result
}

// resolveGroup expands the collected range/literal markers of one group
// body into a deduplicated, sorted set of byte values.
func resolveGroup(collected Atoms, j *errjournal.Journal) ([]byte, bool) {
	set := map[byte]struct{}{}

	for i := 0; i < len(collected); i++ {
		if collected[i].IsOp(Range) {
			if i == 0 || i+1 >= len(collected) {
				j.Add("range operator '-' is missing an operand", "group expansion aborted")
				return nil, false
			}
			lo := collected[i-1].Literal
			hi := collected[i+1].Literal
			if hi < lo {
				j.Addf("group expansion aborted", "invalid range %d-%d: end is less than start", lo, hi)
				return nil, false
			}
			for b := int(lo); b <= int(hi); b++ {
				set[byte(b)] = struct{}{}
			}
			continue
		}
		if collected[i].IsLiteral() {
			set[collected[i].Literal] = struct{}{}
		}
	}

	out := make([]byte, 0, len(set))
	for b := range set {
		out = append(out, b)
	}
	sort.Slice(out, func(i, k int) bool { return out[i] < out[k] })
	return out, true
}
