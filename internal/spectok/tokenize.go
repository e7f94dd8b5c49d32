package spectok

import (
	"fmt"

	"github.com/chamale-rac/xcompi-c/internal/errjournal"
	"github.com/chamale-rac/xcompi-c/internal/pattern"
)

// Mode selects how the winning pattern is chosen among those that
// produced a nonzero accepting prefix at the current cursor.
type Mode int

const (
	// Longest picks the pattern with the greatest accepting prefix
	// length, ties broken by the smaller index in the pattern list
	// (insertion order). This is the mode used to tokenize a YAL spec
	// file.
	Longest Mode = iota
	// ShortestNonzero picks the smallest nonzero accepting prefix
	// length, ties broken the same way. It is used when inlining
	// identifier references inside a let-expression body so a reference
	// matches the identifier token rather than a longer literal.
	ShortestNonzero
)

// Tokenize scans source left to right against an ordered list of ready
// patterns, producing one Symbol per scan step (spec.md §4.6). It stops
// at the first offset where every pattern fails to match, recording a
// lexical error naming the offset and the unmatched remainder unless
// that offset is the end of input.
func Tokenize(source []byte, patterns []*pattern.Pattern, mode Mode) ([]Symbol, *errjournal.Journal) {
	j := errjournal.New()
	var symbols []Symbol
	cursor := 0

	for cursor < len(source) {
		winnerIdx := -1
		winnerLen := 0

		for idx, p := range patterns {
			if !p.Ready() {
				continue
			}
			length := p.DFA.Simulate(source[cursor:])
			if length == 0 {
				continue
			}
			switch mode {
			case Longest:
				if winnerIdx == -1 || length > winnerLen {
					winnerIdx, winnerLen = idx, length
				}
			case ShortestNonzero:
				if winnerIdx == -1 || length < winnerLen {
					winnerIdx, winnerLen = idx, length
				}
			}
		}

		if winnerIdx == -1 {
			remainder := source[cursor:]
			if len(remainder) > 32 {
				remainder = remainder[:32]
			}
			j.Addf("lexical error recovery", "no pattern matches at offset %d: %q", cursor, string(remainder))
			break
		}

		winner := patterns[winnerIdx]
		symbols = append(symbols, newSymbol(winner.AliasName, source[cursor:cursor+winnerLen]))
		cursor += winnerLen
	}

	return symbols, j
}

// FilterOut returns symbols with every entry whose type is in excluded
// removed, preserving order. The driver uses it to drop comments and
// return blocks before the let and rule passes; whitespace symbols are
// kept there, and the whitespace of the rule's reminder is dropped while
// it is spliced, not by FilterOut.
func FilterOut(symbols []Symbol, excluded ...string) []Symbol {
	set := make(map[string]bool, len(excluded))
	for _, t := range excluded {
		set[t] = true
	}
	out := make([]Symbol, 0, len(symbols))
	for _, s := range symbols {
		if set[s.Type] {
			continue
		}
		out = append(out, s)
	}
	return out
}

// String renders a symbol for diagnostics.
func (s Symbol) String() string {
	return fmt.Sprintf("%s -> %q", s.Type, s.Original)
}
