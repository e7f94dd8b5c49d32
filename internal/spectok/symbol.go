// Package spectok implements the spec tokenizer: a longest-match (and,
// for identifier inlining, shortest-nonzero-match) multi-DFA simulator
// that splits a YAL spec file into symbols, grounded on
// original_source/src/_lexer.py's Lexer.tokenize.
package spectok

// Symbol is a produced token: Type names the pattern that matched (or its
// alias, for reserved words), Content is the canonical byte form and
// Original preserves the exact source bytes including any quoting. The
// tokenizer sets both to the same copy of the matched source bytes, and
// no later stage rewrites Content: the sequencer's VALUE verb builds its
// spliced bytes into the identifier table from Original instead.
type Symbol struct {
	Type     string
	Content  []byte
	Original []byte
}

func newSymbol(typ string, raw []byte) Symbol {
	cp := append([]byte(nil), raw...)
	return Symbol{Type: typ, Content: cp, Original: cp}
}
