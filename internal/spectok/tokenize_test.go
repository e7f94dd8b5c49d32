package spectok

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenizeMetaPatternsSplitsLetLine(t *testing.T) {
	patterns := MetaPatterns()
	symbols, j := Tokenize([]byte("let digit = ['0'-'9']\n"), patterns, Longest)
	require.False(t, j.HasErrors(), "journal: %v", j.Entries())

	var types []string
	for _, s := range symbols {
		types = append(types, s.Type)
	}
	require.Equal(t, []string{TypeID, TypeWS, TypeID, TypeWS, TypeEQ, TypeWS, TypeEXPR, TypeWS}, types)
}

func TestTokenizeRecordsErrorOnUnmatchedByte(t *testing.T) {
	patterns := MetaPatterns()
	_, j := Tokenize([]byte("let x # y"), patterns, Longest)
	require.True(t, j.HasErrors())
}

func TestTokenizeCommentPattern(t *testing.T) {
	patterns := MetaPatterns()
	symbols, j := Tokenize([]byte("(* a comment, with punctuation. *)"), patterns, Longest)
	require.False(t, j.HasErrors(), "journal: %v", j.Entries())
	require.Len(t, symbols, 1)
	require.Equal(t, TypeCOMMENT, symbols[0].Type)
}

func TestTokenizeReturnBlock(t *testing.T) {
	patterns := MetaPatterns()
	symbols, j := Tokenize([]byte("{ return token }"), patterns, Longest)
	require.False(t, j.HasErrors(), "journal: %v", j.Entries())
	require.Len(t, symbols, 1)
	require.Equal(t, TypeRETURN, symbols[0].Type)
}

func TestLetAndRulePatternsRecognizeTheirOwnLiteralPrefix(t *testing.T) {
	let := LetPattern()
	require.True(t, let.Ready())
	require.Equal(t, "ID", let.AliasName)
	require.Equal(t, 3, let.DFA.Simulate([]byte("let")))
	// Simulate reports the longest accepting prefix, not a full-string
	// match: "letter" starts with "let" so this returns 3, the same
	// prefix-match quirk the MATCH verb relies on (sequencer.go's match).
	require.Equal(t, 3, let.DFA.Simulate([]byte("letter")))

	rule := RulePattern()
	require.True(t, rule.Ready())
	require.Equal(t, 4, rule.DFA.Simulate([]byte("rule")))
}

func TestExprSubPatternsShortestNonzeroSplitsIdentifierReference(t *testing.T) {
	sub := ExprSubPatterns()
	symbols, j := Tokenize([]byte("digit | letter"), sub, ShortestNonzero)
	require.False(t, j.HasErrors(), "journal: %v", j.Entries())

	symbols = FilterOut(symbols, TypeWS)
	var types []string
	for _, s := range symbols {
		types = append(types, s.Type)
	}
	require.Equal(t, []string{TypeID, TypeOPERATOR, TypeID}, types)
}

func TestExprSubPatternsRecognizeGroupAndChar(t *testing.T) {
	sub := ExprSubPatterns()
	symbols, j := Tokenize([]byte("['0'-'9']'x'"), sub, ShortestNonzero)
	require.False(t, j.HasErrors(), "journal: %v", j.Entries())
	require.Len(t, symbols, 2)
	require.Equal(t, TypeGROUP, symbols[0].Type)
	require.Equal(t, TypeCHAR, symbols[1].Type)
}

func TestFilterOutRemovesNamedTypes(t *testing.T) {
	symbols := []Symbol{
		newSymbol(TypeWS, []byte(" ")),
		newSymbol(TypeID, []byte("digit")),
		newSymbol(TypeCOMMENT, []byte("(* c *)")),
	}
	out := FilterOut(symbols, TypeWS, TypeCOMMENT)
	require.Len(t, out, 1)
	require.Equal(t, TypeID, out[0].Type)
}
