package sequencer

import (
	"testing"

	"github.com/chamale-rac/xcompi-c/internal/spectok"
	"github.com/stretchr/testify/require"
)

func tokenizeLetRule(t *testing.T, source string) []spectok.Symbol {
	t.Helper()
	symbols, j := spectok.Tokenize([]byte(source), spectok.MetaPatterns(), spectok.Longest)
	require.False(t, j.HasErrors(), "journal: %v", j.Entries())
	return spectok.FilterOut(symbols, spectok.TypeCOMMENT, spectok.TypeRETURN)
}

func TestLetPassExtractsSimpleBinding(t *testing.T) {
	symbols := tokenizeLetRule(t, "let digit = ['0'-'9']\n")
	seq := New(symbols, LetTemplate(), spectok.ExprSubPatterns(), spectok.TypeID)
	seq.Run()

	require.False(t, seq.Journal.HasErrors(), "journal: %v", seq.Journal.Entries())
	require.Equal(t, []string{"digit"}, seq.IdentNames())
	require.Equal(t, "['0'-'9']", string(seq.Idents["digit"]))
}

func TestLetPassWrapsAroundForMultipleBindings(t *testing.T) {
	symbols := tokenizeLetRule(t, "let digit = ['0'-'9']\nlet letter = ['a'-'z']\n")
	seq := New(symbols, LetTemplate(), spectok.ExprSubPatterns(), spectok.TypeID)
	seq.Run()

	require.False(t, seq.Journal.HasErrors(), "journal: %v", seq.Journal.Entries())
	require.Equal(t, []string{"digit", "letter"}, seq.IdentNames())
	require.Equal(t, "['a'-'z']", string(seq.Idents["letter"]))
}

func TestLetPassInlinesPriorIdentifier(t *testing.T) {
	symbols := tokenizeLetRule(t, "let digit = ['0'-'9']\nlet num = digit+\n")
	seq := New(symbols, LetTemplate(), spectok.ExprSubPatterns(), spectok.TypeID)
	seq.Run()

	require.False(t, seq.Journal.HasErrors(), "journal: %v", seq.Journal.Entries())
	require.Equal(t, "['0'-'9']+", string(seq.Idents["num"]))
}

func TestLetPassRedefinitionWarnsAndKeepsLastDefinition(t *testing.T) {
	symbols := tokenizeLetRule(t, "let digit = ['0'-'9']\nlet digit = ['1'-'9']\n")
	seq := New(symbols, LetTemplate(), spectok.ExprSubPatterns(), spectok.TypeID)
	seq.Run()

	require.False(t, seq.Journal.HasErrors())
	entries := seq.Journal.Entries()
	require.Len(t, entries, 1)
	require.Equal(t, []string{"digit"}, seq.IdentNames())
	require.Equal(t, "['1'-'9']", string(seq.Idents["digit"]))
}

func TestLetPassUndefinedReferenceIsAnError(t *testing.T) {
	symbols := tokenizeLetRule(t, "let num = missing+\n")
	seq := New(symbols, LetTemplate(), spectok.ExprSubPatterns(), spectok.TypeID)
	seq.Run()

	require.True(t, seq.Journal.HasErrors())
}

func TestRulePassExtractsReminder(t *testing.T) {
	symbols := tokenizeLetRule(t, "rule token = digit | letter\n")
	seq := New(symbols, RuleTemplate(), nil, "")
	seq.Run()

	require.False(t, seq.Journal.HasErrors(), "journal: %v", seq.Journal.Entries())
	require.Equal(t, []string{"token"}, seq.IdentNames())
	require.NotEmpty(t, seq.Reminders)
}

func TestAssembleRuleInlinesIdentifiersFromRuleReminder(t *testing.T) {
	letSymbols := tokenizeLetRule(t, "let digit = ['0'-'9']\nlet letter = ['a'-'z']\n")
	letSeq := New(letSymbols, LetTemplate(), spectok.ExprSubPatterns(), spectok.TypeID)
	letSeq.Run()
	require.False(t, letSeq.Journal.HasErrors())

	ruleSymbols := tokenizeLetRule(t, "rule token = digit | letter\n")
	ruleSeq := New(ruleSymbols, RuleTemplate(), nil, "")
	ruleSeq.Run()
	require.False(t, ruleSeq.Journal.HasErrors())
	require.NotEmpty(t, ruleSeq.Reminders)

	final, j := AssembleRule(ruleSeq.Reminders, spectok.ExprSubPatterns(), spectok.TypeID, letSeq.Idents)
	require.False(t, j.HasErrors(), "journal: %v", j.Entries())
	require.Equal(t, "['0'-'9']|['a'-'z']", string(final))
}

func TestAssembleRuleUndefinedReferenceIsAnError(t *testing.T) {
	ruleSymbols := tokenizeLetRule(t, "rule token = digit\n")
	ruleSeq := New(ruleSymbols, RuleTemplate(), nil, "")
	ruleSeq.Run()
	require.False(t, ruleSeq.Journal.HasErrors())

	_, j := AssembleRule(ruleSeq.Reminders, spectok.ExprSubPatterns(), spectok.TypeID, map[string][]byte{})
	require.True(t, j.HasErrors())
}

func TestRulePassWithNoRuleLeavesRemindersEmpty(t *testing.T) {
	symbols := tokenizeLetRule(t, "let digit = ['0'-'9']\n")
	seq := New(symbols, RuleTemplate(), nil, "")
	seq.Run()

	require.Empty(t, seq.Reminders)
}
