package pattern

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildSucceedsAndSimulates(t *testing.T) {
	p := New("DIGIT", "['0'-'9']")
	p.Build()
	require.True(t, p.Ready(), "journal: %v", p.Journal.Entries())
	require.Equal(t, 1, p.DFA.Simulate([]byte("5")))
	require.Equal(t, 0, p.DFA.Simulate([]byte("/")))
}

func TestBuildRecordsUnbalancedParenError(t *testing.T) {
	p := New("BAD", "(a|b")
	p.Build()
	require.False(t, p.Ready())
	require.True(t, p.Journal.HasErrors())
	require.Nil(t, p.DFA)
}

func TestAliasedKeepsNameForIdentityButChangesEmittedType(t *testing.T) {
	p := New("let", "let").Aliased("ID")
	require.Equal(t, "let", p.Name)
	require.Equal(t, "ID", p.AliasName)
}
