package driver

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleSpec = `(* a minimal token spec *)
let digit = ['0'-'9']
let letter = ['a'-'z']
rule token = digit | letter
{ return token }
`

func TestRunBuildsFinalPatternFromSource(t *testing.T) {
	r := Run(Config{Source: []byte(sampleSpec)})

	require.NoError(t, r.IOError)
	require.True(t, r.Ok, "stages: %+v", r.Stages)
	require.Equal(t, []string{"digit", "letter"}, r.LetOrder)
	require.Equal(t, "token", r.RuleName)
	require.NotNil(t, r.Final)
	require.True(t, r.Final.Ready())

	require.Equal(t, 1, r.Final.DFA.Simulate([]byte("5")))
	require.Equal(t, 1, r.Final.DFA.Simulate([]byte("z")))
	require.Equal(t, 0, r.Final.DFA.Simulate([]byte("!")))
}

func TestRunFailsWhenNoRuleIsPresent(t *testing.T) {
	r := Run(Config{Source: []byte("let digit = ['0'-'9']\n")})

	require.False(t, r.Ok)
	require.NotEmpty(t, r.Stages)
	last := r.Stages[len(r.Stages)-1]
	require.Equal(t, "rule-pass", last.Name)
	require.True(t, last.Journal.HasErrors())
}

func TestRunFailsOnUndefinedRuleReference(t *testing.T) {
	r := Run(Config{Source: []byte("rule token = digit | letter\n")})

	require.False(t, r.Ok)
	last := r.Stages[len(r.Stages)-1]
	require.Equal(t, "rule-assembly", last.Name)
}

func TestRunSetsIOErrorOnMissingFile(t *testing.T) {
	r := Run(Config{SpecPath: filepath.Join(t.TempDir(), "missing.yal")})
	require.Error(t, r.IOError)
	require.False(t, r.Ok)
}

func TestRunWritesArtifactsWhenDirIsSet(t *testing.T) {
	dir := t.TempDir()
	r := Run(Config{Source: []byte(sampleSpec), ArtifactDir: dir})

	require.True(t, r.Ok, "stages: %+v", r.Stages)
	require.NotEmpty(t, r.ArtifactPaths)
	for _, p := range r.ArtifactPaths {
		require.FileExists(t, p)
	}
	require.FileExists(t, filepath.Join(dir, "token_ast.txt"))
	require.NoFileExists(t, filepath.Join(dir, "digit_dfa.txt"))
}

func TestRunWritesSubtreeArtifactsOnlyWhenDrawSubtreesIsSet(t *testing.T) {
	dir := t.TempDir()
	r := Run(Config{Source: []byte(sampleSpec), ArtifactDir: dir, DrawSubtrees: true})

	require.True(t, r.Ok, "stages: %+v", r.Stages)
	require.FileExists(t, filepath.Join(dir, "token_ast.txt"))
	require.FileExists(t, filepath.Join(dir, "digit_dfa.txt"))
	require.FileExists(t, filepath.Join(dir, "letter_dfa.txt"))
}

func TestRunDrawSubtreesDoesNotFailWhenNoLetsDefined(t *testing.T) {
	r := Run(Config{Source: []byte("rule token = 'a'\n"), DrawSubtrees: true})
	require.True(t, r.Ok, "stages: %+v", r.Stages)
}
