// Package pattern packages a (name, source pattern, minimized DFA) triple
// as a first-class unit (spec.md §4.5), grounded on
// original_source/src/utils/patterns.py's Pattern.build pipeline.
package pattern

import (
	"github.com/chamale-rac/xcompi-c/internal/automaton"
	"github.com/chamale-rac/xcompi-c/internal/errjournal"
	"github.com/chamale-rac/xcompi-c/internal/expr"
	"github.com/chamale-rac/xcompi-c/internal/syntaxtree"
)

// Pattern binds a name and a source pattern string to the DFA products of
// building it. AliasName lets the sequencer recognize a reserved word
// (e.g. "let") while the pattern still emits the generic token type used
// for identifiers ("ID") — the renamed-output-type design from spec.md §9.
type Pattern struct {
	Name      string
	AliasName string
	Source    string

	Root     *syntaxtree.Node
	Alphabet []byte
	DFA      *automaton.DFA

	Journal *errjournal.Journal
}

// New constructs an unbuilt pattern. AliasName defaults to Name when
// empty, meaning the pattern's own name is the type it emits.
func New(name, source string) *Pattern {
	return &Pattern{Name: name, AliasName: name, Source: source, Journal: errjournal.New()}
}

// Aliased sets the output type name the pattern emits, leaving the
// pattern's own identity (Name) unchanged, and returns the receiver for
// chaining at construction time. It is how a reserved word such as "let"
// is represented: its Name stays "let" while AliasName is "ID", the type
// the sequencer actually sees emitted. No code in this module compares
// patterns by Name to detect duplicates.
func (p *Pattern) Aliased(alias string) *Pattern {
	p.AliasName = alias
	return p
}

// Build runs §4.1 -> §4.2 -> §4.3 -> §4.4 once. Any error recorded by a
// sub-stage is merged into the pattern's journal and p.DFA is left nil,
// which callers must treat as "this pattern cannot be used".
func (p *Pattern) Build() {
	postfix, j := expr.Preprocess(p.Source)
	p.Journal.Merge(j)
	if j.HasErrors() {
		return
	}

	root, alphabet, j2 := syntaxtree.Build(postfix)
	p.Journal.Merge(j2)
	if j2.HasErrors() {
		return
	}
	p.Root = root
	p.Alphabet = alphabet

	direct, j3 := automaton.BuildDirect(root, alphabet)
	p.Journal.Merge(j3)
	if j3.HasErrors() {
		return
	}

	p.DFA = automaton.Minimize(direct)
}

// Ready reports whether Build succeeded and p.DFA may be used.
func (p *Pattern) Ready() bool {
	return p.DFA != nil && !p.Journal.HasErrors()
}
