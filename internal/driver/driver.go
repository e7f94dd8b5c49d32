// Package driver composes the compiler core into a single Run call
// (spec.md §4's full pipeline, app.py's main), so the whole thing is
// testable without a subprocess and cmd/yalgen stays a thin CLI shell.
package driver

import (
	"fmt"
	"os"

	"github.com/chamale-rac/xcompi-c/internal/artifact"
	"github.com/chamale-rac/xcompi-c/internal/errjournal"
	"github.com/chamale-rac/xcompi-c/internal/pattern"
	"github.com/chamale-rac/xcompi-c/internal/sequencer"
	"github.com/chamale-rac/xcompi-c/internal/spectok"
)

// Config is the set of inputs a single compile run needs.
type Config struct {
	SpecPath string
	// Source, when non-nil, is used instead of reading SpecPath from
	// disk. Tests set this directly; cmd/yalgen leaves it nil.
	Source []byte

	ArtifactDir  string
	DrawSubtrees bool
}

// Stage names one step of the pipeline and the journal it produced.
type Stage struct {
	Name    string
	Journal *errjournal.Journal
}

// Result is everything a caller might want to report after Run.
type Result struct {
	IOError error

	Stages []Stage

	LetIdents map[string][]byte
	LetOrder  []string
	RuleName  string

	Final *pattern.Pattern

	ArtifactPaths []string

	Ok bool

	// drawSubtreesFlag mirrors Config.DrawSubtrees so writeArtifacts can
	// gate the per-identifier dumps on it without threading cfg through.
	drawSubtreesFlag bool
}

func (r *Result) fail(name string, j *errjournal.Journal) {
	r.Stages = append(r.Stages, Stage{Name: name, Journal: j})
	r.Ok = false
}

func (r *Result) ok(name string, j *errjournal.Journal) {
	r.Stages = append(r.Stages, Stage{Name: name, Journal: j})
}

// Run reads (or uses cfg.Source), tokenizes, sequences the let and rule
// passes, assembles and builds the final pattern, and — when
// cfg.ArtifactDir is set — writes diagnostic dumps.
func Run(cfg Config) Result {
	r := Result{LetIdents: map[string][]byte{}, drawSubtreesFlag: cfg.DrawSubtrees}

	source := cfg.Source
	if source == nil {
		data, err := os.ReadFile(cfg.SpecPath)
		if err != nil {
			r.IOError = err
			return r
		}
		source = data
	}

	symbols, j := spectok.Tokenize(source, spectok.MetaPatterns(), spectok.Longest)
	if j.HasErrors() {
		r.fail("tokenize", j)
		return r
	}
	r.ok("tokenize", j)

	filtered := spectok.FilterOut(symbols, spectok.TypeCOMMENT, spectok.TypeRETURN)

	letSeq := sequencer.New(filtered, sequencer.LetTemplate(), spectok.ExprSubPatterns(), spectok.TypeID)
	letSeq.Run()
	if letSeq.Journal.HasErrors() {
		r.fail("let-pass", letSeq.Journal)
		return r
	}
	r.ok("let-pass", letSeq.Journal)
	r.LetIdents = letSeq.Idents
	r.LetOrder = letSeq.IdentNames()

	if cfg.DrawSubtrees {
		r.drawSubtrees(letSeq)
	}

	ruleSeq := sequencer.New(filtered, sequencer.RuleTemplate(), nil, "")
	ruleSeq.Run()
	if ruleSeq.Journal.HasErrors() {
		r.fail("rule-pass", ruleSeq.Journal)
		return r
	}
	if len(ruleSeq.Reminders) == 0 {
		noRule := errjournal.New()
		noRule.Add("no rule found", "check that a rule is defined in the spec file")
		r.fail("rule-pass", noRule)
		return r
	}
	r.ok("rule-pass", ruleSeq.Journal)
	r.RuleName = firstIdentName(ruleSeq.IdentNames())

	finalSource, j := sequencer.AssembleRule(ruleSeq.Reminders, spectok.ExprSubPatterns(), spectok.TypeID, letSeq.Idents)
	if j.HasErrors() {
		r.fail("rule-assembly", j)
		return r
	}
	r.ok("rule-assembly", j)

	final := pattern.New(r.RuleName, string(finalSource))
	final.Build()
	r.Final = final
	if !final.Ready() {
		r.fail("final-pattern", final.Journal)
		return r
	}
	r.ok("final-pattern", final.Journal)
	r.Ok = true

	if cfg.ArtifactDir != "" {
		r.writeArtifacts(cfg.ArtifactDir, letSeq)
	}

	return r
}

func firstIdentName(names []string) string {
	if len(names) == 0 {
		return "RULE"
	}
	return names[0]
}

// drawSubtrees builds a throwaway Pattern for every let identifier,
// mirroring app.py's optional "draw_subtrees" pass, and records a warning
// stage for each one that fails to build: a broken individual subtree
// never aborts the compile. It writes nothing; writeArtifacts builds the
// patterns again and writes their dumps.
func (r *Result) drawSubtrees(letSeq *sequencer.Sequencer) {
	for _, name := range letSeq.IdentNames() {
		p := pattern.New(name, string(letSeq.Idents[name]))
		p.Build()
		if !p.Ready() {
			warn := errjournal.New()
			warn.Warn(fmt.Sprintf("subtree for %q could not be built", name), "skipped")
			warn.Merge(p.Journal)
			r.Stages = append(r.Stages, Stage{Name: "draw-subtree:" + name, Journal: warn})
		}
	}
}

// writeArtifacts always writes the final rule's AST/DFA dumps, then —
// only when DrawSubtrees was requested — writes the same pair for every
// let identifier (app.py's final draw is unconditional; the per-ident
// subtree draws are gated on draw_subtrees).
func (r *Result) writeArtifacts(dir string, letSeq *sequencer.Sequencer) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		r.noteArtifactFailure(err)
		return
	}

	if path, err := artifact.WriteTreeDump(dir, r.Final.Name, r.Final.Root); err != nil {
		r.noteArtifactFailure(err)
	} else {
		r.ArtifactPaths = append(r.ArtifactPaths, path)
	}
	if path, err := artifact.WriteDFADump(dir, r.Final.Name, r.Final.DFA); err != nil {
		r.noteArtifactFailure(err)
	} else {
		r.ArtifactPaths = append(r.ArtifactPaths, path)
	}

	if !r.drawSubtreesFlag {
		return
	}

	for _, name := range letSeq.IdentNames() {
		p := pattern.New(name, string(letSeq.Idents[name]))
		p.Build()
		if !p.Ready() {
			continue
		}
		if path, err := artifact.WriteTreeDump(dir, name, p.Root); err == nil {
			r.ArtifactPaths = append(r.ArtifactPaths, path)
		}
		if path, err := artifact.WriteDFADump(dir, name, p.DFA); err == nil {
			r.ArtifactPaths = append(r.ArtifactPaths, path)
		}
	}
}

func (r *Result) noteArtifactFailure(err error) {
	warn := errjournal.New()
	warn.Warn(fmt.Sprintf("artifact write failed: %v", err), "artifacts skipped")
	r.Stages = append(r.Stages, Stage{Name: "artifacts", Journal: warn})
}

