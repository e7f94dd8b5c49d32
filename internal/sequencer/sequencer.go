// Package sequencer implements the spec sequencer (spec.md §4.7): a
// template-driven walk over an already-tokenized symbol stream that
// extracts let-bindings and the rule block from a YAL spec file,
// grounded on original_source/src/_yal_seq.py's YalSequencer.
package sequencer

import (
	"fmt"

	"github.com/chamale-rac/xcompi-c/internal/errjournal"
	"github.com/chamale-rac/xcompi-c/internal/pattern"
	"github.com/chamale-rac/xcompi-c/internal/spectok"
)

// Verb names the action a template entry performs against the symbol
// under the cursor.
type Verb int

const (
	// Match requires the symbol's type to equal the entry's Type AND
	// the entry's reserved-word pattern (its own compiled DFA) to accept
	// a nonzero prefix of the symbol's original bytes, e.g. the literal
	// text "let" or "rule". The whole symbol need not match: "letter"
	// passes the "let" check.
	Match Verb = iota
	// Exist requires only a type match.
	Exist
	// Ident requires a type match and records the symbol's text as the
	// identifier currently being defined.
	Ident
	// Value requires a type match, then re-tokenizes the symbol's
	// original bytes under a fixed set of sub-patterns and splices the
	// result into the value of the identifier currently being defined.
	Value
	// ExtractReminder is not a per-symbol verb: reaching it in the
	// template collects every remaining symbol and ends the walk.
	ExtractReminder
)

// TemplateEntry is one step of a sequencing template.
type TemplateEntry struct {
	// Type is the symbol type this entry expects. For Match it is the
	// alias type the reserved word emits (e.g. "ID"), not its identity.
	Type string
	Verb Verb
	// MatchPattern is consulted only when Verb == Match: its own DFA
	// must accept a nonzero prefix of the symbol text.
	MatchPattern *pattern.Pattern
}

// LetTemplate is the template that recognizes "let <id> = <expr>",
// repeated as many times as the symbol stream allows (app.py's yal_let
// sequence).
func LetTemplate() []TemplateEntry {
	let := spectok.LetPattern()
	return []TemplateEntry{
		{Type: let.AliasName, Verb: Match, MatchPattern: let},
		{Type: spectok.TypeWS, Verb: Exist},
		{Type: spectok.TypeID, Verb: Ident},
		{Type: spectok.TypeWS, Verb: Exist},
		{Type: spectok.TypeEQ, Verb: Exist},
		{Type: spectok.TypeWS, Verb: Exist},
		{Type: spectok.TypeEXPR, Verb: Value},
	}
}

// RuleTemplate is the template that recognizes "rule <id> =" and then
// collects everything after the '=' as the reminder (app.py's yal_rule
// sequence).
func RuleTemplate() []TemplateEntry {
	rule := spectok.RulePattern()
	return []TemplateEntry{
		{Type: rule.AliasName, Verb: Match, MatchPattern: rule},
		{Type: spectok.TypeWS, Verb: Exist},
		{Type: spectok.TypeID, Verb: Ident},
		{Type: spectok.TypeWS, Verb: Exist},
		{Type: spectok.TypeEQ, Verb: Exist},
		{Verb: ExtractReminder},
	}
}

// Sequencer walks Symbols against Template, accumulating Idents and,
// once the template reaches ExtractReminder, Reminders.
type Sequencer struct {
	Symbols  []spectok.Symbol
	Template []TemplateEntry
	// ExprSub is the pattern set used to re-tokenize an EXPR symbol's
	// body for the Value verb.
	ExprSub []*pattern.Pattern
	// ExtractType is the symbol type, among ExprSub's output types,
	// whose original text is looked up in Idents rather than spliced
	// verbatim (spec.md §4.7: identifier inlining).
	ExtractType string

	Idents       map[string][]byte
	identOrder   []string
	CurrentIdent string
	Reminders    []spectok.Symbol

	Journal *errjournal.Journal
}

// New constructs a sequencer ready to Run over symbols.
func New(symbols []spectok.Symbol, template []TemplateEntry, exprSub []*pattern.Pattern, extractType string) *Sequencer {
	return &Sequencer{
		Symbols:     symbols,
		Template:    template,
		ExprSub:     exprSub,
		ExtractType: extractType,
		Idents:      make(map[string][]byte),
		Journal:     errjournal.New(),
	}
}

// IdentNames returns the identifiers defined, in first-definition order.
func (s *Sequencer) IdentNames() []string {
	out := make([]string, len(s.identOrder))
	copy(out, s.identOrder)
	return out
}

// Run performs the two-cursor greedy resynchronization walk described by
// original_source/src/_yal_seq.py's extractIdent: a symbols cursor and a
// template cursor advance together on a match, the template cursor
// wraps around on completing a full cycle (permitting repeated
// bindings), and a failed step resets the template cursor and advances
// only the symbols cursor by one.
func (s *Sequencer) Run() {
	symbolsPointer := 0
	templatePointer := 0

	for symbolsPointer < len(s.Symbols) {
		entry := s.Template[templatePointer]

		if entry.Verb == ExtractReminder {
			s.Reminders = append(s.Reminders, s.Symbols[symbolsPointer:]...)
			return
		}

		var ok bool
		switch entry.Verb {
		case Match:
			ok = s.match(symbolsPointer, entry)
		case Exist:
			ok = s.exist(symbolsPointer, entry)
		case Ident:
			ok = s.ident(symbolsPointer, entry)
		case Value:
			ok = s.value(symbolsPointer, entry)
		}

		if ok {
			templatePointer++
			symbolsPointer++
			if templatePointer >= len(s.Template) {
				templatePointer = 0
			}
		} else {
			symbolsPointer++
			templatePointer = 0
		}
	}
}

func (s *Sequencer) exist(symbolsPointer int, entry TemplateEntry) bool {
	return s.Symbols[symbolsPointer].Type == entry.Type
}

func (s *Sequencer) match(symbolsPointer int, entry TemplateEntry) bool {
	if !s.exist(symbolsPointer, entry) {
		return false
	}
	symbol := s.Symbols[symbolsPointer]
	return entry.MatchPattern.DFA.Simulate(symbol.Original) > 0
}

func (s *Sequencer) ident(symbolsPointer int, entry TemplateEntry) bool {
	if !s.exist(symbolsPointer, entry) {
		return false
	}
	name := string(s.Symbols[symbolsPointer].Original)
	if _, redefined := s.Idents[name]; redefined {
		s.Journal.Warn(fmt.Sprintf("%q is redefined", name), "previous definition discarded, last definition wins")
	} else {
		s.identOrder = append(s.identOrder, name)
	}
	s.Idents[name] = nil
	s.CurrentIdent = name
	return true
}

func (s *Sequencer) value(symbolsPointer int, entry TemplateEntry) bool {
	if !s.exist(symbolsPointer, entry) {
		return false
	}
	symbol := s.Symbols[symbolsPointer]

	value, j := spliceExpression(symbol.Original, s.ExprSub, s.ExtractType, s.Idents)
	s.Journal.Merge(j)
	s.Idents[s.CurrentIdent] = value
	return true
}

// spliceExpression re-tokenizes raw under exprSub (shortest-nonzero
// match) and builds a new byte sequence: an extractType sub-symbol is
// replaced by its definition from idents (a fatal journal error if
// undefined), a CHAR sub-symbol contributes its escaped character byte,
// whitespace is dropped, and anything else is copied verbatim. This is
// the VALUE verb's splicing rule (spec.md §4.7), reused unchanged for
// the rule pass's final reminder assembly.
func spliceExpression(raw []byte, exprSub []*pattern.Pattern, extractType string, idents map[string][]byte) ([]byte, *errjournal.Journal) {
	j := errjournal.New()
	subSymbols, subJournal := spectok.Tokenize(raw, exprSub, spectok.ShortestNonzero)
	j.Merge(subJournal)

	var value []byte
	for _, sub := range subSymbols {
		switch {
		case sub.Type == spectok.TypeWS:
			continue
		case sub.Type == extractType:
			body, defined := idents[string(sub.Original)]
			if !defined {
				j.Addf("identifier reference left unresolved", "%q is not defined", string(sub.Original))
				continue
			}
			value = append(value, body...)
		case sub.Type == spectok.TypeCHAR:
			if len(sub.Original) >= 2 {
				value = append(value, sub.Original[1])
			}
		default:
			value = append(value, sub.Original...)
		}
	}

	return value, j
}

// AssembleRule concatenates a rule pass's reminder symbols back into raw
// bytes and splices identifier references the same way the VALUE verb
// does, producing the final rule expression's pattern-source text
// (spec.md §4.7: "the reminder of the rule pass is re-tokenized ...").
func AssembleRule(reminders []spectok.Symbol, exprSub []*pattern.Pattern, extractType string, idents map[string][]byte) ([]byte, *errjournal.Journal) {
	var raw []byte
	for _, r := range reminders {
		raw = append(raw, r.Original...)
	}
	return spliceExpression(raw, exprSub, extractType, idents)
}
