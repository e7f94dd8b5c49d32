package spectok

import "github.com/chamale-rac/xcompi-c/internal/pattern"

// Pattern-name constants shared by the spec tokenizer and the sequencer,
// grounded on original_source/src/utils/patterns.py.
const (
	TypeID      = "ID"
	TypeWS      = "WS"
	TypeEQ      = "EQ"
	TypeRETURN  = "RETURN"
	TypeEXPR    = "EXPR"
	TypeCOMMENT = "COMMENT"

	TypeOPERATOR = "OPERATOR"
	TypeGROUP    = "GROUP"
	TypeCHAR     = "CHAR"
)

// MetaPatterns builds, in a fixed insertion order, the lexer-pass
// patterns used to split a raw YAL spec file into symbols (COMMENT,
// whitespace, identifier, '=', expression, return-block).
func MetaPatterns() []*pattern.Pattern {
	patterns := []*pattern.Pattern{
		pattern.New(TypeCOMMENT, `\(\*(['A'-'Z''a'-'z''0'-'9']|\t| |,|\.|\-|á|é|í|ó|ú)*\*\)`),
		pattern.New(TypeWS, `( |['\t''\n'])+`),
		pattern.New(TypeID, `['a'-'z']+`),
		pattern.New(TypeEQ, `=`),
		pattern.New(TypeEXPR, `(['A'-'Z''a'-'z''0'-'9']|\' \'|\'|\"|\-|\||\(|\)|\[|\]|\+|\*|\?|.|\\|/|\_|:|=|;|<)+`),
		pattern.New(TypeRETURN, `{(['A'-'Z''a'-'z']| )*}`),
	}
	for _, p := range patterns {
		p.Build()
	}
	return patterns
}

// LetPattern and RulePattern are the two reserved words: each keeps its own
// Name ("let"/"rule") and is aliased to the ID type, since lexically they
// are indistinguishable from any other identifier until the sequencer's
// MATCH verb runs the reserved word's own DFA over the symbol text.
func LetPattern() *pattern.Pattern {
	p := pattern.New("let", "let").Aliased(TypeID)
	p.Build()
	return p
}

func RulePattern() *pattern.Pattern {
	p := pattern.New("rule", "rule").Aliased(TypeID)
	p.Build()
	return p
}

// ExprSubPatterns builds the "expression sub-patterns" (ID, OPERATOR,
// GROUP, CHAR, WS) used to re-tokenize the body of an EXPR symbol when
// extracting or inlining a let-binding's value (spec.md §4.7's VALUE
// verb) and the rule's reminder. WS is included, unlike original_source's
// equivalent sub-lexer, so the spaces of a rule body (e.g. "digit |
// letter") are discarded rather than stopping the re-tokenization early;
// see SPEC_FULL.md §9. A let body never contains a bare space: the EXPR
// meta pattern accepts a quoted space (' ') but ends at an unquoted one.
func ExprSubPatterns() []*pattern.Pattern {
	patterns := []*pattern.Pattern{
		pattern.New(TypeID, `['a'-'z']+`),
		pattern.New(TypeOPERATOR, `(\(|\)|\+|\*|\||.|\?|\_)`),
		pattern.New(TypeGROUP, `\[(['A'-'Z''a'-'z''0'-'9'' ']|\'|\"|\\|\-|\+)+\]`),
		pattern.New(TypeCHAR, `\'['A'-'Z''a'-'z''0'-'9'' ']\'`),
		pattern.New(TypeWS, `( |['\t''\n'])+`),
	}
	for _, p := range patterns {
		p.Build()
	}
	return patterns
}
