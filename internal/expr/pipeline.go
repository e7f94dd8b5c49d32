package expr

import "github.com/chamale-rac/xcompi-c/internal/errjournal"

// Preprocess runs the full expression preprocessor pipeline (spec.md
// §4.1) over a raw pattern string: hard codify, balance check, group
// expansion, explicit concatenation, shunting-yard. It returns the
// resulting postfix atom sequence and the journal recording any error
// encountered along the way. Once an error is recorded the remaining
// steps are skipped and the journal alone communicates failure.
func Preprocess(raw string) (Atoms, *errjournal.Journal) {
	j := errjournal.New()

	codified := HardCodify(raw, j)
	if j.HasErrors() {
		return nil, j
	}

	if !CheckBalance(codified) {
		j.Add("unbalanced parentheses, brackets or quotes", "invalid regular expression")
		return nil, j
	}

	expanded := TransformGroupsOfCharacters(codified, j)
	if j.HasErrors() {
		return nil, j
	}

	withConcat := AddExplicitConcatenation(expanded)
	postfix := ShuntingYard(withConcat)
	return postfix, j
}
