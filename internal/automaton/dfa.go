// Package automaton implements the direct DFA construction (followpos
// method, spec.md §4.3) and DFA minimization (partition refinement,
// spec.md §4.4) stages, grounded on xcompi-c's
// original_source/src/_min_dfa.py (Aho's Algorithm 3.39) for
// minimization; the direct-construction half has no surviving Python
// counterpart in original_source (only an already-built automaton is
// minimized there), so it is implemented fresh from spec.md's formal
// description in the same struct-based, position-indexed style.
package automaton

import "github.com/chamale-rac/xcompi-c/internal/syntaxtree"

// PosSet is reused from the syntax tree package: a DFA state produced by
// direct construction is itself a set of tree leaf positions.
type PosSet = syntaxtree.PosSet

// StateID is a dense integer identifying a DFA state. IDs are assigned at
// creation time and never reused within one DFA's lifetime.
type StateID int

// DeadState is the sentinel used for transitions the DFA does not define.
const DeadState StateID = -1

// DFA is (states, initial, accepting, transitions, alphabet) as defined
// in spec.md §3. Transitions are partial: a missing entry means the dead
// state.
type DFA struct {
	States      []StateID
	Initial     StateID
	Accepting   map[StateID]bool
	Transitions map[StateID]map[byte]StateID
	Alphabet    []byte

	// PosSets records, for a DFA produced by direct construction, the
	// generating position set of each state. It is nil after
	// minimization, where state identity is a partition representative
	// rather than a position set.
	PosSets map[StateID]PosSet
}

// Step returns the destination state for (state, b), or DeadState if the
// transition is undefined.
func (d *DFA) Step(state StateID, b byte) StateID {
	row, ok := d.Transitions[state]
	if !ok {
		return DeadState
	}
	next, ok := row[b]
	if !ok {
		return DeadState
	}
	return next
}

// Simulate walks the DFA over input, returning the greatest nonzero prefix
// length that ended in an accepting state (0 if none was ever reached).
// The walk stops at the first undefined transition.
func (d *DFA) Simulate(input []byte) (longestAccepting int) {
	state := d.Initial
	if d.Accepting[state] {
		longestAccepting = 0
	}
	for i, b := range input {
		state = d.Step(state, b)
		if state == DeadState {
			break
		}
		if d.Accepting[state] {
			longestAccepting = i + 1
		}
	}
	return longestAccepting
}

func newDFA() *DFA {
	return &DFA{
		Accepting:   map[StateID]bool{},
		Transitions: map[StateID]map[byte]StateID{},
	}
}

func (d *DFA) addTransition(from StateID, b byte, to StateID) {
	row, ok := d.Transitions[from]
	if !ok {
		row = map[byte]StateID{}
		d.Transitions[from] = row
	}
	row[b] = to
}
