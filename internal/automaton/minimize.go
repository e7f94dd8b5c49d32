package automaton

import "sort"

// Minimize partition-refines d's states into the minimal DFA recognizing
// the same language (spec.md §4.4), grounded on
// original_source/src/_min_dfa.py's build/partition (Aho's Algorithm
// 3.39). Unreachable states are dropped; a reachable state from which no
// accepting state can be reached is kept as an ordinary state, not
// removed. The implicit dead state used for undefined transitions
// participates in partitioning as its own sentinel block so that two
// states disagreeing on "goes dead vs. doesn't" are never merged.
func Minimize(d *DFA) *DFA {
	reachable := reachableStates(d)

	blocks := initialPartition(d, reachable)
	for {
		refined := refine(d, blocks)
		if samePartition(blocks, refined) {
			break
		}
		blocks = refined
	}

	representative := map[StateID]StateID{}
	blockOf := map[StateID]int{}
	for i, block := range blocks {
		rep := block[0]
		for _, s := range block {
			representative[s] = rep
			blockOf[s] = i
		}
	}

	out := newDFA()
	out.Alphabet = append([]byte{}, d.Alphabet...)
	out.Initial = representative[d.Initial]

	seen := map[StateID]bool{}
	for _, block := range blocks {
		rep := block[0]
		if seen[rep] {
			continue
		}
		seen[rep] = true
		out.States = append(out.States, rep)
		for _, s := range block {
			if d.Accepting[s] {
				out.Accepting[rep] = true
				break
			}
		}
	}
	sort.Slice(out.States, func(i, k int) bool { return out.States[i] < out.States[k] })

	for _, block := range blocks {
		rep := block[0]
		for _, b := range d.Alphabet {
			next := d.Step(rep, b)
			if next == DeadState {
				continue
			}
			out.addTransition(rep, b, representative[next])
		}
	}

	return out
}

func reachableStates(d *DFA) map[StateID]bool {
	seen := map[StateID]bool{d.Initial: true}
	queue := []StateID{d.Initial}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, b := range d.Alphabet {
			next := d.Step(s, b)
			if next == DeadState || seen[next] {
				continue
			}
			seen[next] = true
			queue = append(queue, next)
		}
	}
	return seen
}

func initialPartition(d *DFA, reachable map[StateID]bool) [][]StateID {
	var accepting, nonAccepting []StateID
	for _, s := range d.States {
		if !reachable[s] {
			continue
		}
		if d.Accepting[s] {
			accepting = append(accepting, s)
		} else {
			nonAccepting = append(nonAccepting, s)
		}
	}
	var blocks [][]StateID
	if len(accepting) > 0 {
		blocks = append(blocks, accepting)
	}
	if len(nonAccepting) > 0 {
		blocks = append(blocks, nonAccepting)
	}
	return blocks
}

// refine performs one pass of partition refinement: every block is split
// by the tuple of destination-block indices its members reach under each
// alphabet symbol (the dead state maps to the sentinel index -1).
func refine(d *DFA, blocks [][]StateID) [][]StateID {
	blockIndex := map[StateID]int{}
	for i, block := range blocks {
		for _, s := range block {
			blockIndex[s] = i
		}
	}

	var next [][]StateID
	for _, block := range blocks {
		groups := map[string][]StateID{}
		var order []string
		for _, s := range block {
			key := make([]byte, 0, len(d.Alphabet)*4)
			for _, b := range d.Alphabet {
				dest := d.Step(s, b)
				idx := -1
				if dest != DeadState {
					idx = blockIndex[dest]
				}
				key = append(key, encodeSignatureEntry(idx)...)
			}
			k := string(key)
			if _, ok := groups[k]; !ok {
				order = append(order, k)
			}
			groups[k] = append(groups[k], s)
		}
		for _, k := range order {
			next = append(next, groups[k])
		}
	}
	return next
}

func encodeSignatureEntry(idx int) []byte {
	// A fixed 5-byte big-endian encoding is enough to keep entries
	// unambiguous without pulling in strconv/fmt on a hot path; idx is
	// always small (bounded by the state count) except for the -1
	// sentinel, which is encoded distinctly from every real index.
	out := make([]byte, 5)
	if idx < 0 {
		out[0] = 0xFF
		return out
	}
	out[0] = 0x01
	out[1] = byte(idx >> 24)
	out[2] = byte(idx >> 16)
	out[3] = byte(idx >> 8)
	out[4] = byte(idx)
	return out
}

func samePartition(a, b [][]StateID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for k := range a[i] {
			if a[i][k] != b[i][k] {
				return false
			}
		}
	}
	return true
}
