package automaton

import (
	"sort"

	"github.com/chamale-rac/xcompi-c/internal/errjournal"
	"github.com/chamale-rac/xcompi-c/internal/syntaxtree"
)

// augmentedTree numbers leaf positions, computes nullable/firstpos/lastpos
// bottom-up and accumulates followpos, per spec.md §4.3.
type augmentedTree struct {
	next      int
	byteOf    map[int]byte // position -> literal byte; END_MARKER has no entry
	endMarker int
	followpos map[int]PosSet
}

// BuildDirect runs the followpos / subset-construction algorithm over a
// syntax tree, producing a DFA whose states are leaf position sets. root
// is deep-copied before augmentation so the caller's tree (e.g. one also
// used to draw a diagnostic artifact) is left untouched, mirroring the
// teacher's Pattern.build, which calls DirDFA(self.ast.root.deepCopy()).
func BuildDirect(root *syntaxtree.Node, alphabet []byte) (*DFA, *errjournal.Journal) {
	j := errjournal.New()

	work := root.DeepCopy()
	extended := &syntaxtree.Node{
		Kind:  syntaxtree.Concat,
		Left:  work,
		Right: &syntaxtree.Node{Kind: syntaxtree.EndMarker},
	}

	at := &augmentedTree{
		byteOf:    map[int]byte{},
		followpos: map[int]PosSet{},
	}
	at.number(extended)
	at.endMarker = extended.Right.Position
	at.computeSets(extended)

	dfa := newDFA()
	dfa.Alphabet = append([]byte{}, alphabet...)
	dfa.PosSets = map[StateID]PosSet{}

	type pending struct {
		id  StateID
		set PosSet
	}

	initialSet := extended.Firstpos
	stateOf := map[string]StateID{}
	var counter StateID
	newState := func(set syntaxtree.PosSet) StateID {
		id := counter
		counter++
		stateOf[set.Key()] = id
		dfa.States = append(dfa.States, id)
		dfa.PosSets[id] = set
		if _, ok := set[at.endMarker]; ok {
			dfa.Accepting[id] = true
		}
		return id
	}

	dfa.Initial = newState(initialSet)
	queue := []pending{{dfa.Initial, initialSet}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		byB := map[byte]syntaxtree.PosSet{}
		for p := range cur.set {
			b, ok := at.byteOf[p]
			if !ok {
				continue // END_MARKER carries no byte
			}
			fp := at.followpos[p]
			if fp == nil {
				continue
			}
			if byB[b] == nil {
				byB[b] = syntaxtree.PosSet{}
			}
			for q := range fp {
				byB[b][q] = struct{}{}
			}
		}

		for _, b := range sortedBytes(byB) {
			u := byB[b]
			if len(u) == 0 {
				continue
			}
			key := u.Key()
			id, known := stateOf[key]
			if !known {
				id = newState(u)
				queue = append(queue, pending{id, u})
			}
			dfa.addTransition(cur.id, b, id)
		}
	}

	if len(dfa.Accepting) == 0 {
		j.Add("no accepting state is reachable from the initial state", "pattern recognizes the empty language")
	}

	return dfa, j
}

func sortedBytes(m map[byte]syntaxtree.PosSet) []byte {
	out := make([]byte, 0, len(m))
	for b := range m {
		out = append(out, b)
	}
	sort.Slice(out, func(i, k int) bool { return out[i] < out[k] })
	return out
}

// number assigns consecutive positions to LITERAL and END_MARKER leaves
// in a left-root-right traversal; EPSILON leaves receive a position too
// but are always nullable with empty firstpos/lastpos.
func (at *augmentedTree) number(n *syntaxtree.Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case syntaxtree.Literal:
		n.Position = at.next
		at.byteOf[at.next] = n.Byte
		at.next++
	case syntaxtree.Epsilon, syntaxtree.EndMarker:
		n.Position = at.next
		at.next++
	default:
		at.number(n.Left)
		at.number(n.Right)
	}
}

func (at *augmentedTree) computeSets(n *syntaxtree.Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case syntaxtree.Literal, syntaxtree.EndMarker:
		n.Nullable = false
		n.Firstpos = syntaxtree.NewPosSet(n.Position)
		n.Lastpos = syntaxtree.NewPosSet(n.Position)
	case syntaxtree.Epsilon:
		n.Nullable = true
		n.Firstpos = syntaxtree.PosSet{}
		n.Lastpos = syntaxtree.PosSet{}
	case syntaxtree.Star:
		at.computeSets(n.Left)
		n.Nullable = true
		n.Firstpos = n.Left.Firstpos
		n.Lastpos = n.Left.Lastpos
		for p := range n.Lastpos {
			at.addFollowpos(p, n.Firstpos)
		}
	case syntaxtree.Or:
		at.computeSets(n.Left)
		at.computeSets(n.Right)
		n.Nullable = n.Left.Nullable || n.Right.Nullable
		n.Firstpos = n.Left.Firstpos.Union(n.Right.Firstpos)
		n.Lastpos = n.Left.Lastpos.Union(n.Right.Lastpos)
	case syntaxtree.Concat:
		at.computeSets(n.Left)
		at.computeSets(n.Right)
		n.Nullable = n.Left.Nullable && n.Right.Nullable
		if n.Left.Nullable {
			n.Firstpos = n.Left.Firstpos.Union(n.Right.Firstpos)
		} else {
			n.Firstpos = n.Left.Firstpos
		}
		if n.Right.Nullable {
			n.Lastpos = n.Left.Lastpos.Union(n.Right.Lastpos)
		} else {
			n.Lastpos = n.Right.Lastpos
		}
		for p := range n.Left.Lastpos {
			at.addFollowpos(p, n.Right.Firstpos)
		}
	}
}

func (at *augmentedTree) addFollowpos(p int, positions syntaxtree.PosSet) {
	set, ok := at.followpos[p]
	if !ok {
		set = syntaxtree.PosSet{}
		at.followpos[p] = set
	}
	for q := range positions {
		set[q] = struct{}{}
	}
}
