// Package artifact renders plain-text diagnostic dumps of a syntax tree
// or a DFA to disk, standing in for original_source's graphviz-based
// AST.draw/Pattern.draw (no graphviz dependency exists in the example
// pack to ground a real renderer on, so the format here is a stable,
// greppable text table instead of an image).
package artifact

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/chamale-rac/xcompi-c/internal/automaton"
	"github.com/chamale-rac/xcompi-c/internal/syntaxtree"
)

// TreeDump renders the subtree rooted at root as an indented outline,
// one node per line, titled with label.
func TreeDump(label string, root *syntaxtree.Node) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\n", label)
	writeTree(&buf, root, 0)
	return buf.String()
}

func writeTree(buf *bytes.Buffer, n *syntaxtree.Node, depth int) {
	if n == nil {
		return
	}
	for i := 0; i < depth; i++ {
		buf.WriteString("  ")
	}
	switch n.Kind {
	case syntaxtree.Literal:
		fmt.Fprintf(buf, "LITERAL %q (pos %d)\n", n.Byte, n.Position)
	case syntaxtree.EndMarker:
		fmt.Fprintf(buf, "END_MARKER (pos %d)\n", n.Position)
	default:
		fmt.Fprintf(buf, "%s\n", n.Kind)
	}
	writeTree(buf, n.Left, depth+1)
	writeTree(buf, n.Right, depth+1)
}

// DFADump renders a DFA's states, accepting set and transition table as
// text, titled with label.
func DFADump(label string, d *automaton.DFA) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\n", label)
	fmt.Fprintf(&buf, "initial: %d\n", d.Initial)

	states := append([]automaton.StateID(nil), d.States...)
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })

	alphabet := append([]byte(nil), d.Alphabet...)
	sort.Slice(alphabet, func(i, j int) bool { return alphabet[i] < alphabet[j] })

	for _, s := range states {
		marker := " "
		if d.Accepting[s] {
			marker = "*"
		}
		fmt.Fprintf(&buf, "%s state %d:\n", marker, s)
		for _, b := range alphabet {
			to := d.Step(s, b)
			if to == automaton.DeadState {
				continue
			}
			fmt.Fprintf(&buf, "    %q -> %d\n", b, to)
		}
	}
	return buf.String()
}

// WriteTreeDump writes TreeDump's output to "<dir>/<name>_ast.txt" and
// returns the path written.
func WriteTreeDump(dir, name string, root *syntaxtree.Node) (string, error) {
	path := filepath.Join(dir, name+"_ast.txt")
	return path, os.WriteFile(path, []byte(TreeDump(name+" AST", root)), 0o644)
}

// WriteDFADump writes DFADump's output to "<dir>/<name>_dfa.txt" and
// returns the path written.
func WriteDFADump(dir, name string, d *automaton.DFA) (string, error) {
	path := filepath.Join(dir, name+"_dfa.txt")
	return path, os.WriteFile(path, []byte(DFADump(name+" DFA", d)), 0o644)
}
