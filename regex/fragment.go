package regex

import "fmt"

// unset marks a link target that has not been patched yet.
const unset = -1

type nodeKind int

const (
	nodeLiteral nodeKind = iota
	nodeSplit
	nodeTerminal
)

// node is a tagged-union NFA node living in an NFA's arena (spec.md §9,
// "Variant nodes"): a literal node has one outgoing link labeled by a
// symbol, a split node has two unlabeled (epsilon) outgoing links, and a
// terminal node has none. out1/out2 are indices into the owning NFA's node
// slice, or unset until patched.
type node struct {
	kind nodeKind
	sym  byte
	out1 int
	out2 int
}

func literalNode(sym byte) node {
	return node{kind: nodeLiteral, sym: sym, out1: unset, out2: unset}
}

func splitNode() node {
	return node{kind: nodeSplit, out1: unset, out2: unset}
}

func terminalNode() node {
	return node{kind: nodeTerminal, out1: unset, out2: unset}
}

// NFA is an owned collection of nodes built by BuildNFA, plus the index of
// its head (entry) node. Values are immutable after construction; Matches
// only ever reads from an NFA.
type NFA struct {
	nodes []node
	head  int
}

// Head returns the index of the NFA's entry node, for callers that want to
// render the graph (e.g. cmd/rek's -dump flag).
func (a *NFA) Head() int {
	return a.head
}

// Describe renders each node as a short human-readable line, in the spirit
// of FlyGinger-rek/src/rek.go's convertNFAToString.
func (a *NFA) Describe() []string {
	lines := make([]string, len(a.nodes))
	for i, n := range a.nodes {
		switch n.kind {
		case nodeLiteral:
			lines[i] = fmt.Sprintf("literal %q -> %d", n.sym, n.out1)
		case nodeSplit:
			lines[i] = fmt.Sprintf("split -> %d, %d", n.out1, n.out2)
		case nodeTerminal:
			lines[i] = "terminal"
		}
	}
	return lines
}

// patch walks every node reachable from entry that has a dangling
// (unset) outgoing link and sets it to target.
//
// This is an arena-index port of original_source/src/regex_nfa.cpp's
// set_output, adapted to track a full per-call visited set rather than
// just the immediately preceding node: a single-level "don't re-enter
// where you came from" guard (what original_source itself does) only
// breaks length-one back-edges. A parenthesized multi-node group under
// '*'/'+' produces longer cycles — e.g. "(ab)*c" builds a.out1=b,
// b.out1=split, split.out1=a, a length-three cycle — and a one-level
// guard walks it forever instead of terminating. Two splits that
// reconverge on a shared downstream node (e.g. "a?bc") hit the same
// problem from the other direction: the second arrival at the shared
// node isn't "prev" either, so a one-level guard wrongly treats its
// already-patched link as unpatched and recurses into target itself,
// leaving a literal node pointing at itself and target unreachable.
// Marking every node visited for the lifetime of one patch call handles
// both: no node's links are ever walked a second time in the same call,
// regardless of cycle length or merge topology.
func (a *NFA) patch(entry, target int) {
	visited := make([]bool, len(a.nodes))
	a.patchFrom(entry, target, visited)
}

func (a *NFA) patchFrom(idx, target int, visited []bool) {
	if visited[idx] {
		return
	}
	visited[idx] = true

	n := &a.nodes[idx]
	switch n.kind {
	case nodeLiteral:
		a.patchLink(&n.out1, target, visited)
	case nodeSplit:
		a.patchLink(&n.out1, target, visited)
		a.patchLink(&n.out2, target, visited)
	case nodeTerminal:
		// no outgoing links to patch.
	}
}

// patchLink sets *link to target if it is dangling, or recurses through it
// (guarded by visited, not by the immediately preceding node) if it already
// points somewhere.
func (a *NFA) patchLink(link *int, target int, visited []bool) {
	if *link == unset {
		*link = target
		return
	}
	a.patchFrom(*link, target, visited)
}
