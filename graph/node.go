package graph

import "github.com/pharmatlas/targetroll/target"

// Node is one target reached by a traversal, together with how it was
// reached. Nodes are immutable once the traversal has finalized them.
type Node struct {
	// Depth is the number of edges on the discovered path from the root;
	// 0 for the root itself.
	Depth int

	// Terminal is true iff no matching outgoing candidate edge existed
	// when this node was expanded.
	Terminal bool

	// Target is the record this node wraps. Node identity within a result
	// is the target's ID.
	Target target.Target

	// Matched is the permitted edge requirement whose match brought the
	// traversal here, or nil for the root.
	Matched *EdgeReq

	// parent indexes this node's predecessor in the result's node table,
	// or -1 for the root. Kept as an index rather than a pointer so nodes
	// stay immutable values with no reference cycles.
	parent int
}

// Start reports whether this is the traversal's root node.
func (n Node) Start() bool {
	return n.Depth == 0
}

// Result is the outcome of one traversal: a node table in discovery order
// plus an id index. A result holds at most one node per target id; when the
// graph offers several paths to the same target, the first discovered path
// wins and later ones are dropped.
//
// Results are owned by the caller of Traverse and are not safe for
// concurrent mutation; the engine never retains one across calls.
type Result struct {
	nodes []Node
	index map[string]int
}

func newResult() *Result {
	return &Result{index: make(map[string]int)}
}

// add finalizes a node into the table and returns its index.
func (r *Result) add(n Node) int {
	idx := len(r.nodes)
	r.nodes = append(r.nodes, n)
	r.index[n.Target.ID] = idx
	return idx
}

// Len returns the number of nodes in the result.
func (r *Result) Len() int {
	return len(r.nodes)
}

// Nodes returns the node table in discovery order. The returned slice is
// shared with the result; callers must not modify it.
func (r *Result) Nodes() []Node {
	return r.nodes
}

// Contains reports whether a target id was reached.
func (r *Result) Contains(id string) bool {
	_, ok := r.index[id]
	return ok
}

// Node returns the node for a target id, if reached.
func (r *Result) Node(id string) (Node, bool) {
	idx, ok := r.index[id]
	if !ok {
		return Node{}, false
	}
	return r.nodes[idx], true
}

// Path reconstructs the discovered path from the root to the given target
// id, root first, by walking parent indices through the node table.
// Returns nil if the id was not reached.
func (r *Result) Path(id string) []Node {
	idx, ok := r.index[id]
	if !ok {
		return nil
	}
	var rev []Node
	for idx >= 0 {
		n := r.nodes[idx]
		rev = append(rev, n)
		idx = n.parent
	}
	path := make([]Node, len(rev))
	for i, n := range rev {
		path[len(rev)-1-i] = n
	}
	return path
}
