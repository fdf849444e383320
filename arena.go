package suffixstack

// nodePair is the identity of an interned node: its two children, each a
// leaf, a smaller node, or (never, for valid trees) nil.
type nodePair struct {
	lhs, rhs Handle
}

// Arena owns interned nodes and guarantees canonicity: within one arena
// chain there is exactly one node for any (lhs, rhs) pair, so structurally
// equal trees share a handle.
//
// Node storage is an append-only slice, which keeps node indices (and so
// handles) stable for the arena's lifetime. The interning index is a map
// keyed by the child pair.
//
// An arena may have a parent. Lookups probe the ancestor chain first and
// only insert locally on a miss, so a long lived parent can hold the node
// population shared by many short lived child arenas. The parent must not be
// mutated while any child is live: a child allocates its node indices
// starting where the parent's end.
type Arena struct {
	parent *Arena

	// base is the node index of nodes[0]. Indices are 1 based across the
	// whole chain so that index 0 never collides with HandleNil.
	base     uint64
	nodes    []nodePair
	interned map[nodePair]Handle
}

// NewArena creates an arena. parent may be nil. The parent must outlive the
// child, and must not intern further nodes during the child's lifetime.
func NewArena(parent *Arena) *Arena {
	base := uint64(1)
	if parent != nil {
		base = parent.base + uint64(len(parent.nodes))
	}
	return &Arena{
		parent:   parent,
		base:     base,
		interned: make(map[nodePair]Handle),
	}
}

// Intern returns the handle of the unique node with the given children,
// creating it if no arena in the chain holds it yet. Repeated calls with
// equal arguments return identical handles.
func (a *Arena) Intern(lhs, rhs Handle) Handle {
	p := nodePair{lhs: lhs, rhs: rhs}
	if a.parent != nil {
		if h, ok := a.parent.lookup(p); ok {
			return h
		}
	}
	if h, ok := a.interned[p]; ok {
		return h
	}
	a.nodes = append(a.nodes, p)
	h := nodeHandle(a.base + uint64(len(a.nodes)) - 1)
	a.interned[p] = h
	return h
}

// lookup probes this arena and its ancestors, read only.
func (a *Arena) lookup(p nodePair) (Handle, bool) {
	if a.parent != nil {
		if h, ok := a.parent.lookup(p); ok {
			return h, true
		}
	}
	h, ok := a.interned[p]
	return h, ok
}

// Len returns the number of nodes interned in this arena alone, not counting
// ancestors.
func (a *Arena) Len() int { return len(a.nodes) }

// pair resolves a node handle to its children, walking up the parent chain
// to the arena that owns the index.
func (a *Arena) pair(h Handle) nodePair {
	if !h.IsNode() {
		panic("suffixstack: handle is not an interned node")
	}
	i := h.nodeIndex()
	ar := a
	for i < ar.base {
		ar = ar.parent
	}
	return ar.nodes[i-ar.base]
}

// Children returns the left and right subtree of the node h refers to.
// h must be a node handle obtained from this arena chain.
func (a *Arena) Children(h Handle) (lhs, rhs Handle) {
	p := a.pair(h)
	return p.lhs, p.rhs
}

// Left returns the left subtree of the node h refers to.
func (a *Arena) Left(h Handle) Handle { return a.pair(h).lhs }

// Right returns the right subtree of the node h refers to.
func (a *Arena) Right(h Handle) Handle { return a.pair(h).rhs }
