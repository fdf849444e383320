package suffixstack

// treeCursor addresses one leaf of a perfect tree of 2^bit leaves. It keeps
// the whole descent from root to leaf, so after a move only the levels below
// the highest bit that changed between the old and new index need to be
// walked again; a jump costs time proportional to the bit length of the old
// index XOR the new one, at most the tree height.
type treeCursor struct {
	arena *Arena
	bit   uint64
	idx   uint64

	// stack[bit] is the root, stack[0] the current leaf; stack[b] is the
	// subtree of 2^b leaves containing idx.
	stack []Handle
	over  bool
}

func newTreeCursor(arena *Arena, bit uint64, root Handle, idx uint64) treeCursor {
	c := treeCursor{
		arena: arena,
		bit:   bit,
		idx:   idx,
		stack: make([]Handle, bit+1),
	}
	c.stack[bit] = root
	c.resolveFrom(bit)
	return c
}

func (c *treeCursor) size() uint64 { return TheBit(c.bit) }

// leaf returns the leaf at the current index.
func (c *treeCursor) leaf() Handle { return c.stack[0] }

// resolveFrom rebuilds the descent below the given level for the current
// index.
func (c *treeCursor) resolveFrom(width uint64) {
	for it := int(width) - 1; it >= 0; it-- {
		lhs, rhs := c.arena.Children(c.stack[it+1])
		if c.idx&TheBit(uint64(it)) != 0 {
			c.stack[it] = rhs
		} else {
			c.stack[it] = lhs
		}
	}
}

// move shifts the cursor by the given signed distance, clamping at either
// end of the tree and flagging the overrun.
func (c *treeCursor) move(by int64) {
	if by == 0 {
		return
	}
	oldIdx := c.idx
	var newIdx uint64
	switch {
	case by < 0 && c.idx < uint64(-by):
		c.over = true
		newIdx = 0
	case by > 0 && c.size()-1-c.idx < uint64(by):
		c.over = true
		newIdx = c.size() - 1
	default:
		c.over = false
		newIdx = uint64(int64(c.idx) + by)
	}
	delta := newIdx ^ oldIdx
	if delta == 0 {
		return
	}
	c.idx = newIdx
	c.resolveFrom(BitLength64(delta))
}

// seek jumps the cursor to the given index.
func (c *treeCursor) seek(idx uint64) {
	c.move(int64(idx) - int64(c.idx))
}

// ReverseIterator yields the stack's entries from the top down. It walks the
// populated trees smallest first, each from its last leaf to its first,
// which visits every entry in reverse push order.
//
// The iterator reads the stack it was created from; mutating the stack while
// iterating invalidates it.
type ReverseIterator struct {
	stack *TreeStack
	size  uint64
	bit   uint64
	cur   treeCursor
	done  bool
}

// IterRev returns an iterator over the stack's entries, top first.
func (t *TreeStack) IterRev() *ReverseIterator {
	it := &ReverseIterator{stack: t, size: t.size}
	if t.size == 0 {
		it.done = true
		return it
	}
	it.bit = TrailingZeros64(t.size)
	it.cur = newTreeCursor(t.arena, it.bit, t.trees[it.bit], TheBit(it.bit)-1)
	return it
}

// Next returns the next entry, or false once the bottom of the stack has
// been passed.
func (it *ReverseIterator) Next() (Handle, bool) {
	if it.done {
		return HandleNil, false
	}
	v := it.cur.leaf()
	it.cur.move(-1)
	if it.cur.over {
		// finished this tree, move on to the next larger one
		remaining := it.size &^ (TheBit(it.bit+1) - 1)
		if remaining == 0 {
			it.done = true
		} else {
			it.bit = TrailingZeros64(remaining)
			it.cur = newTreeCursor(it.stack.arena, it.bit, it.stack.trees[it.bit], TheBit(it.bit)-1)
		}
	}
	return v, true
}
