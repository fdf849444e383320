package suffixstack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIterRevOrder(t *testing.T) {
	arena := NewArena(nil)
	stk := NewStack[int64](arena)
	stk.Append(NewSeq(arena, []int64{0, 0, 1}))
	stk.Append(NewSeq(arena, []int64{0, 0, 1}))
	stk.Append(NewSeq(arena, []int64{1, 2}))

	// 0 0 1 0 0 1 1 2, read back top first
	want := []int64{2, 1, 1, 0, 0, 1, 0, 0}
	var got []int64
	it := stk.IterRev()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		got = append(got, v)
	}
	require.Equal(t, want, got)

	// exhausted iterators stay exhausted
	_, ok := it.Next()
	require.False(t, ok)
}

func TestIterRevEmpty(t *testing.T) {
	arena := NewArena(nil)
	stk := NewStack[int64](arena)
	_, ok := stk.IterRev().Next()
	require.False(t, ok)
}

func TestIterRevSpansAllTrees(t *testing.T) {
	// 13 = 0b1101: three trees of different sizes, each traversed from its
	// last leaf to its first before moving to the next
	arena := NewArena(nil)
	stk := NewStack[int64](arena)
	vals := iota64(0, 12)
	stk.Append(NewSeq(arena, vals))

	var got []int64
	it := stk.IterRev()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		got = append(got, v)
	}
	require.Len(t, got, 13)
	for i, v := range got {
		require.Equal(t, vals[12-i], v, "position %d", i)
	}
}

func TestTreeCursorRoundTrip(t *testing.T) {
	arena := NewArena(nil)
	values := iota64(100, 107)
	seq := IndexLeaves(arena, leavesOf(values))

	// the split before the first leaf carries the whole sequence on its
	// Right; slot 3 is the root of the full 8 leaf tree
	root := seq.assocs[0].Right[3]
	require.True(t, root.IsNode())

	cur := newTreeCursor(arena, 3, root, 0)
	for i := uint64(0); i < 8; i++ {
		require.Equal(t, values[i], cur.leaf().LeafValue(), "index %d", i)
		cur.move(1)
	}
}

func TestTreeCursorJumps(t *testing.T) {
	arena := NewArena(nil)
	values := iota64(0, 15)
	seq := IndexLeaves(arena, leavesOf(values))
	root := seq.assocs[0].Right[4]

	cur := newTreeCursor(arena, 4, root, 0)
	for _, idx := range []uint64{15, 0, 8, 7, 9, 3, 12, 12, 1} {
		cur.seek(idx)
		require.False(t, cur.over)
		require.Equal(t, values[idx], cur.leaf().LeafValue(), "seek %d", idx)
	}

	// backwards walk after jumping around
	cur.seek(5)
	for i := int64(5); i >= 0; i-- {
		require.Equal(t, values[i], cur.leaf().LeafValue())
		cur.move(-1)
	}
	require.True(t, cur.over)
}

func TestTreeCursorClamps(t *testing.T) {
	arena := NewArena(nil)
	seq := IndexLeaves(arena, leavesOf(iota64(0, 3)))
	root := seq.assocs[0].Right[2]

	cur := newTreeCursor(arena, 2, root, 3)
	cur.move(10)
	require.True(t, cur.over)
	require.Equal(t, uint64(3), cur.idx, "clamped to the last leaf")

	cur.move(-1)
	require.False(t, cur.over, "moving back in range clears the flag")
	require.Equal(t, int64(2), cur.leaf().LeafValue())
}
