package suffixstack

import (
	"testing"
)

// shared test fixtures and helpers

// flattenTree expands a tree back into its leaf values, left to right.
func flattenTree(t *testing.T, arena *Arena, h Handle) []int64 {
	t.Helper()
	if h.IsNil() {
		return nil
	}
	if h.IsLeaf() {
		return []int64{h.LeafValue()}
	}
	lhs, rhs := arena.Children(h)
	return append(flattenTree(t, arena, lhs), flattenTree(t, arena, rhs)...)
}

// treeLeafCount returns the number of leaves under h.
func treeLeafCount(arena *Arena, h Handle) uint64 {
	if h.IsNil() {
		return 0
	}
	if h.IsLeaf() {
		return 1
	}
	lhs, rhs := arena.Children(h)
	return treeLeafCount(arena, lhs) + treeLeafCount(arena, rhs)
}

// leavesOf converts values to leaf handles.
func leavesOf(values []int64) []Handle {
	leaves := make([]Handle, len(values))
	for i, v := range values {
		leaves[i] = Leaf(v)
	}
	return leaves
}

// iota64 returns [from, from+1, ..., to] inclusive.
func iota64(from, to int64) []int64 {
	out := make([]int64, 0, to-from+1)
	for v := from; v <= to; v++ {
		out = append(out, v)
	}
	return out
}

// repeat64 returns count copies of v.
func repeat64(v int64, count int) []int64 {
	out := make([]int64, count)
	for i := range out {
		out[i] = v
	}
	return out
}

// checkDecomposition asserts the structural invariants of a stack: a slot is
// populated exactly when the matching bit of the depth is set, each
// populated slot holds a perfect tree of the slot's size, and the trees
// concatenated largest first spell out the expected contents.
func checkDecomposition(t *testing.T, s *Stack[int64], want []int64) {
	t.Helper()
	tree := &s.tree
	if got, expect := tree.Size(), uint64(len(want)); got != expect {
		t.Fatalf("Size() = %d, want %d", got, expect)
	}
	if got, expect := uint64(len(tree.trees)), BitLength64(tree.size); got != expect {
		t.Fatalf("len(trees) = %d, want bit length %d", got, expect)
	}
	var contents []int64
	for b := len(tree.trees) - 1; b >= 0; b-- {
		h := tree.trees[b]
		if bitSet := tree.size&TheBit(uint64(b)) != 0; bitSet != !h.IsNil() {
			t.Fatalf("slot %d populated=%v, size=%b", b, !h.IsNil(), tree.size)
		}
		if h.IsNil() {
			continue
		}
		count := treeLeafCount(tree.arena, h)
		if !IsPow2(count) || count != TheBit(uint64(b)) {
			t.Fatalf("slot %d holds %d leaves", b, count)
		}
		contents = append(contents, flattenTree(t, tree.arena, h)...)
	}
	if len(contents) == 0 {
		contents = []int64{}
	}
	if len(want) == 0 {
		want = []int64{}
	}
	for i := range want {
		if contents[i] != want[i] {
			t.Fatalf("contents = %v, want %v", contents, want)
		}
	}
}
