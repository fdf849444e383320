package suffixstack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeafHandleRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		v    int64
	}{
		{"zero", 0},
		{"small", 42},
		{"negative", -7},
		{"large positive", 1<<62 - 1},
		{"large negative", -(1 << 62)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Leaf(tt.v)
			assert.True(t, h.IsLeaf())
			assert.False(t, h.IsNil())
			assert.False(t, h.IsNode())
			assert.Equal(t, tt.v, h.LeafValue())
		})
	}
}

func TestInternCanonical(t *testing.T) {
	arena := NewArena(nil)

	a := arena.Intern(Leaf(1), Leaf(2))
	b := arena.Intern(Leaf(1), Leaf(2))
	require.Equal(t, a, b, "repeated interning must return the same handle")
	require.True(t, a.IsNode())
	require.Equal(t, 1, arena.Len())

	c := arena.Intern(Leaf(2), Leaf(1))
	require.NotEqual(t, a, c, "order of children is significant")

	// structurally equal larger trees share a handle too
	d := arena.Intern(a, c)
	e := arena.Intern(arena.Intern(Leaf(1), Leaf(2)), c)
	require.Equal(t, d, e)
	require.Equal(t, 3, arena.Len())
}

func TestInternChildren(t *testing.T) {
	arena := NewArena(nil)

	n := arena.Intern(Leaf(3), Leaf(9))
	lhs, rhs := arena.Children(n)
	assert.Equal(t, Leaf(3), lhs)
	assert.Equal(t, Leaf(9), rhs)
	assert.Equal(t, Leaf(3), arena.Left(n))
	assert.Equal(t, Leaf(9), arena.Right(n))
}

func TestInternParentChain(t *testing.T) {
	parent := NewArena(nil)
	shared := parent.Intern(Leaf(1), Leaf(2))

	child := NewArena(parent)

	// a hit in the parent comes back as the parent's handle and nothing is
	// inserted locally
	got := child.Intern(Leaf(1), Leaf(2))
	require.Equal(t, shared, got)
	require.Equal(t, 0, child.Len())

	// a miss inserts locally, and the child's handles resolve through the
	// chain even when their children live in the parent
	local := child.Intern(shared, shared)
	require.Equal(t, 1, child.Len())
	lhs, rhs := child.Children(local)
	require.Equal(t, shared, lhs)
	require.Equal(t, shared, rhs)

	// parent handles resolve through the child too
	plhs, prhs := child.Children(shared)
	require.Equal(t, Leaf(1), plhs)
	require.Equal(t, Leaf(2), prhs)

	// a grandchild probes the whole ancestor chain
	grandchild := NewArena(child)
	require.Equal(t, shared, grandchild.Intern(Leaf(1), Leaf(2)))
	require.Equal(t, local, grandchild.Intern(shared, shared))
	require.Equal(t, 0, grandchild.Len())
}

func TestInternHandleStability(t *testing.T) {
	arena := NewArena(nil)

	first := arena.Intern(Leaf(0), Leaf(0))
	// grow the arena well past any initial capacity
	prev := first
	for i := int64(1); i < 1000; i++ {
		prev = arena.Intern(prev, Leaf(i))
	}
	require.Equal(t, first, arena.Intern(Leaf(0), Leaf(0)))
	lhs, rhs := arena.Children(first)
	require.Equal(t, Leaf(0), lhs)
	require.Equal(t, Leaf(0), rhs)
}
