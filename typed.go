package suffixstack

import "golang.org/x/exp/constraints"

// The typed facade stores integer values inline in leaf handles. Any
// integer type works as long as the values fit in 63 bits; see Leaf.

// Seq is an indexed sequence of values of type T.
type Seq[T constraints.Integer] struct {
	inner IndexedSeq
}

// NewSeq indexes values through arena. O(n log n) time and space in
// len(values).
func NewSeq[T constraints.Integer](arena *Arena, values []T) *Seq[T] {
	leaves := make([]Handle, len(values))
	for i, v := range values {
		leaves[i] = Leaf(int64(v))
	}
	return &Seq[T]{inner: *IndexLeaves(arena, leaves)}
}

// NewSingleSeq indexes a one element sequence. No arena is needed.
func NewSingleSeq[T constraints.Integer](v T) *Seq[T] {
	return &Seq[T]{inner: *SingleLeaf(Leaf(int64(v)))}
}

// Size returns the number of values in the sequence.
func (s *Seq[T]) Size() uint64 { return s.inner.Size() }

// IsEmpty reports whether the sequence has no values.
func (s *Seq[T]) IsEmpty() bool { return s.inner.IsEmpty() }

// Stack is a TreeStack of values of type T.
type Stack[T constraints.Integer] struct {
	tree TreeStack
}

// NewStack returns an empty stack interning through arena.
func NewStack[T constraints.Integer](arena *Arena) *Stack[T] {
	return &Stack[T]{tree: *NewTreeStack(arena)}
}

// Size returns the stack depth.
func (s *Stack[T]) Size() uint64 { return s.tree.Size() }

// IsEmpty reports whether the stack holds no values.
func (s *Stack[T]) IsEmpty() bool { return s.tree.IsEmpty() }

// Append pushes the values of seq onto the top of the stack.
func (s *Stack[T]) Append(seq *Seq[T]) { s.tree.Append(&seq.inner) }

// HasSuffix reports whether the top seq.Size() values of the stack equal
// seq. The sequence must have been indexed through the stack's arena chain.
func (s *Stack[T]) HasSuffix(seq *Seq[T]) bool { return s.tree.HasSuffix(&seq.inner) }

// Truncate shrinks the stack to size values, discarding from the top.
func (s *Stack[T]) Truncate(size uint64) error { return s.tree.Truncate(size) }

// Pop removes the top count values, or everything when count exceeds the
// depth.
func (s *Stack[T]) Pop(count uint64) { s.tree.Pop(count) }

// Back returns the top value, or ErrEmptyStack.
func (s *Stack[T]) Back() (T, error) {
	h, err := s.tree.Back()
	if err != nil {
		var zero T
		return zero, err
	}
	return T(h.LeafValue()), nil
}

// IterRev returns an iterator over the stack's values, top first.
func (s *Stack[T]) IterRev() *ValueIterator[T] {
	return &ValueIterator[T]{inner: s.tree.IterRev()}
}

// Values returns the stack's contents bottom to top.
func (s *Stack[T]) Values() []T {
	out := make([]T, s.Size())
	i := len(out)
	it := s.IterRev()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		i--
		out[i] = v
	}
	return out
}

// ValueIterator yields a stack's values from the top down.
type ValueIterator[T constraints.Integer] struct {
	inner *ReverseIterator
}

// Next returns the next value, or false once the bottom of the stack has
// been passed.
func (it *ValueIterator[T]) Next() (T, bool) {
	h, ok := it.inner.Next()
	if !ok {
		var zero T
		return zero, false
	}
	return T(h.LeafValue()), true
}
