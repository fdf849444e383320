package suffixstack

/*

# Motivation

A stack based bytecode whose instructions can inspect an arbitrary number of
recent stack entries (multi value calls in a typed bytecode being the usual
offender) forces a validator into linear suffix checks per instruction, and
quadratic work overall. This package provides a stack whose three interesting
operations - Append, Truncate and HasSuffix - are all logarithmic in the
stack depth, which makes single pass validation near linear.

# Approach

Values live only at the leaves of perfect binary trees. Every tree of the same
shape and contents is interned in an Arena, so two trees of equal size hold
equal leaves exactly when their handles are equal. Equality of whole subtrees
is therefore a single word comparison.

The stack itself is not one tree. It is a sparse list of perfect trees, at
most one of each size, exactly one for every set bit of the base-2
representation of the stack depth. A stack of depth 13 (0b1101) is three
trees:

	             n=13 = 0b1101

	   [ 8 leaves ][ 4 leaves ][ 1 ]
	      bit 3       bit 2    bit 0

	bottom of stack ----------> top

The largest tree holds the oldest entries; the tree for the lowest set bit
holds the top of the stack.

Truncate and HasSuffix then work like binary subtraction. The small trees
(the low bits of the depth) are removed or compared whole, and when they run
out the next larger tree is split - the bit is borrowed - and its right spine
is walked to reach the remainder. Append is the reverse: a carry. Trees
supplied by the appended sequence are combined with the trees already present
until the carry stops propagating, and the rest are copied into free slots.

For the borrow and carry to find the trees they need in constant time, the
appended or compared sequence must be indexed ahead of time. An IndexedSeq
stores, for every way of cutting the sequence in two, both sides as lists of
perfect trees in the same slot-per-bit layout the stack uses. Indexing costs
O(m log m) time and space for a sequence of length m; in the motivating use the
sequences are instruction signatures, which are short and heavily repeated.

All equality tests inside these operations are handle comparisons, so Append,
Truncate and HasSuffix are O(log n + log m) for a stack of depth n and a
sequence of length m.

# Layers

  - Arena, Handle: interned nodes, one word handles, optional parent arena
    for sharing a long lived node population across short lived stacks.
  - IndexedSeq: a leaf sequence with every suffix/prefix split precomputed.
  - TreeStack: the sparse list of trees plus the depth.
  - Seq[T], Stack[T]: typed facade storing integer values inline in leaf
    handles.
  - NaiveStack[T]: the obvious slice backed stack, kept as a reference
    oracle for tests and benchmarks.

*/
