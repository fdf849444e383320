package suffixstack

import "errors"

var ErrEmptyStack = errors.New("suffixstack: empty stack")
var ErrOutOfRange = errors.New("suffixstack: size out of range")

// TreeStack is a stack held as a sparse list of interned perfect trees, one
// per set bit of the depth. Append, Truncate and HasSuffix run in time
// logarithmic in the depth and, where a sequence is involved, its length.
//
// All nodes a stack creates are interned through its arena. Sequences passed
// to Append and HasSuffix must have been indexed through the same arena
// chain. Unrelated arenas number their nodes independently and can hand out
// equal handles for different trees, so mixing them gives meaningless
// results.
type TreeStack struct {
	arena *Arena

	// trees[b] is the tree of 2^b leaves when bit b of size is set, and
	// HandleNil otherwise. Smallest tree first; the smallest tree holds the
	// top of the stack.
	trees []Handle
	size  uint64
}

// NewTreeStack returns an empty stack interning through arena.
func NewTreeStack(arena *Arena) *TreeStack {
	return &TreeStack{arena: arena}
}

// Size returns the stack depth.
func (t *TreeStack) Size() uint64 { return t.size }

// IsEmpty reports whether the stack holds no entries.
func (t *TreeStack) IsEmpty() bool { return t.size == 0 }

// Arena returns the arena the stack interns through.
func (t *TreeStack) Arena() *Arena { return t.arena }

// HasSuffix reports whether the top seq.Size() entries of the stack equal
// seq, element for element. Every comparison is a handle comparison; the
// walk is O(log n + log m).
func (t *TreeStack) HasSuffix(seq *IndexedSeq) bool {
	if t.size < seq.Size() {
		return false
	}
	if seq.IsEmpty() {
		return true
	}

	onRight := associate(t.size, seq.Size())
	onLeft := seq.Size() - onRight
	split := seq.association(onRight)

	// The low bits: whole trees of the stack against whole trees of the
	// sequence. Empty slots must agree too, and do, because onRight shares
	// its low bits with the stack size.
	for b, want := range split.Right {
		if t.trees[b] != want {
			return false
		}
	}

	if onLeft == 0 {
		return true
	}

	// The remainder sits inside the smallest stack tree above the matched
	// bits. Borrow it: descend its right spine to the piece of the right
	// width, then peel pieces off, largest first, against the sequence's
	// Left trees.
	borrowedBit := TrailingZeros64(t.size - onRight)
	borrowed := t.trees[borrowedBit]
	leftBit := uint64(len(split.Left))
	for borrowedBit > leftBit {
		borrowed = t.arena.Right(borrowed)
		borrowedBit--
	}
	for ; leftBit > 0; leftBit-- {
		leftTree := split.Left[leftBit-1]
		lhs, rhs := t.arena.Children(borrowed)
		if onLeft&TheBit(leftBit-1) != 0 {
			if rhs != leftTree {
				return false
			}
			borrowed = lhs
		} else {
			borrowed = rhs
		}
	}
	return true
}

// Append pushes the leaves of seq onto the top of the stack.
func (t *TreeStack) Append(seq *IndexedSeq) {
	if seq.IsEmpty() {
		return
	}

	newSize := t.size + seq.Size()
	onRight := associate(newSize, seq.Size())
	onLeft := seq.Size() - onRight
	split := seq.association(onRight)

	for uint64(len(t.trees)) < BitLength64(newSize) {
		t.trees = append(t.trees, HandleNil)
	}

	if onLeft > 0 {
		// A set bit of onLeft means the split's Left supplies a tree we
		// need a left hand side for; a clear bit means an existing stack
		// tree of that size joins the carry instead.
		bitNo := TrailingZeros64(onLeft)
		constructing := t.trees[bitNo]
		t.trees[bitNo] = HandleNil
		for ; TheBit(bitNo) <= onLeft; bitNo++ {
			if onLeft&TheBit(bitNo) != 0 {
				constructing = t.arena.Intern(constructing, split.Left[bitNo])
			} else {
				constructing = t.arena.Intern(t.trees[bitNo], constructing)
				t.trees[bitNo] = HandleNil
			}
		}
		// the carry keeps propagating while the slots above are occupied
		for !t.trees[bitNo].IsNil() {
			constructing = t.arena.Intern(t.trees[bitNo], constructing)
			t.trees[bitNo] = HandleNil
			bitNo++
		}
		t.trees[bitNo] = constructing
	}

	// The carry only ever lands on slots whose onRight bits are clear, so
	// the sequence's whole trees drop straight into free slots.
	remaining := onRight
	b := uint64(0)
	for remaining != 0 {
		step := TrailingZeros64(remaining)
		b += step
		t.trees[b] = split.Right[b]
		b++
		remaining >>= step + 1
	}

	t.size = newSize
}

// Truncate shrinks the stack to newSize entries, discarding from the top.
// It returns ErrOutOfRange when newSize exceeds the current depth.
func (t *TreeStack) Truncate(newSize uint64) error {
	if newSize > t.size {
		return ErrOutOfRange
	}
	t.truncate(newSize)
	return nil
}

// Pop removes the top count entries, or everything when count exceeds the
// depth.
func (t *TreeStack) Pop(count uint64) {
	if count > t.size {
		t.truncate(0)
		return
	}
	t.truncate(t.size - count)
}

func (t *TreeStack) truncate(newSize uint64) {
	toRemove := t.size - newSize

	onRight := associate(t.size, toRemove)
	onLeft := toRemove - onRight

	// drop the whole trees covered by the low bits
	right := onRight
	b := uint64(0)
	for right != 0 {
		step := TrailingZeros64(right)
		b += step
		t.trees[b] = HandleNil
		b++
		right >>= step + 1
	}

	if onLeft > 0 {
		// Borrow: deconstruct the smallest remaining tree. Walking down,
		// each left child whose bit we keep becomes a stack tree in its own
		// right; the rest of the suffix falls off the right hand side.
		toDeconstruct := TrailingZeros64(t.size - onRight)
		toRemain := TheBit(toDeconstruct) - onLeft
		splitting := t.trees[toDeconstruct]
		t.trees[toDeconstruct] = HandleNil
		bitNo := toDeconstruct - 1
		for bit := TheBit(bitNo); bit != 0; bitNo, bit = bitNo-1, bit>>1 {
			lhs, rhs := t.arena.Children(splitting)
			if toRemain&bit != 0 {
				t.trees[bitNo] = lhs
				splitting = rhs
			} else {
				splitting = lhs
			}
		}
	}

	t.size = newSize
	t.trees = t.trees[:BitLength64(newSize)]
}

// Back returns the top entry of the stack, or ErrEmptyStack.
func (t *TreeStack) Back() (Handle, error) {
	if t.size == 0 {
		return HandleNil, ErrEmptyStack
	}
	b := TrailingZeros64(t.size)
	h := t.trees[b]
	for ; b > 0; b-- {
		h = t.arena.Right(h)
	}
	return h, nil
}
