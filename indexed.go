package suffixstack

// Split is one entry of an IndexedSeq: the sequence cut in two, with both
// sides held as lists of perfect trees in the slot-per-bit layout. Slot b of
// a side holds the tree of 2^b leaves when bit b of that side's length is
// set, and HandleNil otherwise.
//
// Right covers the tail of the sequence; its slot 0 tree, when present, is
// the final leaf. Left covers the head; read in ascending slot order its
// populated trees concatenate to the head, smallest tree first. That
// orientation is what lets the stack match Left against the right spine of a
// borrowed tree, largest piece first.
type Split struct {
	Left, Right []Handle
}

// IndexedSeq is a leaf sequence prepared for use with a TreeStack. It stores
// every split of the sequence - assocs[k] cuts after the first k leaves - so
// the stack operations can fetch the trees for an arbitrary cut point in
// constant time. Indexing a sequence of L leaves performs O(L log L) arena
// lookups and stores O(L log L) handles.
type IndexedSeq struct {
	assocs []Split
}

// IndexLeaves builds the IndexedSeq for the given leaves, interning every
// subtree through arena. The leaves slice is not retained.
func IndexLeaves(arena *Arena, leaves []Handle) *IndexedSeq {
	s := &IndexedSeq{assocs: make([]Split, len(leaves)+1)}
	if len(leaves) == 0 {
		return s
	}
	size := s.Size()

	// paired[i] holds, during round b, the tree of 2^b leaves covering
	// leaves[i:i+2^b]. Every round pairs adjacent trees into the next size
	// up and shortens the slice.
	paired := append([]Handle(nil), leaves...)

	for bit := uint64(0); ; bit++ {
		bitM := TheBit(bit)
		for sz := bitM; sz <= size; sz++ {
			left := &s.assocs[sz].Left
			right := &s.assocs[size-sz].Right
			if sz&bitM != 0 {
				offset := sz & (bitM - 1)
				*left = append(*left, paired[offset])
				*right = append(*right, paired[uint64(len(paired))-1-offset])
			} else {
				*left = append(*left, HandleNil)
				*right = append(*right, HandleNil)
			}
		}
		if TheBit(bit+1) > size {
			break
		}
		pairings := uint64(len(paired)) - bitM
		for i := uint64(0); i < pairings; i++ {
			paired[i] = arena.Intern(paired[i], paired[i+bitM])
		}
		paired = paired[:pairings]
	}
	return s
}

// SingleLeaf builds the IndexedSeq of one leaf. No arena is needed: a lone
// leaf has no interior nodes.
func SingleLeaf(leaf Handle) *IndexedSeq {
	return &IndexedSeq{assocs: []Split{
		{Right: []Handle{leaf}},
		{Left: []Handle{leaf}},
	}}
}

// Size returns the number of leaves in the sequence.
func (s *IndexedSeq) Size() uint64 { return uint64(len(s.assocs)) - 1 }

// IsEmpty reports whether the sequence has no leaves.
func (s *IndexedSeq) IsEmpty() bool { return s.Size() == 0 }

// association returns the split whose Right side has onRight leaves.
func (s *IndexedSeq) association(onRight uint64) *Split {
	return &s.assocs[s.Size()-onRight]
}

// associate returns the largest count <= seqSize made of the low bits of
// stackSize, that is stackSize mod 2^k for some k. This is the portion of a sequence of seqSize leaves that
// can be matched against (or removed from) a stack of stackSize entries
// using only whole trees; the remainder requires borrowing from the next
// larger tree.
func associate(stackSize, seqSize uint64) uint64 {
	mask := TheBit(BitLength64(seqSize)) - 1
	masked := stackSize & mask
	if masked <= seqSize {
		return masked
	}
	return stackSize & (mask >> 1)
}
