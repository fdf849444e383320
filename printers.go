package suffixstack

import (
	"fmt"
	"strings"
)

// debug utilities

func handleStringer(h Handle) string {
	switch {
	case h.IsNil():
		return "_"
	case h.IsLeaf():
		return fmt.Sprintf("%d", h.LeafValue())
	default:
		return fmt.Sprintf("n%d", h.nodeIndex())
	}
}

func treeListStringer(trees []Handle) string {
	parts := make([]string, 0, len(trees))
	for _, h := range trees {
		parts = append(parts, handleStringer(h))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// String renders the depth and the slot-per-bit tree list, smallest first.
func (t *TreeStack) String() string {
	return fmt.Sprintf("n=%d trees=%s", t.size, treeListStringer(t.trees))
}

// String renders every split of the sequence.
func (s *IndexedSeq) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "len=%d", s.Size())
	for k, split := range s.assocs {
		fmt.Fprintf(&b, " %d:%s|%s", k, treeListStringer(split.Left), treeListStringer(split.Right))
	}
	return b.String()
}
