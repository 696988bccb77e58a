package asmgraph

import "github.com/lukadante/rala/overlap"

// OverlapType is the post-trim classification spec.md §3 defines. Only
// AtoB and BtoA produce edges.
type OverlapType int

const (
	Internal OverlapType = iota
	ContainedA
	ContainedB
	AtoB
	BtoA
)

// minOverlapSpan is the trimmed-span floor below which an overlap is
// discarded outright (spec.md §3).
const minOverlapSpan = 500

// classify mirrors b's interval into a's orientation frame (per strand)
// and classifies the trimmed overlap the way spec.md §3 describes:
// overhangs on either side of the aligned region on each read determine
// whether one read is contained in the other, or which one's suffix
// overlaps the other's prefix. mBegin/mEnd are b's interval expressed in
// that mirrored frame (same values construction uses for edge lengths).
func classify(aBegin, aEnd, aLen, bBegin, bEnd, bLen uint32, strand overlap.Strand) (t OverlapType, mBegin, mEnd uint32) {
	if strand == overlap.Reverse {
		mBegin, mEnd = bLen-bEnd, bLen-bBegin
	} else {
		mBegin, mEnd = bBegin, bEnd
	}

	leftA, rightA := aBegin, aLen-aEnd
	leftB, rightB := mBegin, bLen-mEnd

	switch {
	case leftA == 0 && rightA == 0:
		t = ContainedA
	case leftB == 0 && rightB == 0:
		t = ContainedB
	case leftA > 0 && rightB > 0:
		t = AtoB
	case leftB > 0 && rightA > 0:
		t = BtoA
	default:
		t = Internal
	}
	return t, mBegin, mEnd
}
