package pile

import (
	"sort"

	"github.com/lukadante/rala/interval"
)

// PosType is the shared coordinate type for positions within a read,
// reused from the interval package so pile and graph arithmetic never
// silently truncates.
type PosType = interval.PosType

// Coverage thresholds and slope-detection constants, carried over from the
// original C++ defaults (original_source/src/read.cpp and graph.cpp).
const (
	validRegionMinCoverage PosType = 4
	validRegionMinLength   PosType = 500

	slopeRatio          = 1.817
	minSlopeWidth       PosType = 750
	slopeWidthRatio             = 0.05

	// hillWidthRatio bounds how much of a pile's valid region a detected
	// hill (up-slope immediately followed by down-slope) may span and
	// still count as a prefix/suffix repeat rather than the read's bulk.
	// Not pinned down by any retrieved source file; chosen in line with
	// the slope_ratio/slope_width_ratio pair above.
	hillWidthRatio = 0.8

	// hillMinCoverageFraction is the fraction of a candidate hill's
	// interior bases that must sit at or above slopeRatio*median for the
	// region to be accepted as a genuine plateau rather than noise.
	hillMinCoverageFraction = 0.85

	// hillEdgeFraction bounds how close to the very start or end of the
	// valid region a hill must sit to be considered a boundary repeat
	// (the original only records hills that touch the read's prefix or
	// suffix, not ones buried in the interior).
	hillEdgeFraction = 0.05
)

// Hill is a detected boundary repeat: a contiguous run where coverage
// plateaus near the read's prefix or suffix, a sign the read's end
// overlaps a repeated region elsewhere in the genome.
type Hill struct {
	Lo, Hi PosType
}

// Pile is one read's coverage-over-bases profile: for every base in
// [0, ReadLength), Coverage counts how many other reads' trimmed overlaps
// cover it. Begin/End track the current valid region; bases outside it are
// always zero, an invariant every mutating method preserves.
type Pile struct {
	ReadID     uint32
	ReadLength PosType
	Coverage   []uint16
	Begin, End PosType
	Median     uint16
	Hills      []Hill
	Alive      bool
}

// New creates a pile for readLength bases, initially valid over its whole
// span.
func New(readID uint32, readLength PosType) *Pile {
	return &Pile{
		ReadID:     readID,
		ReadLength: readLength,
		Coverage:   make([]uint16, readLength+1),
		Begin:      0,
		End:        readLength,
		Alive:      true,
	}
}

// AddBounds accumulates coverage from a set of overlap endpoints encoded
// the way spec.md §4.2 pass 1 emits them: open endpoints as (pos<<1) and
// close endpoints as (pos<<1)|1. Matches read.cpp's
// update_coverage_graph.
func (p *Pile) AddBounds(bounds []uint32) {
	if len(bounds) == 0 {
		return
	}
	sort.Slice(bounds, func(i, j int) bool { return bounds[i] < bounds[j] })

	var coverage uint16
	lastPos := PosType(0)
	for _, b := range bounds {
		pos := PosType(b >> 1)
		if coverage > 0 {
			for i := lastPos; i < pos; i++ {
				p.Coverage[i] += coverage
			}
		}
		lastPos = pos
		if b&1 == 1 {
			coverage--
		} else {
			coverage++
		}
	}
}

// zeroOutsideAndShrink zeros Coverage outside [begin,end) and narrows the
// valid region to it, preserving the "zero outside the valid region"
// invariant (read.cpp's reduce_coverage_graph).
func (p *Pile) zeroOutsideAndShrink(begin, end PosType) {
	for i := p.Begin; i < begin; i++ {
		p.Coverage[i] = 0
	}
	for i := end; i < p.End; i++ {
		p.Coverage[i] = 0
	}
	p.Begin, p.End = begin, end
}

// FindValidRegion narrows [Begin,End) to the longest maximal run of bases
// at or above coverage 4, invalidating the pile if no run reaches 500
// bases (read.cpp's find_valid_region).
func (p *Pile) FindValidRegion() bool {
	if !p.Alive {
		return false
	}

	var newBegin, newEnd, curBegin PosType
	open := false
	for i := p.Begin; i < p.End; i++ {
		switch {
		case !open && p.Coverage[i] >= uint16(validRegionMinCoverage):
			curBegin = i
			open = true
		case open && p.Coverage[i] < uint16(validRegionMinCoverage):
			if i-curBegin > newEnd-newBegin {
				newBegin, newEnd = curBegin, i
			}
			open = false
		}
	}
	if open && p.End-curBegin > newEnd-newBegin {
		newBegin, newEnd = curBegin, p.End
	}

	if newBegin == newEnd || newEnd-newBegin < validRegionMinLength {
		p.Alive = false
		return false
	}
	p.zeroOutsideAndShrink(newBegin, newEnd)
	return true
}

// FindMedian recomputes Median as the integer coverage median over
// [Begin,End).
func (p *Pile) FindMedian() {
	n := int(p.End - p.Begin)
	if n <= 0 {
		p.Median = 0
		return
	}
	tmp := make([]uint16, n)
	copy(tmp, p.Coverage[p.Begin:p.End])
	sort.Slice(tmp, func(i, j int) bool { return tmp[i] < tmp[j] })
	if n%2 == 1 {
		p.Median = tmp[n/2]
	} else {
		p.Median = uint16((uint32(tmp[n/2-1]) + uint32(tmp[n/2])) / 2)
	}
}

// Correct raises this pile's coverage over [regionBegin,regionEnd) to the
// pointwise max against other's coverage over the corresponding span of
// [otherBegin,otherEnd), mirrored when rc is true. Declines to correct
// when the two spans' lengths differ by more than 1%, matching
// read.cpp's correct_coverage_graph.
func (p *Pile) Correct(regionBegin, regionEnd PosType, other *Pile, otherBegin, otherEnd PosType, rc bool) {
	regionLength := regionEnd - regionBegin
	if l := otherEnd - otherBegin; l < regionLength {
		regionLength = l
	}
	if regionLength <= 0 {
		return
	}
	diff := (regionEnd - regionBegin) - (otherEnd - otherBegin)
	if diff < 0 {
		diff = -diff
	}
	if float64(diff)/float64(regionLength) > 0.01 {
		return
	}
	otherEnd = otherBegin + regionLength
	for i := PosType(0); i < regionLength; i++ {
		var v uint16
		if !rc {
			v = other.Coverage[otherBegin+i]
		} else {
			v = other.Coverage[otherEnd-i-1]
		}
		if v > p.Coverage[regionBegin+i] {
			p.Coverage[regionBegin+i] = v
		}
	}
}

// IsValidOverlap reports whether [begin,end) avoids every hill recorded
// on this pile.
func (p *Pile) IsValidOverlap(begin, end PosType) bool {
	for _, h := range p.Hills {
		if begin < h.Hi && h.Lo < end {
			return false
		}
	}
	return true
}
