package pile

import "sort"

// FindChimericRegions looks for a coverage "pit" — two opposing coverage
// slopes close enough together to indicate a chimeric breakpoint — within
// [Begin,End), splitting at every such break and keeping only the longest
// resulting piece. Returns true iff a break was found (whether or not the pile
// survived the split). Grounded on read.cpp's find_coverage_pits.
func (p *Pile) FindChimericRegions(datasetMedian uint16) bool {
	if !p.Alive {
		return false
	}

	k := minSlopeWidth
	if w := PosType(slopeWidthRatio * float64(p.End-p.Begin)); w > k {
		k = w
	}
	readLength := PosType(len(p.Coverage))
	medianThreshold := int32(datasetMedian) / 2

	left := newSlopeWindow(k)
	right := newSlopeWindow(k)
	var slopes []int64

	for i := -k + 2; i < readLength-1; i++ {
		if i < readLength-k {
			right.add(i+k, int32(p.Coverage[i+k]))
		}
		right.update(i)

		if i <= 0 {
			continue
		}

		left.add(i-1, int32(p.Coverage[i-1]))
		left.update(i - 1 - k)

		if int32(p.Coverage[i]) > medianThreshold {
			continue
		}
		current := float64(p.Coverage[i]) * slopeRatio

		if v, ok := left.frontVal(); ok && float64(v) > current {
			slopes = append(slopes, int64(i)<<1)
		}
		if v, ok := right.frontVal(); ok && float64(v) > current {
			slopes = append(slopes, int64(i)<<1|1)
		}
	}

	if len(slopes) == 0 {
		return false
	}
	sort.Slice(slopes, func(i, j int) bool { return slopes[i] < slopes[j] })

	isChimeric := false
	breakpoints := []PosType{p.Begin}
	for i := 0; i < len(slopes)-1; i++ {
		if slopes[i]&1 == 0 && slopes[i+1]&1 == 1 && (slopes[i+1]>>1)-(slopes[i]>>1) < int64(k) {
			isChimeric = true
			breakpoints = append(breakpoints, PosType((slopes[i]>>1+slopes[i+1]>>1)/2))
		}
	}
	breakpoints = append(breakpoints, p.End)
	if !isChimeric {
		return false
	}

	var newBegin, newEnd PosType
	for i := 0; i < len(breakpoints)-1; i++ {
		if breakpoints[i+1]-breakpoints[i] > newEnd-newBegin {
			newBegin, newEnd = breakpoints[i], breakpoints[i+1]
		}
	}
	if newBegin == newEnd || newEnd-newBegin < validRegionMinLength {
		p.Alive = false
	} else {
		p.zeroOutsideAndShrink(newBegin, newEnd)
	}
	return true
}
