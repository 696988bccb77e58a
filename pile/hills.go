package pile

import "sort"

// slopeRegion groups consecutive same-direction slope hits into one span.
// first packs (position<<1)|kind, where kind 1 marks an up-slope (value
// rises to the right) and kind 0 marks a down-slope (value rises to the
// left); second is the last position folded into the group.
type slopeRegion struct {
	first  int64
	second PosType
}

// FindRepetitiveRegions detects boundary repeats: an up-slope immediately
// followed by a down-slope, close enough together and flat enough on top
// to be a plateau, sitting near the prefix or suffix of [Begin,End).
// Detected spans are appended to Hills. Grounded on read.cpp's
// find_coverage_hills.
func (p *Pile) FindRepetitiveRegions(datasetMedian uint16) {
	if !p.Alive {
		return
	}

	k := minSlopeWidth
	if w := PosType(slopeWidthRatio * float64(p.End-p.Begin)); w > k {
		k = w
	}
	readLength := PosType(len(p.Coverage))
	dm := int32(datasetMedian)

	left := newSlopeWindow(k)
	right := newSlopeWindow(k)
	var slopes []int64

	for i := -k + 2; i < readLength; i++ {
		if i < readLength-k {
			right.add(i+k, int32(p.Coverage[i+k]))
		}
		right.update(i)

		if i == 0 {
			current := float64(p.Coverage[i]) * slopeRatio
			if int32(p.Coverage[i+1]) > dm {
				if v, ok := right.frontVal(); ok && v > dm && float64(v) > current {
					slopes = append(slopes, int64(i)<<1|1)
				}
			}
			continue
		}
		if i <= 0 {
			continue
		}

		left.add(i-1, int32(p.Coverage[i-1]))
		left.update(i - 1 - k)

		current := float64(p.Coverage[i]) * slopeRatio
		if int32(p.Coverage[i-1]) > dm {
			if v, ok := left.frontVal(); ok && v > dm && float64(v) > current {
				slopes = append(slopes, int64(i)<<1)
			}
		}
		if i == readLength-1 || int32(p.Coverage[i+1]) > dm {
			if v, ok := right.frontVal(); ok && v > dm && float64(v) > current {
				slopes = append(slopes, int64(i)<<1|1)
			}
		}
	}

	if len(slopes) <= 1 {
		return
	}

	regions := groupSlopeRegions(slopes, k)
	rearrangeOverlappingRegions(regions, p.Coverage)
	p.collectHills(regions, datasetMedian)
}

func groupSlopeRegions(slopes []int64, slopeWidth PosType) []slopeRegion {
	var regions []slopeRegion
	var firstDown, lastDown PosType
	var firstUp, lastUp PosType
	haveDown, haveUp := false, false

	for _, s := range slopes {
		pos := PosType(s >> 1)
		if s&1 == 1 {
			switch {
			case !haveUp:
				haveUp = true
				firstUp, lastUp = pos, pos
			case pos-firstUp > slopeWidth:
				regions = append(regions, slopeRegion{int64(firstUp)<<1 | 1, lastUp})
				firstUp, lastUp = pos, pos
			default:
				lastUp = pos
			}
			continue
		}
		switch {
		case !haveDown:
			haveDown = true
			firstDown, lastDown = pos, pos
		case pos-firstDown > slopeWidth:
			regions = append(regions, slopeRegion{int64(firstDown) << 1, lastDown})
			firstDown, lastDown = pos, pos
		default:
			lastDown = pos
		}
	}
	if haveUp {
		regions = append(regions, slopeRegion{int64(firstUp)<<1 | 1, lastUp})
	}
	if haveDown {
		regions = append(regions, slopeRegion{int64(firstDown) << 1, lastDown})
	}
	sort.Slice(regions, func(i, j int) bool {
		if regions[i].first != regions[j].first {
			return regions[i].first < regions[j].first
		}
		return regions[i].second < regions[j].second
	})
	return regions
}

// rearrangeOverlappingRegions resolves two adjacent regions whose spans
// overlap by splitting at the local coverage minimum between them, so the
// hill-detection pass below never sees ambiguous double-counted bases.
func rearrangeOverlappingRegions(regions []slopeRegion, coverage []uint16) {
	rearrange := func(i, j int) {
		begin := PosType(regions[i].first >> 1)
		if o := PosType(regions[j].first >> 1); o > begin {
			begin = o
		}
		end := regions[i].second
		if regions[j].second < end {
			end = regions[j].second
		}
		if end <= begin+1 {
			return
		}
		minLeftID, minRightID := begin, begin
		for s := begin + 1; s < end; s++ {
			if coverage[s] < coverage[minLeftID] {
				minLeftID = s
			}
			if coverage[s] <= coverage[minRightID] {
				minRightID = s
			}
		}
		minLeftID++
		if minRightID > begin {
			minRightID--
		}
		regions[i] = slopeRegion{int64(minLeftID) << 1, minLeftID}
		regions[j] = slopeRegion{int64(minRightID)<<1 | 1, minRightID}
	}

	for s := 0; s < len(regions)-1; s++ {
		if regions[s].first&1 == 1 && regions[s+1].first&1 == 0 &&
			regions[s].second > PosType(regions[s+1].first>>1) {
			rearrange(s, s+1)
		}
	}
	for s := 0; s < len(regions)-1; s++ {
		if regions[s].second > PosType(regions[s+1].first>>1) {
			rearrange(s, s+1)
		}
	}
}

func (p *Pile) collectHills(regions []slopeRegion, datasetMedian uint16) {
	checkHill := func(begin, end PosType, median float64) bool {
		if end <= begin {
			return false
		}
		var valid PosType
		for i := begin; i < end; i++ {
			if float64(p.Coverage[i]) >= median*slopeRatio {
				valid++
			}
		}
		return float64(valid) > hillMinCoverageFraction*float64(end-begin)
	}

	span := float64(p.End - p.Begin)
	maxWidth := PosType(span * hillWidthRatio)
	prefixEdge := p.Begin + PosType(hillEdgeFraction*span)
	suffixEdge := p.End - PosType(hillEdgeFraction*span)

	for r := 0; r < len(regions)-1; r++ {
		if regions[r].first&1 != 1 || regions[r+1].first&1 != 0 {
			continue
		}
		lo := PosType(regions[r].first >> 1)
		hi := regions[r+1].second
		if hi-lo >= maxWidth {
			continue
		}
		if !checkHill(regions[r].second+1, PosType(regions[r+1].first>>1)-1, float64(datasetMedian)) {
			continue
		}
		if lo <= prefixEdge || hi >= suffixEdge {
			p.Hills = append(p.Hills, Hill{lo, hi})
		}
	}
}
