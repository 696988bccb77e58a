package pile

import "github.com/lukadante/rala/circular"

// slopeWindow is a monotone decreasing deque of (position, value) pairs,
// giving O(1) amortized access to the running max of values within a
// sliding position window. Grounded on read.cpp's
// coverage_window_add/coverage_window_update pair.
type slopeWindow struct {
	pos    []PosType
	val    []int32
	head   int
}

func newSlopeWindow(expectedWidth PosType) *slopeWindow {
	sz := circular.NextExp2(int(expectedWidth) + 1)
	return &slopeWindow{
		pos: make([]PosType, 0, sz),
		val: make([]int32, 0, sz),
	}
}

// add pushes (pos, val), first evicting any trailing entries whose value
// is no greater than val — they can never be the window max again once a
// later, at-least-as-large value exists.
func (w *slopeWindow) add(pos PosType, val int32) {
	for len(w.val) > w.head && w.val[len(w.val)-1] <= val {
		w.val = w.val[:len(w.val)-1]
		w.pos = w.pos[:len(w.pos)-1]
	}
	w.pos = append(w.pos, pos)
	w.val = append(w.val, val)
}

// update evicts entries whose position has fallen out of the window (at or
// before minPos).
func (w *slopeWindow) update(minPos PosType) {
	for w.head < len(w.pos) && w.pos[w.head] <= minPos {
		w.head++
	}
}

// frontVal returns the current window max, if any entries remain.
func (w *slopeWindow) frontVal() (int32, bool) {
	if w.head >= len(w.pos) {
		return 0, false
	}
	return w.val[w.head], true
}
