package pile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddBoundsAccumulatesCoverage(t *testing.T) {
	p := New(0, 1000)
	// Two overlaps opening at 100 and 300 and closing (exclusively) at 499
	// and 699: expect coverage 1 over [100,300), 2 over [300,499), 1 over
	// [499,699).
	p.AddBounds([]uint32{
		uint32(100) << 1, uint32(499)<<1 | 1,
		uint32(300) << 1, uint32(699)<<1 | 1,
	})
	assert.EqualValues(t, 0, p.Coverage[50])
	assert.EqualValues(t, 1, p.Coverage[150])
	assert.EqualValues(t, 2, p.Coverage[400])
	assert.EqualValues(t, 1, p.Coverage[600])
	assert.EqualValues(t, 0, p.Coverage[800])
}

func TestFindValidRegionKeepsLongestRun(t *testing.T) {
	p := New(0, 2000)
	// Build two runs at or above threshold 4: [0,400) strong, [1000,1800)
	// strong (the longer one), separated by a weak middle.
	for i := PosType(0); i < 400; i++ {
		p.Coverage[i] = 10
	}
	for i := PosType(1000); i < 1800; i++ {
		p.Coverage[i] = 10
	}
	ok := p.FindValidRegion()
	require.True(t, ok)
	assert.True(t, p.Alive)
	assert.Equal(t, PosType(1000), p.Begin)
	assert.Equal(t, PosType(1800), p.End)
	// Coverage outside the kept region must be zeroed.
	assert.EqualValues(t, 0, p.Coverage[100])
}

func TestFindValidRegionInvalidatesWhenTooShort(t *testing.T) {
	p := New(0, 1000)
	for i := PosType(0); i < 200; i++ {
		p.Coverage[i] = 10
	}
	ok := p.FindValidRegion()
	assert.False(t, ok)
	assert.False(t, p.Alive)
}

func TestFindMedianOddAndEven(t *testing.T) {
	p := New(0, 5)
	p.Begin, p.End = 0, 5
	copy(p.Coverage, []uint16{1, 2, 3, 4, 5})
	p.FindMedian()
	assert.EqualValues(t, 3, p.Median)

	p2 := New(0, 4)
	p2.Begin, p2.End = 0, 4
	copy(p2.Coverage, []uint16{1, 2, 3, 4})
	p2.FindMedian()
	assert.EqualValues(t, 2, p2.Median) // (2+3)/2 == 2 (integer division)
}

func TestCorrectRaisesCoverageToPointwiseMax(t *testing.T) {
	p := New(0, 100)
	other := New(1, 100)
	for i := PosType(0); i < 100; i++ {
		p.Coverage[i] = 1
		other.Coverage[i] = 5
	}
	p.Correct(10, 60, other, 10, 60, false)
	assert.EqualValues(t, 5, p.Coverage[20])
	assert.EqualValues(t, 1, p.Coverage[5]) // untouched, outside region
}

func TestCorrectSkipsWhenSpansDiffer(t *testing.T) {
	p := New(0, 100)
	other := New(1, 100)
	for i := PosType(0); i < 100; i++ {
		other.Coverage[i] = 9
	}
	// Spans differ by more than 1% of the shorter span.
	p.Correct(0, 50, other, 0, 10, false)
	assert.EqualValues(t, 0, p.Coverage[5])
}

func TestCorrectMirrorsOnReverseStrand(t *testing.T) {
	p := New(0, 100)
	other := New(1, 100)
	for i := PosType(0); i < 10; i++ {
		other.Coverage[10+i] = uint16(i + 1)
	}
	p.Correct(0, 10, other, 10, 20, true)
	// Reverse mirrors: p[0] should pick up other[19] (value 10), p[9] other[10] (value 1).
	assert.EqualValues(t, 10, p.Coverage[0])
	assert.EqualValues(t, 1, p.Coverage[9])
}

func TestIsValidOverlap(t *testing.T) {
	p := New(0, 1000)
	p.Hills = []Hill{{0, 100}, {900, 1000}}
	assert.False(t, p.IsValidOverlap(50, 150))
	assert.True(t, p.IsValidOverlap(200, 800))
	assert.False(t, p.IsValidOverlap(850, 950))
}
