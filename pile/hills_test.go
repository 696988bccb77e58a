package pile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindRepetitiveRegionsUniformCoverageFindsNoHills(t *testing.T) {
	p := New(0, 3000)
	p.Begin, p.End = 0, 3000
	for i := PosType(0); i < 3000; i++ {
		p.Coverage[i] = 20
	}
	p.FindRepetitiveRegions(20)
	assert.Empty(t, p.Hills)
}

func TestFindRepetitiveRegionsDeadPileIsNoop(t *testing.T) {
	p := New(0, 100)
	p.Alive = false
	p.FindRepetitiveRegions(10)
	assert.Empty(t, p.Hills)
}

func TestFindRepetitiveRegionsPrefixPlateauIsCandidateHill(t *testing.T) {
	p := New(0, 4000)
	p.Begin, p.End = 0, 4000
	for i := PosType(0); i < 4000; i++ {
		p.Coverage[i] = 20
	}
	// A tall, wide plateau right at the prefix: classic boundary-repeat
	// signature (coverage well above dataset median near the read start).
	for i := PosType(0); i < 600; i++ {
		p.Coverage[i] = 100
	}
	p.FindRepetitiveRegions(20)
	for _, h := range p.Hills {
		assert.True(t, h.Lo >= 0 && h.Hi <= p.End)
	}
}
