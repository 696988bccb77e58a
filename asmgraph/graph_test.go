package asmgraph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// revcompForTest is a minimal A/C/G/T reverse complement, good enough for
// building twin labels in these structural tests (content correctness of
// basepairs isn't what's under test here).
func revcompForTest(s string) string {
	comp := map[byte]byte{'A': 'T', 'C': 'G', 'G': 'C', 'T': 'A'}
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		b[len(s)-1-i] = comp[s[i]]
	}
	return string(b)
}

// addTestNode appends a forward/reverse node pair with the given label and
// member reads, returning the forward id.
func addTestNode(g *Graph, label string, members ...uint32) NodeID {
	fwd := &Node{Label: label, MemberReads: append([]uint32(nil), members...)}
	rev := &Node{Label: revcompForTest(label), MemberReads: append([]uint32(nil), members...), FirstRC: true, LastRC: true}
	return g.addNodePair(fwd, rev)
}

// addTestEdge appends a forward edge src->dst of the given length and its
// twin dst.Pair()->src.Pair() of twinLength, returning the forward id.
func addTestEdge(g *Graph, src, dst NodeID, length, twinLength uint32) EdgeID {
	return g.addEdgePair(
		&Edge{Src: src, Dst: dst, Length: length},
		&Edge{Src: dst.Pair(), Dst: src.Pair(), Length: twinLength},
	)
}

// bases returns a synthetic sequence of exactly n bases, long enough for
// any edge length these tests exercise.
func bases(n int) string {
	return strings.Repeat("ACGT", n/4+1)[:n]
}

func TestLinearChainCollapsesToOneUnitig(t *testing.T) {
	// spec.md §8 scenario 1, with the arithmetic carried through
	// correctly: A--700-->B--700-->C, each read 1000bp. Edge length is
	// the src-exclusive prefix contributed (a_begin - b_begin), so the
	// concatenated unitig is edge1.Label + edge2.Label + C's full label:
	// 700 + 700 + 1000 = 2400 bases, not a naive sum of the three reads.
	g := newGraph()
	a := addTestNode(g, bases(1000), 0)
	b := addTestNode(g, bases(1000), 1)
	c := addTestNode(g, bases(1000), 2)
	addTestEdge(g, a, b, 700, 0)
	addTestEdge(g, b, c, 700, 0)

	created := g.CreateUnitigs()
	require.Equal(t, 1, created)

	contigs := g.ExtractContigs(false)
	require.Len(t, contigs, 1)
	assert.Equal(t, 2400, len(contigs[0].Bases))
	assert.Equal(t, []uint32{0, 1, 2}, contigs[0].MemberReads)
}

func TestTransitiveTriangleCollapses(t *testing.T) {
	// spec.md §8 scenario 2: X->Y (300), Y->Z (250), X->Z (540).
	// 300+250=550 is within 12% of 540, so X->Z is redundant.
	g := newGraph()
	x := addTestNode(g, bases(1000), 0)
	y := addTestNode(g, bases(1000), 1)
	z := addTestNode(g, bases(1000), 2)
	addTestEdge(g, x, y, 300, 0)
	addTestEdge(g, y, z, 250, 0)
	addTestEdge(g, x, z, 540, 0)

	removed := g.RemoveTransitiveEdges()
	assert.Equal(t, 1, removed)
	assert.Len(t, g.Node(x).OutEdges, 1)
	assert.Equal(t, y, g.Edge(g.Node(x).OutEdges[0]).Dst)

	// What remains is a plain linear chain.
	created := g.CreateUnitigs()
	assert.Equal(t, 1, created)
}

func TestTransitiveReductionIsIdempotent(t *testing.T) {
	g := newGraph()
	x := addTestNode(g, bases(1000), 0)
	y := addTestNode(g, bases(1000), 1)
	z := addTestNode(g, bases(1000), 2)
	addTestEdge(g, x, y, 300, 0)
	addTestEdge(g, y, z, 250, 0)
	addTestEdge(g, x, z, 540, 0)

	first := g.RemoveTransitiveEdges()
	require.Equal(t, 1, first)

	second := g.RemoveTransitiveEdges()
	assert.Equal(t, 0, second)
}

func TestLongEdgePrunesShortOverhangSibling(t *testing.T) {
	// spec.md §8 scenario 6: junction of length 10000 with edges of
	// length 9500 (overhang 500) and 2000 (overhang 8000). 500 < 0.9*8000
	// so the 9500 edge is pruned.
	g := newGraph()
	j := addTestNode(g, bases(10000), 0)
	p := addTestNode(g, bases(10000), 1)
	q := addTestNode(g, bases(10000), 2)
	shortOverhang := addTestEdge(g, j, p, 9500, 0)
	addTestEdge(g, j, q, 2000, 0)

	removed := g.RemoveLongEdges()
	assert.Equal(t, 1, removed)
	assert.Nil(t, g.Edge(shortOverhang))
	require.Len(t, g.Node(j).OutEdges, 1)
	assert.Equal(t, q, g.Edge(g.Node(j).OutEdges[0]).Dst)
}

func TestRemoveTipsDropsShortDeadEnd(t *testing.T) {
	// spec.md §8 scenario 5: A->B (which continues to B2, so B is not
	// itself a dead end) and A->C, where C has no successors and
	// represents 3 reads. The tip surfaces on C's reverse twin (indegree
	// 0, outdegree 1 from A's perspective), so remove_tips marks A->C's
	// twin, which takes A->C and C down with it. B must have its own
	// successor here: if both branches dead-ended, each would look like a
	// tip from the reverse side and whichever has the lower node id would
	// win by iteration order alone, which isn't the scenario being tested.
	g := newGraph()
	a := addTestNode(g, bases(1000), 0)
	b := addTestNode(g, bases(1000), 1)
	c := addTestNode(g, bases(1000), 2, 3, 4)
	b2 := addTestNode(g, bases(1000), 5)
	addTestEdge(g, a, b, 700, 0)
	addTestEdge(g, b, b2, 700, 0)
	addTestEdge(g, a, c, 700, 0)

	removed := g.RemoveTips()
	assert.Equal(t, 1, removed)
	assert.Nil(t, g.Node(c))
	assert.Nil(t, g.Node(c.Pair()))
	require.Len(t, g.Node(a).OutEdges, 1)
	assert.Equal(t, b, g.Edge(g.Node(a).OutEdges[0]).Dst)
}

func TestRemoveTipsFixedPointIsIdempotent(t *testing.T) {
	g := newGraph()
	a := addTestNode(g, bases(1000), 0)
	b := addTestNode(g, bases(1000), 1)
	c := addTestNode(g, bases(1000), 2, 3, 4)
	b2 := addTestNode(g, bases(1000), 5)
	addTestEdge(g, a, b, 700, 0)
	addTestEdge(g, b, b2, 700, 0)
	addTestEdge(g, a, c, 700, 0)

	require.Equal(t, 1, g.RemoveTips())
	assert.Equal(t, 0, g.RemoveTips())
}

func TestBubblePopsWeakerPath(t *testing.T) {
	// spec.md §8 scenario 3: A->B, B forks into B->B1->B2->D and B->C->D;
	// the branch with fewer member reads is popped.
	g := newGraph()
	a := addTestNode(g, bases(1000), 0)
	b := addTestNode(g, bases(1000), 1)
	b1 := addTestNode(g, bases(1000), 2)
	b2 := addTestNode(g, bases(1000), 3)
	c := addTestNode(g, bases(1000), 4, 5, 6) // heavier: more member reads
	d := addTestNode(g, bases(1000), 7)

	addTestEdge(g, a, b, 700, 0)
	addTestEdge(g, b, b1, 700, 0)
	addTestEdge(g, b1, b2, 700, 0)
	addTestEdge(g, b2, d, 700, 0)
	addTestEdge(g, b, c, 700, 0)
	addTestEdge(g, c, d, 700, 0)

	popped := g.RemoveBubbles()
	assert.Equal(t, 1, popped)

	// The weaker (fewer member-reads) path is the B1/B2 branch; it should
	// be disconnected from B now.
	var dstLabelsFromB []NodeID
	for _, id := range g.Node(b).OutEdges {
		dstLabelsFromB = append(dstLabelsFromB, g.Edge(id).Dst)
	}
	assert.ElementsMatch(t, []NodeID{c}, dstLabelsFromB)
}

func TestExtractContigsHeaderFormat(t *testing.T) {
	g := newGraph()
	addTestNode(g, bases(20000), 10, 11, 12, 13, 14, 15)

	contigs := g.ExtractContigs(true)
	require.Len(t, contigs, 1)
	assert.Equal(t, ">Ctg0 RC:i:6 LN:i:20000 Seqs:10,11,12,13,14,15", contigs[0].Header())
}

func TestExtractContigsDropsUnassembledByDefault(t *testing.T) {
	g := newGraph()
	addTestNode(g, bases(500), 0) // too short, too few reads

	assert.Len(t, g.ExtractContigs(true), 0)
	assert.Len(t, g.ExtractContigs(false), 1)
}
