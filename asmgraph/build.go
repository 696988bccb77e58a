package asmgraph

import (
	"github.com/lukadante/rala/overlap"
	"github.com/lukadante/rala/pile"
	"github.com/lukadante/rala/seq"
)

// edgeOverlap is one surviving overlap, already trimmed to the current
// pile bounds and rebased into each node's local (trimmed) coordinate
// frame, ready for edge construction.
type edgeOverlap struct {
	aID, bID           uint32
	aBegin, aEnd, aLen uint32
	mBegin, mEnd       uint32 // b's interval, mirrored into a's frame
	bLen               uint32
	strand             overlap.Strand
	typ                OverlapType
}

// Build runs graph construction per spec.md §4.3: a final overlap pass
// over ps's surviving records (drop Internal, invalidate contained
// piles, drop hill-intersecting overlaps, drop overlaps whose pile ended
// up dead), then creates one forward/reverse node pair per alive read and
// one edge pair per surviving AtoB/BtoA overlap.
func Build(store *seq.Store, ps *pile.PileSet) (*Graph, error) {
	provisional := make([]edgeOverlap, 0, len(ps.SurvivingOverlaps()))

	for _, r := range ps.SurvivingOverlaps() {
		pa, pb := ps.Piles[r.AID], ps.Piles[r.BID]
		if !pa.Alive || !pb.Alive {
			continue
		}

		aBegin, aEnd, aOK := clipSpan(r.ABegin, r.AEnd, pa.Begin, pa.End)
		bBegin, bEnd, bOK := clipSpan(r.BBegin, r.BEnd, pb.Begin, pb.End)
		if !aOK || !bOK {
			continue
		}
		if aEnd-aBegin < minOverlapSpan || bEnd-bBegin < minOverlapSpan {
			continue
		}

		aLen := uint32(pa.End - pa.Begin)
		bLen := uint32(pb.End - pb.Begin)
		aBeginLocal, aEndLocal := aBegin-uint32(pa.Begin), aEnd-uint32(pa.Begin)
		bBeginLocal, bEndLocal := bBegin-uint32(pb.Begin), bEnd-uint32(pb.Begin)

		typ, mBegin, mEnd := classify(aBeginLocal, aEndLocal, aLen, bBeginLocal, bEndLocal, bLen, r.Strand)

		switch typ {
		case Internal:
			continue
		case ContainedA:
			pa.Alive = false
			continue
		case ContainedB:
			pb.Alive = false
			continue
		}

		if !pa.IsValidOverlap(pile.PosType(aBeginLocal)+pa.Begin, pile.PosType(aEndLocal)+pa.Begin) ||
			!pb.IsValidOverlap(pile.PosType(bBeginLocal)+pb.Begin, pile.PosType(bEndLocal)+pb.Begin) {
			continue
		}

		provisional = append(provisional, edgeOverlap{
			aID: r.AID, bID: r.BID,
			aBegin: aBeginLocal, aEnd: aEndLocal, aLen: aLen,
			mBegin: mBegin, mEnd: mEnd, bLen: bLen,
			strand: r.Strand, typ: typ,
		})
	}

	final := provisional[:0]
	for _, o := range provisional {
		if ps.Piles[o.aID].Alive && ps.Piles[o.bID].Alive {
			final = append(final, o)
		}
	}

	g := newGraph()
	sequenceToNode := make(map[uint32]NodeID, len(ps.Piles))
	for _, p := range ps.Piles {
		if !p.Alive {
			continue
		}
		label := store.Bases(p.ReadID)[p.Begin:p.End]
		full := store.RevComp(p.ReadID)
		rcLabel := full[uint32(p.ReadLength)-uint32(p.End) : uint32(p.ReadLength)-uint32(p.Begin)]

		fwd := &Node{Name: store.Name(p.ReadID), Label: label, MemberReads: []uint32{p.ReadID}}
		rev := &Node{Name: store.Name(p.ReadID), Label: rcLabel, MemberReads: []uint32{p.ReadID}, FirstRC: true, LastRC: true}
		id := g.addNodePair(fwd, rev)
		sequenceToNode[p.ReadID] = id
	}

	for _, o := range final {
		nodeA := sequenceToNode[o.aID]
		baseB := sequenceToNode[o.bID]
		nodeB := baseB
		if o.strand == overlap.Reverse {
			nodeB = baseB.Pair()
		}

		switch o.typ {
		case AtoB:
			g.addEdgePair(
				&Edge{Src: nodeA, Dst: nodeB, Length: o.aBegin - o.mBegin},
				&Edge{Src: nodeB.Pair(), Dst: nodeA.Pair(), Length: (o.bLen - o.mEnd) - (o.aLen - o.aEnd)},
			)
		case BtoA:
			g.addEdgePair(
				&Edge{Src: nodeB, Dst: nodeA, Length: o.mBegin - o.aBegin},
				&Edge{Src: nodeA.Pair(), Dst: nodeB.Pair(), Length: (o.aLen - o.aEnd) - (o.bLen - o.mEnd)},
			)
		}
	}

	return g, nil
}

// clipSpan clamps [begin,end) to [lo,hi), returning ok=false if nothing
// survives. Mirrors pile's own trimSpan but operates on the uint32
// coordinates overlap.Record uses.
func clipSpan(begin, end uint32, lo, hi pile.PosType) (uint32, uint32, bool) {
	b, e := begin, end
	if pile.PosType(b) < lo {
		b = uint32(lo)
	}
	if pile.PosType(e) > hi {
		e = uint32(hi)
	}
	if b >= e {
		return 0, 0, false
	}
	return b, e, true
}
