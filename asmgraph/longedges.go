package asmgraph

// longEdgeRatio is the overhang ratio below which a shorter-overhang
// branch is pruned against a much-longer-overhang sibling (graph.cpp's
// remove_long_edges, Li 2016 "long edge" rule; spec.md's Design Notes flag
// this as an overhang comparison rather than the published absolute-length
// one, preserved faithfully).
const longEdgeRatio = 0.9

// RemoveLongEdges marks, for every node with at least two outgoing edges,
// any edge whose overhang (node length minus edge length) is less than
// longEdgeRatio times another sibling edge's overhang — the shorter
// branch is noise against the much longer one. Returns the number marked.
func (g *Graph) RemoveLongEdges() int {
	var removed int
	for _, n := range g.Nodes {
		if n == nil || len(n.OutEdges) < 2 {
			continue
		}
		nodeLen := float64(n.Length())

		for _, id := range n.OutEdges {
			e := g.Edge(id)
			for _, otherID := range n.OutEdges {
				if id == otherID {
					continue
				}
				other := g.Edge(otherID)
				if e.Marked || other.Marked {
					continue
				}
				if nodeLen-float64(other.Length) < (nodeLen-float64(e.Length))*longEdgeRatio {
					g.mark(other)
					removed++
				}
			}
		}
	}

	g.removeMarkedObjects(false)
	return removed
}
