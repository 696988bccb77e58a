package asmgraph

// transitiveLengthTolerance is the fractional slack remove_transitive_edges
// allows between a direct edge's length and the summed length of a
// candidate two-hop detour (graph.cpp's comparable(..., 0.12)).
const transitiveLengthTolerance = 0.12

// comparable reports whether a and b agree within the given fractional
// tolerance of each other, symmetrically (graph.cpp's free function of the
// same name).
func comparable(a, b, eps float64) bool {
	return (a >= b*(1-eps) && a <= b*(1+eps)) || (b >= a*(1-eps) && b <= a*(1+eps))
}

// RemoveTransitiveEdges runs Myers-style transitive reduction: for every
// node u and two-hop path u->v->w, marks the direct edge u->w for removal
// if its length is within 12% of the two-hop path's summed length.
// Returns the number of edges marked. Grounded on graph.cpp's
// remove_transitive_edges.
func (g *Graph) RemoveTransitiveEdges() int {
	candidate := make([]EdgeID, len(g.Nodes))
	hasCandidate := make([]bool, len(g.Nodes))

	var removed int
	for _, a := range g.Nodes {
		if a == nil {
			continue
		}
		for _, abID := range a.OutEdges {
			ab := g.Edge(abID)
			candidate[ab.Dst] = ab.ID
			hasCandidate[ab.Dst] = true
		}

		for _, abID := range a.OutEdges {
			ab := g.Edge(abID)
			b := g.Node(ab.Dst)
			for _, bcID := range b.OutEdges {
				bc := g.Edge(bcID)
				c := bc.Dst
				if !hasCandidate[c] {
					continue
				}
				ac := g.Edge(candidate[c])
				if ac.Marked {
					continue
				}
				if comparable(float64(ab.Length)+float64(bc.Length), float64(ac.Length), transitiveLengthTolerance) {
					g.mark(ac)
					removed++
				}
			}
		}

		for _, abID := range a.OutEdges {
			ab := g.Edge(abID)
			hasCandidate[ab.Dst] = false
		}
	}

	g.removeMarkedObjects(false)
	return removed
}
