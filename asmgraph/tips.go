package asmgraph

// RemoveTips marks every outgoing edge of a tip node whose endpoint has
// indegree > 1 (the tip can't be the endpoint's only predecessor if that
// predecessor relation survives), and marks the tip itself (and its twin)
// when every one of its outgoing edges was marked. Returns the number of
// edges marked. Grounded on graph.cpp's remove_tips.
func (g *Graph) RemoveTips() int {
	var removedEdges int
	for _, n := range g.Nodes {
		if n == nil || !n.IsTip() {
			continue
		}

		var removedHere int
		for _, id := range n.OutEdges {
			e := g.Edge(id)
			if g.Node(e.Dst).Indegree() > 1 {
				g.mark(e)
				removedHere++
			}
		}

		if removedHere == len(n.OutEdges) {
			n.Marked = true
			g.Node(n.ID.Pair()).Marked = true
		}

		removedEdges += removedHere
		g.removeMarkedObjects(true)
	}
	return removedEdges
}
