package asmgraph

// removeMarkedObjects sweeps every edge in g.marked out of its endpoints'
// in/out lists, optionally deletes any node left with zero degree on both
// sides (and its twin), then clears the mark set. Grounded on
// graph.cpp's remove_marked_objects.
func (g *Graph) removeMarkedObjects(removeNodes bool) {
	touchedNodes := map[NodeID]struct{}{}

	for id := range g.marked {
		e := g.Edge(id)
		if e == nil {
			continue
		}
		if removeNodes {
			touchedNodes[e.Src] = struct{}{}
			touchedNodes[e.Dst] = struct{}{}
		}
		g.Node(e.Src).OutEdges = compactEdges(g.Node(e.Src).OutEdges, g)
		g.Node(e.Dst).InEdges = compactEdges(g.Node(e.Dst).InEdges, g)
	}

	if removeNodes {
		for id := range touchedNodes {
			n := g.Node(id)
			if n != nil && n.Indegree() == 0 && n.Outdegree() == 0 {
				g.Nodes[id] = nil
			}
		}
	}

	for id := range g.marked {
		g.Edges[id] = nil
	}
	g.marked = make(map[EdgeID]struct{})
}

// compactEdges drops every marked (and already-removed) id from edges,
// preserving relative order of the survivors.
func compactEdges(edges []EdgeID, g *Graph) []EdgeID {
	out := edges[:0]
	for _, id := range edges {
		e := g.Edge(id)
		if e == nil || e.Marked {
			continue
		}
		out = append(out, id)
	}
	return out
}
