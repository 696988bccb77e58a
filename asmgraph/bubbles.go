package asmgraph

// bubbleMaxDistance bounds how far remove_bubbles' BFS fans out in bases
// before giving up on a source (graph.cpp's remove_bubbles hard-codes
// 5,000,000).
const bubbleMaxDistance = 5000000

// bubbleLengthRatio is how close two candidate paths' total lengths must
// be, unless every interior node on both paths is itself unbranched.
const bubbleLengthRatio = 0.8

// RemoveBubbles runs a breadth-first search from every node with
// outdegree >= 2, looking for the first node reached twice; the two
// back-paths from predecessor bookkeeping form a candidate bubble. Valid
// candidates have their weaker path's removable edges marked. Returns the
// number of bubbles popped. Grounded on graph.cpp's remove_bubbles /
// find_removable_edges.
func (g *Graph) RemoveBubbles() int {
	n := len(g.Nodes)
	distance := make([]int64, n)
	predecessor := make([]int64, n)
	for i := range predecessor {
		predecessor[i] = -1
	}

	var popped int
	for _, src := range g.Nodes {
		if src == nil || len(src.OutEdges) < 2 {
			continue
		}

		source := src.ID
		var visited []NodeID
		var queue []NodeID
		queue = append(queue, source)
		visited = append(visited, source)

		var sink, sinkOtherPredecessor NodeID
		foundSink := false

		for len(queue) > 0 && !foundSink {
			v := queue[0]
			queue = queue[1:]
			curr := g.Node(v)

			for _, id := range curr.OutEdges {
				e := g.Edge(id)
				w := e.Dst
				if w == source {
					continue
				}
				if distance[v]+int64(e.Length) > bubbleMaxDistance {
					continue
				}

				distance[w] = distance[v] + int64(e.Length)
				visited = append(visited, w)
				queue = append(queue, w)

				if predecessor[w] != -1 {
					sink = w
					sinkOtherPredecessor = v
					foundSink = true
					break
				}
				predecessor[w] = int64(v)
			}
		}

		if foundSink {
			path := g.extractPath(predecessor, source, sink)
			otherPath := append(g.extractPath(predecessor, source, sinkOtherPredecessor), sink)

			if g.isValidBubble(path, otherPath) {
				var pathReads, otherPathReads int
				for _, id := range path {
					pathReads += len(g.Node(id).MemberReads)
				}
				for _, id := range otherPath {
					otherPathReads += len(g.Node(id).MemberReads)
				}

				var weaker []NodeID
				if pathReads > otherPathReads {
					weaker = otherPath
				} else {
					weaker = path
				}

				removable := g.findRemovableEdges(weaker)
				for _, id := range removable {
					g.mark(g.Edge(id))
				}
				if len(removable) > 0 {
					g.removeMarkedObjects(true)
					popped++
				}
			}
		}

		for _, id := range visited {
			distance[id] = 0
			predecessor[id] = -1
		}
	}

	return popped
}

// extractPath walks predecessor pointers from sink back to source
// (exclusive of re-adding source twice) and returns the path in
// source-to-sink order.
func (g *Graph) extractPath(predecessor []int64, source, sink NodeID) []NodeID {
	var rev []NodeID
	cur := sink
	for cur != source {
		rev = append(rev, cur)
		cur = NodeID(predecessor[cur])
	}
	rev = append(rev, source)

	path := make([]NodeID, len(rev))
	for i, id := range rev {
		path[len(rev)-1-i] = id
	}
	return path
}

// pathLength sums a path's edge lengths plus its final node's length
// (graph.cpp's calculate_path_length).
func (g *Graph) pathLength(path []NodeID) uint32 {
	length := g.Node(path[len(path)-1]).Length()
	for i := 0; i < len(path)-1; i++ {
		for _, id := range g.Node(path[i]).OutEdges {
			e := g.Edge(id)
			if e.Dst == path[i+1] {
				length += e.Length
				break
			}
		}
	}
	return length
}

// isValidBubble checks the three conditions spec.md §4.3's remove_bubbles
// lists: no shared interior nodes, no inverted-repeat node pair across the
// two paths, and either comparable total lengths or no interior junctions
// on either path.
func (g *Graph) isValidBubble(path, otherPath []NodeID) bool {
	nodeSet := make(map[NodeID]struct{}, len(path)+len(otherPath))
	for _, id := range path {
		nodeSet[id] = struct{}{}
	}
	for _, id := range otherPath {
		nodeSet[id] = struct{}{}
	}
	if len(path)+len(otherPath)-2 != len(nodeSet) {
		return false
	}

	for _, id := range path {
		if _, ok := nodeSet[id.Pair()]; ok {
			return false
		}
	}
	for _, id := range otherPath {
		if _, ok := nodeSet[id.Pair()]; ok {
			return false
		}
	}

	pathLen := float64(g.pathLength(path))
	otherLen := float64(g.pathLength(otherPath))
	minLen, maxLen := pathLen, otherLen
	if minLen > maxLen {
		minLen, maxLen = maxLen, minLen
	}
	if minLen < maxLen*bubbleLengthRatio {
		for i := 1; i < len(otherPath)-1; i++ {
			m := g.Node(otherPath[i])
			if m.Indegree() > 1 || m.Outdegree() > 1 {
				return false
			}
		}
		for i := 1; i < len(path)-1; i++ {
			m := g.Node(path[i])
			if m.Indegree() > 1 || m.Outdegree() > 1 {
				return false
			}
		}
	}
	return true
}

// findEdge returns the id of the edge src->dst, panicking with a
// GraphInvariant-style message if none exists: find_edge's C++ contract is
// that the caller only asks for edges it already knows are there.
func (g *Graph) findEdge(src, dst NodeID) EdgeID {
	for _, id := range g.Node(src).OutEdges {
		if g.Edge(id).Dst == dst {
			return id
		}
	}
	panic("asmgraph: missing edge between nodes that a path claims are adjacent")
}

// findRemovableEdges selects the subset of path's consecutive edges whose
// removal does not disconnect the path's junction endpoints from the rest
// of the graph (spec.md §4.3.1). pref is the first interior node with
// indegree > 1, suff the last interior node with outdegree > 1.
func (g *Graph) findRemovableEdges(path []NodeID) []EdgeID {
	pref, suff := -1, -1
	for i := 1; i < len(path)-1; i++ {
		if g.Node(path[i]).Indegree() > 1 {
			pref = i
			break
		}
	}
	for i := 1; i < len(path)-1; i++ {
		if g.Node(path[i]).Outdegree() > 1 {
			suff = i
		}
	}

	edgesBetween := func(lo, hi int) []EdgeID {
		dst := make([]EdgeID, 0, hi-lo)
		for i := lo; i < hi; i++ {
			dst = append(dst, g.findEdge(path[i], path[i+1]))
		}
		return dst
	}

	if pref == -1 && suff == -1 {
		return edgesBetween(0, len(path)-1)
	}
	if pref != -1 && g.Node(path[pref]).Outdegree() > 1 {
		return nil
	}
	if suff != -1 && g.Node(path[suff]).Indegree() > 1 {
		return nil
	}

	switch {
	case pref == -1:
		return edgesBetween(suff, len(path)-1)
	case suff == -1:
		return edgesBetween(0, pref)
	case suff < pref:
		return edgesBetween(suff, pref)
	}
	return nil
}
