package asmgraph

import "strings"

// CreateUnitigs compacts every maximal chain of non-junction nodes into a
// single unitig node, preserving member-read order and wiring any
// entering/exiting junction edges onto the new node. Returns the number of
// unitigs created. Grounded on graph.cpp's create_unitigs.
func (g *Graph) CreateUnitigs() int {
	visited := make([]bool, len(g.Nodes))
	var created int

	for _, it := range g.Nodes {
		if it == nil || visited[it.ID] || it.IsJunction() {
			continue
		}

		circular := false
		beginNode := it
		for !beginNode.IsJunction() {
			visited[beginNode.ID] = true
			visited[beginNode.ID.Pair()] = true
			if beginNode.Indegree() == 0 {
				break
			}
			pred := g.Node(g.Edge(beginNode.InEdges[0]).Src)
			if pred.IsJunction() {
				break
			}
			beginNode = pred
			if beginNode.ID == it.ID {
				circular = true
				break
			}
		}

		endNode := it
		for !endNode.IsJunction() {
			visited[endNode.ID] = true
			visited[endNode.ID.Pair()] = true
			if endNode.Outdegree() == 0 {
				break
			}
			succ := g.Node(g.Edge(endNode.OutEdges[0]).Dst)
			if succ.IsJunction() {
				break
			}
			endNode = succ
			if endNode.ID == it.ID {
				circular = true
				break
			}
		}

		if !circular && beginNode.ID == endNode.ID {
			continue
		}

		fwdLabel, fwdMembers, fwdFirstRC, fwdLastRC := g.walkChainLabel(beginNode, endNode)
		revLabel, revMembers, revFirstRC, revLastRC := g.walkChainLabel(g.Node(endNode.ID.Pair()), g.Node(beginNode.ID.Pair()))

		unitig := &Node{Label: fwdLabel, MemberReads: fwdMembers, FirstRC: fwdFirstRC, LastRC: fwdLastRC}
		unitigComplement := &Node{Label: revLabel, MemberReads: revMembers, FirstRC: revFirstRC, LastRC: revLastRC}
		unitigID := g.addNodePair(unitig, unitigComplement)
		created++

		if beginNode.ID != endNode.ID {
			if beginNode.Indegree() != 0 {
				enter := g.Edge(beginNode.InEdges[0])
				enterPair := g.Edge(enter.ID.Pair())
				g.mark(enter)

				g.addEdgePair(
					&Edge{Src: enter.Src, Dst: unitigID, Length: enter.Length},
					&Edge{Src: unitigID.Pair(), Dst: enterPair.Dst, Length: enterPair.Length + unitigComplement.Length() - g.Node(beginNode.ID.Pair()).Length()},
				)
			}

			if endNode.Outdegree() != 0 {
				exit := g.Edge(endNode.OutEdges[0])
				exitPair := g.Edge(exit.ID.Pair())
				g.mark(exit)

				g.addEdgePair(
					&Edge{Src: unitigID, Dst: exit.Dst, Length: exit.Length + unitig.Length() - endNode.Length()},
					&Edge{Src: exitPair.Src, Dst: unitigID.Pair(), Length: exitPair.Length},
				)
			}
		}

		node := beginNode
		for {
			edge := g.Edge(node.OutEdges[0])
			g.mark(edge)
			node = g.Node(edge.Dst)
			if node.ID == endNode.ID {
				break
			}
		}
	}

	g.removeMarkedObjects(true)
	return created
}

// walkChainLabel concatenates the Src-exclusive prefix each edge
// contributes from beginNode through endNode (inclusive), returning the
// unitig's bases, its ordered member-read ids, and the first/last
// contributing node's orientation flags. When beginNode == endNode (a
// circular chain) the walk goes all the way around without appending
// endNode's own label a second time, matching graph.cpp's unitig
// constructor.
func (g *Graph) walkChainLabel(beginNode, endNode *Node) (string, []uint32, bool, bool) {
	var sb strings.Builder
	var members []uint32
	firstRC := beginNode.FirstRC
	lastRC := beginNode.LastRC

	node := beginNode
	for {
		edge := g.Edge(node.OutEdges[0])
		sb.WriteString(g.edgeLabel(edge))
		members = append(members, node.MemberReads...)
		lastRC = node.LastRC
		node = g.Node(edge.Dst)
		if node.ID == endNode.ID {
			break
		}
	}

	if beginNode.ID != endNode.ID {
		sb.WriteString(endNode.Label)
		members = append(members, endNode.MemberReads...)
		lastRC = endNode.LastRC
	}

	return sb.String(), members, firstRC, lastRC
}
