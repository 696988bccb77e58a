package asmgraph

// NodeID identifies a node in the graph's arena. Even ids are the forward
// strand, odd ids are the reverse-complement twin; Pair() xors bit 0 to
// move between them (spec.md §3's "twin" data model, Design Notes'
// handle-pair prescription).
type NodeID uint64

// Pair returns the reverse-strand counterpart of this node id.
func (id NodeID) Pair() NodeID { return id ^ 1 }

// IsReverse reports whether id names the reverse-complement strand.
func (id NodeID) IsReverse() bool { return id&1 == 1 }

// EdgeID identifies an edge in the graph's arena, twin-paired the same way
// as NodeID.
type EdgeID uint64

// Pair returns the reverse-strand counterpart of this edge id.
func (id EdgeID) Pair() EdgeID { return id ^ 1 }

// tipMaxMemberReads is the member-read-count ceiling below which a
// zero-indegree node counts as a tip rather than a legitimate short contig
// end (graph.cpp's Node::is_tip).
const tipMaxMemberReads = 6

// Node is a read or a unitig viewed as a directed string with an implicit
// reverse-complement twin (spec.md §3). Label holds the node's bases
// directly (as graph.cpp's Node::data_ does) rather than a deferred
// lookup, since unitig nodes have no single backing read to defer to.
type Node struct {
	ID   NodeID
	Name string // original read name; empty for unitig nodes

	Label       string
	MemberReads []uint32

	InEdges  []EdgeID
	OutEdges []EdgeID

	// FirstRC/LastRC record whether the chain's first/last contributing
	// read was itself read in reverse-complement orientation, mirroring
	// graph.cpp's is_first_rc_/is_last_rc_ (consumed only by the JSON
	// debug dump).
	FirstRC bool
	LastRC  bool

	Marked bool
}

// Length is the node's base count.
func (n *Node) Length() uint32 { return uint32(len(n.Label)) }

// Indegree is the number of edges ending at n.
func (n *Node) Indegree() int { return len(n.InEdges) }

// Outdegree is the number of edges starting at n.
func (n *Node) Outdegree() int { return len(n.OutEdges) }

// IsJunction reports whether n branches on either side (spec.md §3,
// invariant 4).
func (n *Node) IsJunction() bool { return n.Outdegree() > 1 || n.Indegree() > 1 }

// IsTip reports whether n is a short dead end: no predecessor, at least
// one successor, and fewer than tipMaxMemberReads contributing reads.
func (n *Node) IsTip() bool {
	return n.Outdegree() > 0 && n.Indegree() == 0 && len(n.MemberReads) < tipMaxMemberReads
}

// Edge is a directed splice from Src to Dst (spec.md §3). Length is the
// count of Src-exclusive prefix bases the edge contributes when splicing
// Dst onto Src.
type Edge struct {
	ID     EdgeID
	Src    NodeID
	Dst    NodeID
	Length uint32
	Marked bool
}

// edgeLabel returns the Src-exclusive prefix this edge contributes, used when
// concatenating a unitig's bases (graph.cpp's Edge::label).
func (g *Graph) edgeLabel(e *Edge) string {
	src := g.Node(e.Src)
	if e.Length >= uint32(len(src.Label)) {
		return src.Label
	}
	return src.Label[:e.Length]
}

// Graph is the arena of nodes and edges plus the deferred deletion mark
// set (spec.md Design Notes' "marked-then-swept deletion"). Nodes and
// Edges are indexed directly by id; a nil slot means the object has been
// removed.
type Graph struct {
	Nodes []*Node
	Edges []*Edge

	marked map[EdgeID]struct{}
}

// newGraph returns an empty arena ready for construction.
func newGraph() *Graph {
	return &Graph{marked: make(map[EdgeID]struct{})}
}

// Node returns the node at id, or nil if it has been removed.
func (g *Graph) Node(id NodeID) *Node {
	if int(id) >= len(g.Nodes) {
		return nil
	}
	return g.Nodes[id]
}

// Edge returns the edge at id, or nil if it has been removed.
func (g *Graph) Edge(id EdgeID) *Edge {
	if int(id) >= len(g.Edges) {
		return nil
	}
	return g.Edges[id]
}

// addNodePair appends a forward/reverse node pair, assigning them the next
// two free ids (even then odd), and returns the forward id.
func (g *Graph) addNodePair(fwd, rev *Node) NodeID {
	id := NodeID(len(g.Nodes))
	fwd.ID = id
	rev.ID = id + 1
	g.Nodes = append(g.Nodes, fwd, rev)
	return id
}

// addEdgePair appends a forward/reverse edge pair, assigning them the next
// two free ids, wiring them into their endpoints' in/out lists, and
// returns the forward id.
func (g *Graph) addEdgePair(fwd, rev *Edge) EdgeID {
	id := EdgeID(len(g.Edges))
	fwd.ID = id
	rev.ID = id + 1
	g.Edges = append(g.Edges, fwd, rev)

	g.Node(fwd.Src).OutEdges = append(g.Node(fwd.Src).OutEdges, fwd.ID)
	g.Node(fwd.Dst).InEdges = append(g.Node(fwd.Dst).InEdges, fwd.ID)
	g.Node(rev.Src).OutEdges = append(g.Node(rev.Src).OutEdges, rev.ID)
	g.Node(rev.Dst).InEdges = append(g.Node(rev.Dst).InEdges, rev.ID)
	return id
}

// mark flags e and its twin for deferred removal.
func (g *Graph) mark(e *Edge) {
	e.Marked = true
	g.Edge(e.ID.Pair()).Marked = true
	g.marked[e.ID] = struct{}{}
	g.marked[e.ID.Pair()] = struct{}{}
}
