package asmgraph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"blainsmith.com/go/seahash"
	"github.com/pkg/errors"

	"github.com/lukadante/rala/pile"
)

// WriteDebug writes the three debug artifacts spec.md §6 and
// SPEC_FULL.md §4 describe under the given prefix: "{prefix}_graph.csv",
// "{prefix}_knots.json", and the supplemented "{prefix}.gfa".
func (g *Graph) WriteDebug(prefix string, piles *pile.PileSet) error {
	if err := g.WriteCSV(prefix + "_graph.csv"); err != nil {
		return err
	}
	if err := g.WriteGFA(prefix + ".gfa"); err != nil {
		return err
	}
	if err := g.WriteJSON(prefix+"_knots.json", piles); err != nil {
		return err
	}
	return nil
}

// WriteCSV writes one line per live forward node ("id LN:i:len RC:i:rc,
// twinid LN:i:len RC:i:rc, 0, -") and one per live edge ("src...,dst...,1,
// edge_id edge_len"), followed by a trailer comment carrying a seahash
// checksum of the content above it so two debug dumps can be compared by
// hash. Grounded on graph.cpp's print_csv.
func (g *Graph) WriteCSV(path string) error {
	var buf bytes.Buffer
	for _, n := range g.Nodes {
		if n == nil || n.ID.IsReverse() {
			continue
		}
		pair := g.Node(n.ID.Pair())
		fmt.Fprintf(&buf, "%d LN:i:%d RC:i:%d,%d LN:i:%d RC:i:%d,0,-\n",
			n.ID, n.Length(), len(n.MemberReads),
			pair.ID, pair.Length(), len(pair.MemberReads))
	}
	for _, e := range g.Edges {
		if e == nil {
			continue
		}
		src, dst := g.Node(e.Src), g.Node(e.Dst)
		fmt.Fprintf(&buf, "%d LN:i:%d RC:i:%d,%d LN:i:%d RC:i:%d,1,%d %d\n",
			src.ID, src.Length(), len(src.MemberReads),
			dst.ID, dst.Length(), len(dst.MemberReads),
			e.ID, e.Length)
	}

	h := seahash.New()
	h.Write(buf.Bytes())
	fmt.Fprintf(&buf, "# seahash:%x\n", h.Sum64())

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "asmgraph: write %s", path)
	}
	return nil
}

// WriteGFA writes a GFA1 rendering of the graph: one S line per live
// forward node, one L line per live edge. Supplemented beyond spec.md §6
// per SPEC_FULL.md §4 (the original's print_gfa). Both ends of an L line
// are named the same way: a node with a Name uses it, and a node without
// one (a unitig) gets a "Utg{n}" name shared with its twin. The original's
// begin/end-name asymmetry (begin checks .empty(), end checks !.empty())
// is not carried over.
func (g *Graph) WriteGFA(path string) error {
	var buf bytes.Buffer
	unitigName := map[NodeID]string{}
	nextUnitig := 0

	nameFor := func(n *Node) string {
		if n.Name != "" {
			return n.Name
		}
		if name, ok := unitigName[n.ID]; ok {
			return name
		}
		name := fmt.Sprintf("Utg%d", nextUnitig)
		nextUnitig++
		unitigName[n.ID] = name
		unitigName[n.ID.Pair()] = name
		return name
	}

	for _, n := range g.Nodes {
		if n == nil || n.ID.IsReverse() {
			continue
		}
		fmt.Fprintf(&buf, "S\t%s\t%s\tLN:i:%d\tRC:i:%d\n", nameFor(n), n.Label, len(n.Label), len(n.MemberReads))
	}

	for _, e := range g.Edges {
		if e == nil {
			continue
		}
		src, dst := g.Node(e.Src), g.Node(e.Dst)

		beginName := src.Name
		if src.Name == "" {
			beginName = nameFor(src)
		}
		var endName string
		if dst.Name != "" {
			endName = dst.Name
		} else {
			endName = nameFor(dst)
		}

		strand := func(n *Node) byte {
			if n.ID.IsReverse() {
				return '-'
			}
			return '+'
		}
		fmt.Fprintf(&buf, "L\t%s\t%c\t%s\t%c\t%dM\n", beginName, strand(src), endName, strand(dst), len(src.Label)-int(e.Length))
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "asmgraph: write %s", path)
	}
	return nil
}

// knotNeighbor is one entry in a knot's "p" (prefix/incoming) or "s"
// (suffix/outgoing) array: the neighboring read id, the graph node id it
// sits on, whether that node's relevant end is reverse-complemented, and
// the overhang length.
type knotNeighbor struct {
	ReadID  uint32
	NodeID  NodeID
	IsRC    bool
	Overhang int64
}

func (k knotNeighbor) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{fmt.Sprint(k.ReadID), fmt.Sprint(k.NodeID), k.IsRC, k.Overhang})
}

type knot struct {
	Prefix []knotNeighbor `json:"p"`
	Suffix []knotNeighbor `json:"s"`
}

// WriteJSON writes "{prefix}_knots.json": a two-key object describing
// every unresolved junction (graph.cpp's print_json) and the coverage
// piles of every read incident to one, keyed by read id, using
// pile.Pile.ToJSONView for the per-pile payload spec.md §6 leaves to
// original_source to resolve (SPEC_FULL.md §4).
func (g *Graph) WriteJSON(path string, piles *pile.PileSet) error {
	knots := map[string]knot{}
	referenced := map[uint32]struct{}{}

	for _, n := range g.Nodes {
		if n == nil || n.ID.IsReverse() || !n.IsJunction() {
			continue
		}

		key := fmt.Sprint(n.MemberReads[0])
		referenced[n.MemberReads[0]] = struct{}{}

		k := knot{}
		for _, id := range n.InEdges {
			e := g.Edge(id)
			other := g.Node(e.Src)
			last := other.MemberReads[len(other.MemberReads)-1]
			referenced[last] = struct{}{}
			k.Prefix = append(k.Prefix, knotNeighbor{last, other.ID, other.LastRC, int64(other.Length()) - int64(e.Length)})
		}
		for _, id := range n.OutEdges {
			e := g.Edge(id)
			other := g.Node(e.Dst)
			first := other.MemberReads[0]
			referenced[first] = struct{}{}
			k.Suffix = append(k.Suffix, knotNeighbor{first, other.ID, other.FirstRC, int64(n.Length()) - int64(e.Length)})
		}
		knots[key] = k
	}

	out := struct {
		Knots map[string]knot           `json:"knots"`
		Piles map[string]pile.JSONView `json:"piles,omitempty"`
	}{Knots: knots}

	if len(referenced) > 0 {
		out.Piles = make(map[string]pile.JSONView, len(referenced))
		for id := range referenced {
			out.Piles[fmt.Sprint(id)] = piles.Piles[id].ToJSONView()
		}
	}

	data, err := json.Marshal(out)
	if err != nil {
		return errors.Wrap(err, "asmgraph: marshal knots json")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "asmgraph: write %s", path)
	}
	return nil
}
