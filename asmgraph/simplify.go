package asmgraph

import "github.com/lukadante/rala/pile"

// SimplifyOpts controls Simplify's optional debug dump step.
type SimplifyOpts struct {
	// DebugPrefix, when non-empty, writes "{prefix}_graph.csv",
	// "{prefix}_knots.json" and "{prefix}.gfa" after the main fixed-point
	// loop and before the long-edge pruning pass, matching spec.md §4.3
	// step 3.
	DebugPrefix string

	// Piles backs the knots JSON dump's per-read coverage payload; only
	// read when DebugPrefix is set.
	Piles *pile.PileSet
}

// Simplify runs the full simplification pipeline spec.md §4.3 describes:
// transitive reduction, a create_unitigs+remove_tips+remove_bubbles
// fixed point, an optional debug dump, long-edge pruning, and a final
// create_unitigs+remove_tips fixed point. Grounded on graph.cpp's
// simplify.
func (g *Graph) Simplify(opts SimplifyOpts) error {
	g.RemoveTransitiveEdges()

	g.fixedPoint(func() bool {
		var changed bool
		if g.CreateUnitigs() > 0 {
			changed = true
		}
		if g.RemoveTips() > 0 {
			changed = true
		}
		if g.RemoveBubbles() > 0 {
			changed = true
		}
		return changed
	})

	if opts.DebugPrefix != "" {
		if err := g.WriteDebug(opts.DebugPrefix, opts.Piles); err != nil {
			return err
		}
	}

	g.RemoveLongEdges()

	g.fixedPoint(func() bool {
		var changed bool
		if g.CreateUnitigs() > 0 {
			changed = true
		}
		if g.RemoveTips() > 0 {
			changed = true
		}
		return changed
	})

	return nil
}

// fixedPoint invokes round until it reports no change.
func (g *Graph) fixedPoint(round func() bool) {
	for round() {
	}
}
