package assembler

import (
	"github.com/grailbio/base/log"

	"github.com/lukadante/rala/asmgraph"
	"github.com/lukadante/rala/errs"
	"github.com/lukadante/rala/mclgroup"
	"github.com/lukadante/rala/overlap"
	"github.com/lukadante/rala/pile"
	"github.com/lukadante/rala/seq"
)

// Opts controls Run's end-to-end pipeline (spec.md §6's command surface).
type Opts struct {
	// SequencesPath and OverlapsPath are the two required positional
	// inputs.
	SequencesPath string
	OverlapsPath  string

	// GroupPath and Group restrict assembly to one MCL cluster when
	// GroupPath is non-empty; Group is the 0-based cluster index.
	GroupPath string
	Group     int

	// IncludeUnassembled disables ExtractContigs' short/low-member-count
	// drop threshold.
	IncludeUnassembled bool

	// DebugPrefix, when non-empty, asks the graph to dump its
	// intermediate CSV/GFA/JSON state (see asmgraph.SimplifyOpts).
	DebugPrefix string

	// Threads bounds PileSet's ParallelFor concurrency; 0 lets traverse
	// pick a default.
	Threads int

	// FilterLowQuality is passed straight through to pile.Opts; see its
	// doc comment (SPEC_FULL.md §4).
	FilterLowQuality bool
}

// Result is the pipeline's output: the extracted contigs plus the
// diagnostics graph.cpp's extract_contigs logs to stderr.
type Result struct {
	Contigs                  []asmgraph.Contig
	ShortestLen, MedianLen, LongestLen int
}

// Run executes the full pipeline spec.md §4 describes: load sequences,
// build a PileSet from the overlap stream, construct the assembly graph,
// simplify it, and extract contigs.
func Run(opts Opts) (*Result, error) {
	store, err := seq.Load(opts.SequencesPath)
	if err != nil {
		return nil, err
	}
	log.Printf("assembler: loaded %d sequences from %s", store.Count(), opts.SequencesPath)

	stream, err := overlap.Open(opts.OverlapsPath, store)
	if err != nil {
		return nil, err
	}

	pileOpts := pile.Opts{
		MaxWorkers:       opts.Threads,
		FilterLowQuality: opts.FilterLowQuality,
	}
	if opts.GroupPath != "" {
		group, err := mclgroup.Read(opts.GroupPath, opts.Group, store.ByName)
		if err != nil {
			return nil, err
		}
		log.Printf("assembler: restricting to mcl-group %d (%d reads) from %s", opts.Group, len(group), opts.GroupPath)
		pileOpts.GroupFilter = group
	}

	ps, err := pile.Build(store, stream, pileOpts)
	if err != nil {
		return nil, err
	}
	log.Printf("assembler: dataset median coverage = %d", ps.DatasetMedian)

	g, err := asmgraph.Build(store, ps)
	if err != nil {
		return nil, err
	}
	log.Printf("assembler: constructed graph with %d nodes, %d edges", len(g.Nodes), len(g.Edges))

	if err := g.Simplify(asmgraph.SimplifyOpts{DebugPrefix: opts.DebugPrefix, Piles: ps}); err != nil {
		return nil, errs.Resource(err, "assembler: simplify")
	}

	contigs := g.ExtractContigs(!opts.IncludeUnassembled)
	if len(contigs) == 0 {
		return nil, errs.DatasetEmpty("no contigs assembled")
	}

	shortest, median, longest := asmgraph.ContigLengthSummary(contigs)
	log.Printf("assembler: extracted %d contigs (shortest=%d, median=%d, longest=%d)", len(contigs), shortest, median, longest)

	return &Result{Contigs: contigs, ShortestLen: shortest, MedianLen: median, LongestLen: longest}, nil
}
