// Package assembler wires seq, overlap, pile, and asmgraph into one
// end-to-end pipeline: load reads, stream overlaps through a PileSet,
// build the assembly graph, simplify it, and extract contigs. Grounded on
// original_source/src/graph.cpp's Graph::construct/Graph::preprocess
// driver functions, restructured into one owned value per spec.md's
// Design Notes ("move all mutable pipeline context into one value").
package assembler
