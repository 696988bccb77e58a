// Package asmgraph is the bidirected double-strand assembly graph engine:
// construction from surviving reads and their classified overlaps,
// transitive reduction, tip/bubble/long-edge simplification, unitig
// contraction, and contig extraction. Grounded directly on
// original_source/src/graph.cpp's Graph class (spec.md §4.3), translated
// from raw-pointer twin references into arena-indexed handles per
// spec.md's Design Notes.
package asmgraph
