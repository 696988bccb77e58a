// Package pile implements the per-read coverage profile and the
// multi-phase preprocessing pipeline that trims, splits, corrects, and
// annotates it before the assembly graph is built: Pile is one read's
// coverage-over-bases profile (§4.1 of spec.md); PileSet orchestrates the
// bounds/trim, dataset-median, chimera-split, correction, and
// repeat-detection passes over every pile (§4.2 of spec.md). Grounded on
// the original C++ ReadInfo/Pile class (original_source/src/read.cpp).
package pile
