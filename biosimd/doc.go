// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package biosimd provides small, allocation-free primitives over raw ASCII
// base sequences: reverse-complementing and cleaning. It is a trimmed
// descendant of grailbio/bio's biosimd package; the SIMD/assembly variants
// tuned for BAM 2-bit/4-bit packed sequence data have no caller in this
// domain (reads here are always ASCII FASTA/FASTQ), so only the portable
// table-driven implementation survives.
package biosimd
