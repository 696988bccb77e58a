// Package seq holds all sequenced reads in memory and assigns them dense,
// file-order ids. It plays the role spec.md leaves to an "external"
// SequenceStore collaborator: FASTA and FASTQ, optionally gzip-compressed,
// detected by file suffix.
package seq
