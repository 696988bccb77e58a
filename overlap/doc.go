// Package overlap streams pairwise read-overlap records from an MHAP or
// PAF file (optionally gzip-compressed), resolving read names to the dense
// ids a seq.Store assigned them. It plays the role spec.md leaves to an
// "external" OverlapStream collaborator: a restartable, chunked, lazy
// sequence of overlap records.
package overlap
