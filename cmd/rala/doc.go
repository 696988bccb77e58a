/*
rala assembles long-read sequencing data into contigs from a set of reads
and their pairwise overlaps, following the pipeline spec.md describes:
coverage-profile preprocessing (pile), bidirected assembly graph
construction and simplification (asmgraph), and contig extraction.
*/
package main
