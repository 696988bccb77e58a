// Package mclgroup reads MCL cluster-output files and exposes a single
// requested group as a set membership test. The construction pipeline uses
// it to restrict assembly to one connected component of an upstream
// read-clustering pass, the way graph.cpp's read_group step does.
package mclgroup
