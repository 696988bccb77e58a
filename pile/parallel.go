package pile

import "github.com/grailbio/base/traverse"

// ParallelFor runs fn(i) for i in [0,n), capped to at most maxWorkers
// concurrent calls, returning the first error encountered (if any) once
// every task has finished. This is Design Notes' parallel_for abstraction,
// grounded on the teacher's own use of traverse.Each/traverse.Limit for
// this exact fan-out-barrier shape (pileup/snp/pileup.go).
func ParallelFor(maxWorkers, n int, fn func(i int) error) error {
	if n == 0 {
		return nil
	}
	if maxWorkers <= 0 {
		return traverse.Each(n, fn)
	}
	return traverse.Limit(maxWorkers).Each(n, fn)
}
