// Package partition assigns strided subsequences of an index range to the
// workers of a fixed-size team.
//
// Index i of the range [0, N) belongs to worker i mod Workers. The
// assignments of all workers cover the range exactly once, and per-worker
// counts differ by at most one, so no special-casing is needed when the
// range length is not a multiple of the worker count.
package partition

import (
	"github.com/shdxw/parallel"
)

// A Plan is a strided assignment of the index range [0, N) to a team of
// Workers workers.
type Plan struct {
	Workers int
	N       int
}

// New returns a Plan distributing the range [0, n) across the given number
// of workers. It returns parallel.ErrWorkerCount if workers < 1, and
// parallel.ErrRange if n < 0. A length of zero is a valid empty assignment
// for every worker.
func New(workers, n int) (Plan, error) {
	if workers < 1 {
		return Plan{}, parallel.ErrWorkerCount
	}
	if n < 0 {
		return Plan{}, parallel.ErrRange
	}
	return Plan{Workers: workers, N: n}, nil
}

// Size returns the number of indices assigned to worker t.
func (p Plan) Size(t int) int {
	if t >= p.N {
		return 0
	}
	return (p.N - t + p.Workers - 1) / p.Workers
}

// Each visits the indices assigned to worker t in increasing order:
// t, t+Workers, t+2*Workers, and so on below N.
func (p Plan) Each(t int, f func(i int)) {
	for i := t; i < p.N; i += p.Workers {
		f(i)
	}
}
