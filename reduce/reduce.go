// Package reduce combines per-worker partial sums into a single scalar.
//
// Every strategy distributes the index range [0, n) across a fixed team of
// workers with strided assignment, lets each worker accumulate its share,
// and differs only in how the partial results reach the final accumulator.
// All strategies produce the same value as a sequential sum up to
// floating-point rounding; they exist to compare synchronization
// disciplines and memory layouts, not to diverge in output.
package reduce

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"gonum.org/v1/gonum/floats"

	"github.com/shdxw/parallel"
	"github.com/shdxw/parallel/forkjoin"
	"github.com/shdxw/parallel/internal"
	"github.com/shdxw/parallel/partition"
)

// A Strategy selects the discipline used to combine per-worker partial
// sums into the final scalar.
type Strategy int

const (
	// CriticalSection serializes the combining adds of all workers through
	// a single one-slot semaphore, one entry at a time.
	CriticalSection Strategy = iota

	// MutexGuarded wraps the combining add of each worker in a sync.Mutex
	// acquire/release pair.
	MutexGuarded

	// PerWorkerSlot gives each worker exclusive ownership of one slot of a
	// shared array, so no synchronization is needed. Adjacent slots may
	// share a hardware cache line.
	PerWorkerSlot

	// PerWorkerSlotAligned is PerWorkerSlot with every slot padded to a
	// full cache line and the slot array aligned to a cache-line boundary.
	PerWorkerSlotAligned

	// AtomicAccumulate publishes each worker's partial sum with a single
	// lock-free atomic add.
	AtomicAccumulate

	// CompilerReduction delegates both partitioning and combination to the
	// binary-splitting forkjoin engine. Semantically it is equivalent to
	// PerWorkerSlot followed by a final sum.
	CompilerReduction
)

// Strategies lists every reduction strategy, in declaration order, for
// sweeps and tests.
var Strategies = []Strategy{
	CriticalSection,
	MutexGuarded,
	PerWorkerSlot,
	PerWorkerSlotAligned,
	AtomicAccumulate,
	CompilerReduction,
}

func (s Strategy) String() string {
	switch s {
	case CriticalSection:
		return "critical"
	case MutexGuarded:
		return "mutex"
	case PerWorkerSlot:
		return "slots"
	case PerWorkerSlotAligned:
		return "slots-aligned"
	case AtomicAccumulate:
		return "atomic"
	case CompilerReduction:
		return "reduction"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Sum computes the sum of at(i) for i in [0, n) with the given strategy
// and worker count. It returns parallel.ErrWorkerCount if workers < 1, and
// parallel.ErrRange if n < 0; both are rejected before any goroutine is
// spawned. n == 0 yields 0.
func Sum(n int, at func(i int) float64, s Strategy, workers int) (float64, error) {
	plan, err := partition.New(workers, n)
	if err != nil {
		return 0, err
	}
	switch s {
	case CriticalSection:
		return critSum(plan, at), nil
	case MutexGuarded:
		return mutexSum(plan, at), nil
	case PerWorkerSlot:
		return slotSum(plan, at), nil
	case PerWorkerSlotAligned:
		return alignedSlotSum(plan, at), nil
	case AtomicAccumulate:
		return atomicSum(plan, at), nil
	case CompilerReduction:
		return forkjoinSum(plan, at), nil
	default:
		return 0, fmt.Errorf("reduce: unknown strategy %d", int(s))
	}
}

// Sequential computes the sum of at(i) for i in [0, n) on the calling
// goroutine. It is the baseline the parallel strategies are measured
// against, in the role a dedicated sequential implementation plays for
// testing and debugging.
func Sequential(n int, at func(i int) float64) float64 {
	var sum float64
	for i := 0; i < n; i++ {
		sum += at(i)
	}
	return sum
}

// Integral approximates the integral of f over [a, b] with the
// left-rectangle rule on the given number of steps, summed by the given
// strategy. steps == 0 denotes an empty computation and yields 0.
func Integral(a, b float64, steps uint, f parallel.Integrand, s Strategy, workers int) (float64, error) {
	if steps == 0 {
		// Still reject invalid configurations for empty inputs.
		if _, err := partition.New(workers, 0); err != nil {
			return 0, err
		}
		return 0, nil
	}
	dx := (b - a) / float64(steps)
	sum, err := Sum(int(steps), func(i int) float64 {
		return f(a + float64(i)*dx)
	}, s, workers)
	if err != nil {
		return 0, err
	}
	return sum * dx, nil
}

func critSum(plan partition.Plan, at func(int) float64) float64 {
	var result float64
	crit := make(chan struct{}, 1)
	internal.Team(plan.Workers, func(t int) {
		var local float64
		plan.Each(t, func(i int) {
			local += at(i)
		})
		crit <- struct{}{}
		result += local
		<-crit
	})
	return result
}

func mutexSum(plan partition.Plan, at func(int) float64) float64 {
	var (
		mu     sync.Mutex
		result float64
	)
	internal.Team(plan.Workers, func(t int) {
		var local float64
		plan.Each(t, func(i int) {
			local += at(i)
		})
		mu.Lock()
		result += local
		mu.Unlock()
	})
	return result
}

// slotSum accumulates directly into slot t per element. The unsynchronized
// neighboring writes are the point: adjacent float64 slots share cache
// lines, which is the false-sharing effect this variant measures.
func slotSum(plan partition.Plan, at func(int) float64) float64 {
	slots := make([]float64, plan.Workers)
	internal.Team(plan.Workers, func(t int) {
		plan.Each(t, func(i int) {
			slots[t] += at(i)
		})
	})
	return floats.Sum(slots)
}

func alignedSlotSum(plan partition.Plan, at func(int) float64) float64 {
	slots := newAlignedSlots(plan.Workers)
	internal.Team(plan.Workers, func(t int) {
		plan.Each(t, func(i int) {
			slots[t].val += at(i)
		})
	})
	var result float64
	for i := range slots {
		result += slots[i].val
	}
	return result
}

// atomicSum keeps the shared accumulator as raw IEEE 754 bits so that each
// worker can publish its partial sum with one compare-and-swap loop. Each
// worker performs exactly one atomic add, not one per element.
func atomicSum(plan partition.Plan, at func(int) float64) float64 {
	var bits uint64
	internal.Team(plan.Workers, func(t int) {
		var local float64
		plan.Each(t, func(i int) {
			local += at(i)
		})
		for {
			old := atomic.LoadUint64(&bits)
			upd := math.Float64bits(math.Float64frombits(old) + local)
			if atomic.CompareAndSwapUint64(&bits, old, upd) {
				return
			}
		}
	})
	return math.Float64frombits(bits)
}

func forkjoinSum(plan partition.Plan, at func(int) float64) float64 {
	return forkjoin.Float64RangeReduce(
		0, plan.N, plan.Workers,
		func(low, high int) float64 {
			var sum float64
			for i := low; i < high; i++ {
				sum += at(i)
			}
			return sum
		},
		func(x, y float64) float64 { return x + y },
	)
}
