// Package lcg generates linear congruential sequences in parallel.
//
// The recurrence x_{k+1} = Mul*x_k + Inc is taken over uint64, so every
// operation wraps modulo 2^64; the wraparound is part of the sequence
// definition, not an overflow bug.
//
// Under strided partitioning, worker t owns output indices t, t+T, t+2T
// and so on. Applying the recurrence T times in closed form gives
//
//	x_{i+T} = A*x_i + B
//	A = Mul^T
//	B = Inc * (1 + Mul + ... + Mul^(T-1))
//
// so a worker needs no state produced by any other worker: it computes its
// first state with the closed form for t+1 sequential steps from the
// shared seed, then advances T steps at a time with the jump relation. The
// concatenated output is bit-identical to a sequential run for every
// worker count.
package lcg

import (
	"errors"
	"math"

	"github.com/shdxw/parallel/internal"
	"github.com/shdxw/parallel/partition"
	"github.com/shdxw/parallel/reduce"
)

// DefaultMul is Knuth's MMIX multiplier, the default for Config.Mul.
const DefaultMul uint64 = 6364136223846793005

// ErrMappedRange is returned by Fill when Config.Max is below Config.Min.
var ErrMappedRange = errors.New("lcg: mapped range is empty: Max below Min")

// A Sequence holds the parameters of the recurrence
// x_{k+1} = Mul*x_k + Inc (mod 2^64).
type Sequence struct {
	Mul uint64
	Inc uint64
}

// Pow returns Mul^k mod 2^64, by repeated squaring.
func (s Sequence) Pow(k uint64) uint64 {
	pow := uint64(1)
	base := s.Mul
	for ; k > 0; k >>= 1 {
		if k&1 == 1 {
			pow *= base
		}
		base *= base
	}
	return pow
}

// GeomSum returns 1 + Mul + Mul^2 + ... + Mul^(k-1) mod 2^64, with
// GeomSum(0) == 0. It halves k the same way Pow does, using
//
//	G(2m)   = G(m) * (1 + Mul^m)
//	G(2m+1) = G(2m) + Mul^(2m)
func (s Sequence) GeomSum(k uint64) uint64 {
	switch {
	case k == 0:
		return 0
	case k&1 == 1:
		return s.GeomSum(k-1) + s.Pow(k-1)
	default:
		m := k / 2
		return s.GeomSum(m) * (1 + s.Pow(m))
	}
}

// Jump returns the constants of the T-step relation x_{i+T} = A*x_i + B
// for this sequence: A = Mul^T and B = Inc*GeomSum(T). T == 1 yields the
// recurrence itself.
func (s Sequence) Jump(T uint64) (A, B uint64) {
	return s.Pow(T), s.Inc * s.GeomSum(T)
}

// Skip returns the state k steps ahead of x0 without visiting the
// intermediate states: Mul^k*x0 + Inc*GeomSum(k).
func (s Sequence) Skip(x0, k uint64) uint64 {
	return s.Pow(k)*x0 + s.Inc*s.GeomSum(k)
}

// A Config describes one generation run.
type Config struct {
	// Seed is the state x_0 of the recurrence. The first value written to
	// the output is derived from x_1.
	Seed uint64

	// Mul and Inc are the recurrence parameters.
	Mul uint64
	Inc uint64

	// Min and Max bound the mapped output values: each raw state x is
	// stored as (x mod (Max-Min+1)) + Min. The modulo deliberately remaps
	// out-of-range states instead of rejecting them. Min == 0 with
	// Max == MaxUint64 selects the identity mapping.
	Min uint64
	Max uint64

	// Mean selects the reduction strategy used to average the mapped
	// values.
	Mean reduce.Strategy
}

// Default returns the reference configuration: Knuth's MMIX multiplier
// with increment 1, seed 100, and outputs mapped into [1, 300].
func Default() Config {
	return Config{
		Seed: 100,
		Mul:  DefaultMul,
		Inc:  1,
		Min:  1,
		Max:  300,
		Mean: reduce.CompilerReduction,
	}
}

// Fill writes the mapped sequence into the caller-owned dst and returns
// the arithmetic mean of the written values. dst[i] holds the (i+1)-th
// state of the recurrence started at cfg.Seed, mapped into
// [cfg.Min, cfg.Max]. Each index of dst is written exactly once, by the
// one worker whose stride covers it.
//
// The output is bit-identical for every worker count, and repeated calls
// with the same arguments produce the same output. The mean of an empty
// dst is NaN.
func Fill(dst []uint64, cfg Config, workers int) (float64, error) {
	if cfg.Max < cfg.Min {
		return 0, ErrMappedRange
	}
	plan, err := partition.New(workers, len(dst))
	if err != nil {
		return 0, err
	}
	seq := Sequence{Mul: cfg.Mul, Inc: cfg.Inc}
	// The jump constants are computed once, before the team starts; the go
	// statements give every worker the happens-before it needs to read
	// them.
	A, B := seq.Jump(uint64(plan.Workers))
	span := cfg.Max - cfg.Min + 1 // 0 means the full uint64 range
	internal.Team(plan.Workers, func(t int) {
		x := seq.Skip(cfg.Seed, uint64(t)+1)
		first := true
		plan.Each(t, func(i int) {
			if !first {
				x = A*x + B
			}
			first = false
			if span == 0 {
				dst[i] = x
			} else {
				dst[i] = x%span + cfg.Min
			}
		})
	})
	if len(dst) == 0 {
		return math.NaN(), nil
	}
	sum, err := reduce.Sum(len(dst), func(i int) float64 {
		return float64(dst[i])
	}, cfg.Mean, plan.Workers)
	if err != nil {
		return 0, err
	}
	return sum / float64(len(dst)), nil
}
