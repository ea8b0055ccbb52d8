package lcg_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/shdxw/parallel"
	"github.com/shdxw/parallel/lcg"
)

// bruteForce applies the recurrence sequentially and maps every state the
// way Fill does.
func bruteForce(cfg lcg.Config, n int) []uint64 {
	out := make([]uint64, n)
	span := cfg.Max - cfg.Min + 1
	x := cfg.Seed
	for i := range out {
		x = cfg.Mul*x + cfg.Inc
		out[i] = x%span + cfg.Min
	}
	return out
}

func TestFillIdenticalAcrossWorkerCounts(t *testing.T) {
	cfg := lcg.Default()
	want := make([]uint64, 10)
	_, err := lcg.Fill(want, cfg, 1)
	require.NoError(t, err)

	for _, workers := range []int{2, 3, 4, 7, 16} {
		got := make([]uint64, 10)
		_, err := lcg.Fill(got, cfg, workers)
		require.NoError(t, err)
		assert.Equalf(t, want, got, "%d workers", workers)
	}
}

func TestFillMatchesBruteForce(t *testing.T) {
	cfg := lcg.Default()
	const n = 1000
	want := bruteForce(cfg, n)

	for _, workers := range []int{1, 2, 4, 8} {
		got := make([]uint64, n)
		mean, err := lcg.Fill(got, cfg, workers)
		require.NoError(t, err)
		assert.Equalf(t, want, got, "%d workers", workers)

		asFloats := make([]float64, n)
		for i, v := range got {
			asFloats[i] = float64(v)
		}
		assert.InEpsilonf(t, stat.Mean(asFloats, nil), mean, 1e-12,
			"mean with %d workers", workers)
	}
}

func TestFillIdempotent(t *testing.T) {
	cfg := lcg.Default()
	first := make([]uint64, 64)
	second := make([]uint64, 64)
	m1, err := lcg.Fill(first, cfg, 4)
	require.NoError(t, err)
	m2, err := lcg.Fill(second, cfg, 4)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, m1, m2)
}

func TestFillEmpty(t *testing.T) {
	mean, err := lcg.Fill(nil, lcg.Default(), 3)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(mean), "mean of zero elements must be NaN, got %v", mean)
}

func TestFillRejectsInvalidArguments(t *testing.T) {
	dst := make([]uint64, 8)
	_, err := lcg.Fill(dst, lcg.Default(), 0)
	assert.ErrorIs(t, err, parallel.ErrWorkerCount)

	cfg := lcg.Default()
	cfg.Min, cfg.Max = 300, 1
	_, err = lcg.Fill(dst, cfg, 2)
	assert.ErrorIs(t, err, lcg.ErrMappedRange)
}

func TestJumpMatchesBruteForce(t *testing.T) {
	seq := lcg.Sequence{Mul: lcg.DefaultMul, Inc: 1}
	pow := uint64(1)  // Mul^(T-1) entering each iteration
	geom := uint64(0) // 1 + Mul + ... + Mul^(T-2)
	for T := uint64(1); T <= 8; T++ {
		geom += pow
		pow *= seq.Mul
		A, B := seq.Jump(T)
		assert.Equalf(t, pow, A, "A for T=%d", T)
		assert.Equalf(t, seq.Inc*geom, B, "B for T=%d", T)
	}
}

func TestJumpRelationAdvancesTSteps(t *testing.T) {
	seq := lcg.Sequence{Mul: lcg.DefaultMul, Inc: 12345}
	const T = 5
	A, B := seq.Jump(T)
	x := uint64(100)
	stepped := x
	for i := 0; i < T; i++ {
		stepped = seq.Mul*stepped + seq.Inc
	}
	assert.Equal(t, stepped, A*x+B)
}

func TestSkipMatchesStepping(t *testing.T) {
	seq := lcg.Sequence{Mul: lcg.DefaultMul, Inc: 1}
	x := uint64(100)
	for k := uint64(0); k <= 20; k++ {
		assert.Equalf(t, x, seq.Skip(100, k), "k=%d", k)
		x = seq.Mul*x + seq.Inc
	}
}

func TestPowAndGeomSumBaseCases(t *testing.T) {
	seq := lcg.Sequence{Mul: lcg.DefaultMul, Inc: 1}
	assert.EqualValues(t, 1, seq.Pow(0))
	assert.EqualValues(t, seq.Mul, seq.Pow(1))
	assert.EqualValues(t, 0, seq.GeomSum(0))
	assert.EqualValues(t, 1, seq.GeomSum(1))
	assert.EqualValues(t, 1+seq.Mul, seq.GeomSum(2))
}

func TestFillTrivialWorkerCountUsesRecurrenceDirectly(t *testing.T) {
	// With one worker the jump constants are A = Mul and B = Inc, so the
	// parallel path degenerates to the plain recurrence.
	seq := lcg.Sequence{Mul: lcg.DefaultMul, Inc: 1}
	A, B := seq.Jump(1)
	assert.Equal(t, seq.Mul, A)
	assert.Equal(t, seq.Inc, B)
}

func BenchmarkFill(b *testing.B) {
	cfg := lcg.Default()
	dst := make([]uint64, 100000)
	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := lcg.Fill(dst, cfg, workers); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
