// Package parallel provides building blocks for combining
// embarrassingly-parallel aggregate computations across a fixed team of
// goroutines.
//
// Two aggregation classes are covered. They share one partitioning scheme,
// strided index assignment, but need fundamentally different combination
// strategies: an order-insensitive reduction tolerates any combine order,
// while an order-sensitive recurrence must reproduce, bit for bit, the
// output of a strictly sequential run regardless of the worker count.
//
// The library provides the following subpackages:
//
// parallel/partition assigns each worker of a team its strided subsequence
// of an index range, covering the range exactly once.
//
// parallel/reduce combines locally accumulated partial sums into one
// scalar, with a family of strategies that differ in synchronization
// discipline and memory layout: critical section, mutex, per-worker slots
// with and without cache-line alignment, atomic accumulation, and
// framework-managed reduction.
//
// parallel/lcg generates a linear congruential sequence in parallel using
// skip-ahead algebra, so that each worker jumps directly to its assigned
// recurrence states without visiting the skipped terms.
//
// parallel/forkjoin provides explicit fork-join task execution and a
// binary-splitting range reducer, influenced by ideas from Cilk and
// Threading Building Blocks.
//
// cmd/parlab is an experiment runner on top of these packages that sweeps
// worker counts and prints timing tables.
package parallel
