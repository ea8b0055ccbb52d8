package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shdxw/parallel/forkjoin"
)

func newFibCmd() *cobra.Command {
	var (
		n      int
		cutoff int
	)
	cmd := &cobra.Command{
		Use:   "fib",
		Short: "Recursive fork-join demo: naive Fibonacci with explicit task joins",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			result := parfib(n, cutoff)
			elapsed := time.Since(start)
			fmt.Printf("fib(%d) = %d in %v\n", n, result, elapsed)
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "n", 30, "Fibonacci index to compute")
	cmd.Flags().IntVar(&cutoff, "cutoff", 18,
		"index below which the recursion stays sequential")
	return cmd
}

// parfib forks both recursive calls as explicit tasks and joins them,
// falling back to the sequential recursion below the cutoff so task
// overhead does not swamp the work.
func parfib(n, cutoff int) uint64 {
	if n < cutoff {
		return seqfib(n)
	}
	var n1, n2 uint64
	forkjoin.Do(
		func() { n1 = parfib(n-1, cutoff) },
		func() { n2 = parfib(n-2, cutoff) },
	)
	return n1 + n2
}

func seqfib(n int) uint64 {
	if n < 2 {
		return uint64(n)
	}
	return seqfib(n-1) + seqfib(n-2)
}
