package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/shdxw/parallel/lcg"
)

func newRandomizeCmd() *cobra.Command {
	var (
		n          int
		seed       uint64
		maxWorkers int
	)
	cmd := &cobra.Command{
		Use:   "randomize",
		Short: "Fill an array from the linear congruential sequence, sweeping worker counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := lcg.Default()
			cfg.Seed = seed
			dst := make([]uint64, n)
			rows := make([][]string, 0, maxWorkers)
			var base time.Duration
			for workers := 1; workers <= maxWorkers; workers++ {
				start := time.Now()
				mean, err := lcg.Fill(dst, cfg, workers)
				elapsed := time.Since(start)
				if err != nil {
					return err
				}
				if workers == 1 {
					base = elapsed
				}
				rows = append(rows, []string{
					fmt.Sprint(workers),
					fmt.Sprintf("%.6f", mean),
					elapsed.String(),
					speedup(base, elapsed),
				})
			}
			printTable([]string{"Workers", "Mean", "Time", "Speedup"}, rows)
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "n", 100000, "length of the generated array")
	cmd.Flags().Uint64Var(&seed, "seed", 100, "seed of the recurrence")
	cmd.Flags().IntVar(&maxWorkers, "max-workers", runtime.GOMAXPROCS(0),
		"largest worker count in the sweep")
	return cmd
}
