package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/shdxw/parallel/reduce"
)

func newIntegrateCmd() *cobra.Command {
	var (
		steps      uint
		maxWorkers int
		strategy   string
	)
	cmd := &cobra.Command{
		Use:   "integrate",
		Short: "Integrate x^2 over [-1, 1], sweeping strategies and worker counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			strategies, err := selectStrategies(strategy)
			if err != nil {
				return err
			}
			f := func(x float64) float64 { return x * x }
			for _, s := range strategies {
				fmt.Println(s)
				rows := make([][]string, 0, maxWorkers)
				var base time.Duration
				for workers := 1; workers <= maxWorkers; workers++ {
					start := time.Now()
					result, err := reduce.Integral(-1, 1, steps, f, s, workers)
					elapsed := time.Since(start)
					if err != nil {
						return err
					}
					if workers == 1 {
						base = elapsed
					}
					rows = append(rows, []string{
						fmt.Sprint(workers),
						fmt.Sprintf("%.9f", result),
						elapsed.String(),
						speedup(base, elapsed),
					})
				}
				printTable([]string{"Workers", "Result", "Time", "Speedup"}, rows)
			}
			return nil
		},
	}
	cmd.Flags().UintVar(&steps, "steps", 100000000, "number of integration steps")
	cmd.Flags().IntVar(&maxWorkers, "max-workers", runtime.GOMAXPROCS(0),
		"largest worker count in the sweep")
	cmd.Flags().StringVar(&strategy, "strategy", "all",
		"reduction strategy to sweep (all, critical, mutex, slots, slots-aligned, atomic, reduction)")
	return cmd
}

func selectStrategies(name string) ([]reduce.Strategy, error) {
	if name == "all" {
		return reduce.Strategies, nil
	}
	for _, s := range reduce.Strategies {
		if s.String() == name {
			return []reduce.Strategy{s}, nil
		}
	}
	return nil, fmt.Errorf("unknown strategy %q", name)
}
