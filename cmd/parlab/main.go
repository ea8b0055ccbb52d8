// Parlab runs worker-count sweep experiments on top of the parallel
// library: numerical integration with every reduction strategy, parallel
// generation of a linear congruential sequence, and a recursive fork-join
// demo. Each sweep reports result, elapsed time, and speedup relative to
// the single-worker run.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "parlab",
		Short:        "Worker-count sweep experiments for the parallel library",
		SilenceUsage: true,
	}
	root.AddCommand(newIntegrateCmd(), newRandomizeCmd(), newFibCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func printTable(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)
	fmt.Println(t)
}

func speedup(base, elapsed time.Duration) string {
	if elapsed <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.2fx", float64(base)/float64(elapsed))
}
