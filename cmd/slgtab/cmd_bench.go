package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tabled-logic/slg/internal/demo"
	"github.com/tabled-logic/slg/pkg/slg"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run every demonstration scenario once and report solver stats and wall time",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range demo.Names() {
			scenario := demo.Build(name)
			solver := slg.NewSolver(scenario.KB, slg.WithLogger(logger))

			start := time.Now()
			total := 0
			for _, goal := range scenario.Goals {
				state := solver.CreateGoalState(goal)
				for {
					_, ok, err := solver.PullNextGoal(state)
					if err != nil {
						return fmt.Errorf("slgtab bench: %s: %w", scenario.Name, err)
					}
					if !ok {
						break
					}
					total++
				}
			}
			elapsed := time.Since(start)

			stats := solver.Stats()
			fmt.Printf("%-20s solutions=%-3d tables=%-4d strands=%-4d elapsed=%s\n",
				scenario.Name, total, stats.TablesCreated, stats.StrandsForked, elapsed)
		}
		return nil
	},
}
