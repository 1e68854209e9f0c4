package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tabled-logic/slg/internal/demo"
	"github.com/tabled-logic/slg/pkg/slg"
)

var runCmd = &cobra.Command{
	Use:   "run <scenario>",
	Short: "Run one demonstration scenario and print every solution found",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		var scenario demo.Scenario
		func() {
			defer func() {
				if r := recover(); r != nil {
					scenario = demo.Scenario{}
				}
			}()
			scenario = demo.Build(name)
		}()
		if scenario.KB == nil {
			return fmt.Errorf("slgtab: unknown scenario %q (see `slgtab list`)", name)
		}

		opts := []slg.Option{slg.WithLogger(logger)}
		if stepBudget > 0 {
			opts = append(opts, slg.WithStepBudget(stepBudget))
		}
		solver := slg.NewSolver(scenario.KB, opts...)

		for _, goal := range scenario.Goals {
			fmt.Printf("?- %s\n", goal.String())
			state := solver.CreateGoalState(goal)
			count := 0
			for {
				answer, ok, err := solver.PullNextGoal(state)
				if err != nil {
					return fmt.Errorf("slgtab: %s: %w", goal.String(), err)
				}
				if !ok {
					break
				}
				count++
				fmt.Printf("  [%d] %s\n", count, formatAnswer(answer))
			}
			if count == 0 {
				fmt.Println("  (no solutions)")
			}
		}
		return nil
	},
}

func formatAnswer(s slg.Substitution) string {
	bindings := s.Bindings()
	if len(bindings) == 0 {
		return "true"
	}
	out := ""
	for i, v := range bindings {
		if i > 0 {
			out += ", "
		}
		term, _ := s.Lookup(v)
		out += fmt.Sprintf("?%d = %s", v, term.String())
	}
	return out
}
