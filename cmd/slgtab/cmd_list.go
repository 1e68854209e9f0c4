package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tabled-logic/slg/internal/demo"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available demonstration scenarios",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range demo.Names() {
			s := demo.Build(name)
			fmt.Printf("%-20s %s\n", s.Name, s.Description)
		}
		return nil
	},
}
