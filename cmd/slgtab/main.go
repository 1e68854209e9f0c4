// Command slgtab is a demonstration and benchmarking front-end for the
// tabled SLG solver in pkg/slg. It is not a surface-syntax interpreter:
// every scenario it runs builds its KnowledgeBase and Goal directly with
// the pkg/slg constructors, since parsing a clause language is out of
// scope (SPEC_FULL.md's Non-goals).
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spf13/cobra"
)

var (
	verbose    bool
	stepBudget int
	logger     *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "slgtab",
	Short: "Run and inspect a tabled SLG solver over small Horn-clause knowledge bases",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Encoding = "console"
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		} else {
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("slgtab: build logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every table/strand/answer/cycle event")
	rootCmd.PersistentFlags().IntVar(&stepBudget, "step-budget", 0, "abort once the scenario's solver has performed this many strand-processing steps, counted across all its goals (0 = unbounded)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(benchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
