// Package cli implements the habitloop command-line interface using Cobra.
// Each subcommand maps to one capability (serve, record, goals, habits, ...).
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "habitloop",
	Short: "habitloop — Focus timer, goals, and habit tracking",
	Long: `habitloop is a local-first productivity tracker.
Record focus sessions, set goals, keep habits, and earn achievements,
all from one binary, all on your machine.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
