// Package main provides the entry point for the airdash CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/EladdadMahdi/Data-visualization/cmd/airdash/commands"
	"github.com/EladdadMahdi/Data-visualization/pkg/version"
)

var (
	verbose bool
	quiet   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "airdash",
		Short: "US domestic airline flights dashboard",
		Long: `Airdash computes yearly airline performance and delay reports from
the on-time reporting flat files and presents them as interactive charts.

Commands:
  serve     Serve the interactive dashboard over HTTP
  render    Write static report pages for every year
  stats     Summarize a dataset file`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress output")

	// Add commands.
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewRenderCommand())
	rootCmd.AddCommand(commands.NewStatsCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "airdash %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
