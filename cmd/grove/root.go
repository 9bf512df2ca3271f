package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "grove",
	Short: "Tooling for tree-search reasoning agents",
	Long: `grove validates the search-strategy configuration of reasoning
agents and exports run-state tables for post-run analysis.

Agent definitions are YAML documents whose reason block selects one of
four tree-search methods (beam_search, mcts, lats, dfs) and its
parameters. grove derives the method-scoped parameter set the search
executor consumes, and snapshots the SQLite run-state tables a finished
run leaves behind into paired CSV/JSON artifacts.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(deriveCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(versionCmd)
}
