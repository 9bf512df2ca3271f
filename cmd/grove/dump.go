package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/grovekit/grove/internal/config"
	"github.com/grovekit/grove/internal/tui"
)

var dumpOutDir string

var dumpCmd = &cobra.Command{
	Use:   "dump <source.db>",
	Short: "Export the run-state tables to CSV and JSON",
	Long: `Dump snapshots the configured run-state tables (sessions and states
by default) from a SQLite database into one CSV/JSON pair per table,
showing per-table progress.

Exit status is nonzero if any table produced no artifacts.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		outDir := cfg.Export.OutputDir
		if dumpOutDir != "" {
			outDir = dumpOutDir
		}

		model := tui.NewDump(args[0], outDir, cfg.Export.Tables)
		final, err := tea.NewProgram(model).Run()
		if err != nil {
			return fmt.Errorf("run dump ui: %w", err)
		}

		failed := 0
		for _, a := range final.(tui.DumpModel).Results() {
			if !a.OK {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d tables produced no artifacts", failed, len(cfg.Export.Tables))
		}
		return nil
	},
}

func init() {
	dumpCmd.Flags().StringVar(&dumpOutDir, "out", "", "Output directory (default from config, ./exports)")
}
