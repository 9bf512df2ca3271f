package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/grovekit/grove/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export <source.db> <table> <out.csv>",
	Short: "Export one table to CSV and JSON",
	Long: `Export snapshots every row of a table from a SQLite data source into
a CSV file and a sibling JSON file (same path, .json suffix).

The export itself is best-effort and reports nothing; this command
checks afterward whether the expected files exist and exits nonzero if
they do not.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, table, csvPath := args[0], args[1], args[2]

		export.ExportTable(source, table, csvPath)

		jsonPath := export.JSONPath(csvPath)
		for _, path := range []string{csvPath, jsonPath} {
			if _, err := os.Stat(path); err != nil {
				printStatus("✗", fmt.Sprintf("export of %s produced no artifacts", table), color.FgRed)
				return fmt.Errorf("export failed: %s not written", path)
			}
		}

		printStatus("✓", fmt.Sprintf("%s → %s, %s", table, csvPath, jsonPath), color.FgGreen)
		return nil
	},
}
