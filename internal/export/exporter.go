// Package export snapshots tables from a SQLite data source into paired
// CSV and JSON artifacts. It is a best-effort post-run diagnostic dump:
// every failure collapses to "write nothing observable and return", with
// no error channel exposed to callers. Callers that need success
// signaling check afterward whether the expected files exist.
package export

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// ExportTable snapshots every row of the named table into a CSV file at
// csvPath and a JSON file at the same path with the .csv suffix replaced
// by .json. Either both files are written or, when opening, querying or
// fetching fails, neither is. Errors are swallowed by contract.
//
// The table name is passed to the query layer verbatim; callers own its
// trustworthiness.
func ExportTable(source, table, csvPath string) {
	_ = exportTable(context.Background(), source, table, csvPath)
}

// ExportTableContext is the suspendable form of ExportTable. It runs the
// identical pipeline, so the two forms produce byte-for-byte identical
// artifacts, and checks ctx between pipeline stages. Cancellation after
// the files are written leaves them in place.
func ExportTableContext(ctx context.Context, source, table, csvPath string) {
	_ = exportTable(ctx, source, table, csvPath)
}

// JSONPath derives the JSON artifact path from a CSV destination path.
func JSONPath(csvPath string) string {
	return strings.TrimSuffix(csvPath, ".csv") + ".json"
}

// snapshot is a fully materialized table: column names in source order
// and one value slice per row, normalized by normalizeValue.
type snapshot struct {
	columns []string
	rows    [][]any
}

// exportTable is the single pipeline behind both public entry points.
// It returns errors internally so the swallow-at-the-boundary behavior
// stays an explicit decision in the exported functions, not an accident
// of suppressed failures deep in the pipeline.
func exportTable(ctx context.Context, source, table, csvPath string) error {
	snap, err := readTable(ctx, source, table)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := writeCSV(csvPath, snap); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return writeJSON(JSONPath(csvPath), snap)
}

// readTable opens the source read-only, selects all rows of the table
// and materializes them. The connection is released before readTable
// returns, on every path.
func readTable(ctx context.Context, source, table string) (*snapshot, error) {
	// mode=ro keeps a missing or unreadable source from being created
	// as an empty database by the driver.
	db, err := sql.Open("sqlite", "file:"+source+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}

	rows, err := db.QueryContext(ctx, "SELECT * FROM "+table)
	if err != nil {
		return nil, fmt.Errorf("query table %s: %w", table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	snap := &snapshot{columns: columns}
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		for i, v := range values {
			values[i] = normalizeValue(v)
		}
		snap.rows = append(snap.rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch rows: %w", err)
	}

	return snap, nil
}

// normalizeValue maps driver scan values onto the small set of types the
// writers handle, so the CSV and JSON artifacts agree on every cell:
// nil, int64, float64, bool, string.
func normalizeValue(v any) any {
	switch x := v.(type) {
	case []byte:
		return string(x)
	case time.Time:
		return x.UTC().Format(time.RFC3339)
	default:
		return v
	}
}

// writeCSV renders the snapshot with a header row of column names in
// source order. NULL becomes an empty field; quoting is the standard
// CSV dialect of encoding/csv.
func writeCSV(path string, snap *snapshot) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(snap.columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	record := make([]string, len(snap.columns))
	for _, row := range snap.rows {
		for i, v := range row {
			record[i] = csvField(v)
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// csvField serializes one normalized cell value for CSV output.
func csvField(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

// writeJSON renders the snapshot as an array of objects, one per row,
// with keys in column order and native typing preserved (NULL becomes
// JSON null, numbers stay numbers).
func writeJSON(path string, snap *snapshot) error {
	var buf bytes.Buffer

	if len(snap.rows) == 0 {
		buf.WriteString("[]\n")
	} else {
		buf.WriteString("[\n")
		for i, row := range snap.rows {
			buf.WriteString("  {")
			for j, col := range row {
				if j > 0 {
					buf.WriteString(", ")
				}
				key, err := json.Marshal(snap.columns[j])
				if err != nil {
					return fmt.Errorf("encode column name: %w", err)
				}
				val, err := json.Marshal(col)
				if err != nil {
					return fmt.Errorf("encode value for %s: %w", snap.columns[j], err)
				}
				buf.Write(key)
				buf.WriteString(": ")
				buf.Write(val)
			}
			buf.WriteString("}")
			if i < len(snap.rows)-1 {
				buf.WriteString(",")
			}
			buf.WriteString("\n")
		}
		buf.WriteString("]\n")
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Artifact describes the expected output files of one table export and
// whether both exist after the attempt.
type Artifact struct {
	Table    string
	CSVPath  string
	JSONPath string
	OK       bool
}

// ExportAll snapshots each named table from the source into outDir,
// one CSV/JSON pair per table named <table>.csv and <table>.json. Like
// ExportTable it never reports errors; the returned artifacts carry a
// file-existence check instead.
func ExportAll(ctx context.Context, source, outDir string, tables []string) []Artifact {
	// Best effort like everything else here; a failed mkdir just means
	// every export below fails silently.
	_ = os.MkdirAll(outDir, 0755)

	artifacts := make([]Artifact, 0, len(tables))
	for _, table := range tables {
		csvPath := filepath.Join(outDir, table+".csv")
		ExportTableContext(ctx, source, table, csvPath)

		a := Artifact{Table: table, CSVPath: csvPath, JSONPath: JSONPath(csvPath)}
		a.OK = fileExists(a.CSVPath) && fileExists(a.JSONPath)
		artifacts = append(artifacts, a)
	}
	return artifacts
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
