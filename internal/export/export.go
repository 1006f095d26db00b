package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Rana718/seedcart/internal/database/sqlite"
	"github.com/Rana718/seedcart/internal/model"
	"github.com/Rana718/seedcart/internal/seeder"
	"github.com/Rana718/seedcart/internal/types"
	"github.com/shopspring/decimal"
)

const (
	FormatCSV    = "csv"
	FormatJSON   = "json"
	FormatSQLite = "sqlite"

	ManifestFile = "manifest.json"
	JSONFile     = "dataset.json"
	SQLiteFile   = "dataset.db"
)

var Formats = []string{FormatCSV, FormatJSON, FormatSQLite}

// Meta identifies the generation run an export came from.
type Meta struct {
	Seed          int64
	ReferenceDate time.Time
}

// PerformExport writes ds into dir in the given format plus a manifest, and
// returns the paths of every file written.
func PerformExport(ctx context.Context, ds *model.Dataset, dir, format string, meta Meta) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	var files []string
	var err error
	switch format {
	case FormatCSV:
		files, err = WriteCSV(dir, ds)
	case FormatJSON:
		path := filepath.Join(dir, JSONFile)
		err = WriteJSON(path, ds, meta)
		files = []string{path}
	case FormatSQLite:
		path := filepath.Join(dir, SQLiteFile)
		err = WriteSQLite(ctx, path, ds)
		files = []string{path}
	default:
		return nil, fmt.Errorf("unsupported export format: %s. Supported formats: %v", format, Formats)
	}
	if err != nil {
		return nil, err
	}

	manifest, err := writeManifest(dir, format, files, ds, meta)
	if err != nil {
		return nil, err
	}
	return append(files, manifest), nil
}

// WriteCSV writes one <table>.csv per collection: a header row, then one row per
// record with ISO dates and two-decimal amounts.
func WriteCSV(dir string, ds *model.Dataset) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create CSV directory: %w", err)
	}

	var files []string
	for _, table := range ds.Tables() {
		path := filepath.Join(dir, table.Name+".csv")
		if err := writeCSVTable(path, table); err != nil {
			return nil, err
		}
		files = append(files, path)
	}
	return files, nil
}

func writeCSVTable(path string, table model.Table) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file for %s: %w", table.Name, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(table.ColumnNames()); err != nil {
		return fmt.Errorf("failed to write header for %s: %w", table.Name, err)
	}

	record := make([]string, len(table.Columns))
	for _, row := range table.Rows {
		for i, v := range row {
			record[i] = FormatValue(v)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", table.Name, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", table.Name, err)
	}
	return file.Close()
}

// FormatValue renders a cell the way every text format stores it.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case decimal.Decimal:
		return val.StringFixed(2)
	case time.Time:
		return val.Format(time.DateOnly)
	case model.Status:
		return string(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func jsonValue(v any) any {
	switch val := v.(type) {
	case decimal.Decimal:
		return json.Number(val.StringFixed(2))
	case time.Time:
		return val.Format(time.DateOnly)
	default:
		return v
	}
}

func WriteJSON(path string, ds *model.Dataset, meta Meta) error {
	data := types.ExportData{
		ReferenceDate: meta.ReferenceDate.Format(time.DateOnly),
		Seed:          meta.Seed,
		Version:       "1.0",
		Counts:        ds.Counts(),
		Tables:        make(map[string][]map[string]any),
	}

	for _, table := range ds.Tables() {
		rows := make([]map[string]any, 0, len(table.Rows))
		for _, row := range table.Rows {
			m := make(map[string]any, len(row))
			for i, v := range row {
				m[table.Columns[i].Name] = jsonValue(v)
			}
			rows = append(rows, m)
		}
		data.Tables[table.Name] = rows
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}
	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// WriteSQLite creates a fresh SQLite file holding every table with keys and
// foreign keys declared.
func WriteSQLite(ctx context.Context, path string, ds *model.Dataset) error {
	for _, f := range []string{path, path + "-wal", path + "-shm"} {
		if err := os.Remove(f); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to replace %s: %w", f, err)
		}
	}

	adapter := sqlite.New()
	if err := adapter.Connect(ctx, path); err != nil {
		return fmt.Errorf("failed to create SQLite database: %w", err)
	}
	defer adapter.Close()

	s := seeder.NewSeeder(adapter, true)
	return s.Load(ctx, ds, seeder.LoadOptions{Create: true, Verify: true})
}

func writeManifest(dir, format string, files []string, ds *model.Dataset, meta Meta) (string, error) {
	manifest := types.Manifest{
		ReferenceDate: meta.ReferenceDate.Format(time.DateOnly),
		Seed:          meta.Seed,
		Format:        format,
		Counts:        ds.Counts(),
	}
	for _, f := range files {
		manifest.Files = append(manifest.Files, filepath.Base(f))
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal manifest: %w", err)
	}
	path := filepath.Join(dir, ManifestFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write manifest: %w", err)
	}
	return path, nil
}
