package seeder

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rana718/seedcart/internal/database"
	"github.com/Rana718/seedcart/internal/model"
	"github.com/fatih/color"
)

const defaultBatchSize = 500

// Seeder loads a generated dataset into a database through an adapter.
type Seeder struct {
	adapter database.DatabaseAdapter
	graph   *DependencyGraph
	quiet   bool
}

func NewSeeder(adapter database.DatabaseAdapter, quiet bool) *Seeder {
	return &Seeder{
		adapter: adapter,
		graph:   NewDependencyGraph(),
		quiet:   quiet,
	}
}

func (s *Seeder) Load(ctx context.Context, ds *model.Dataset, opts LoadOptions) error {
	tables := make(map[string]model.Table)
	for _, table := range ds.Tables() {
		tables[table.Name] = table
		s.graph.AddTable(table)
	}

	order, err := s.graph.BuildInsertionOrder()
	if err != nil {
		return fmt.Errorf("failed to build insertion order: %w", err)
	}

	s.info("📋 Insertion order: %s", strings.Join(order, " → "))

	if opts.Create {
		for _, name := range order {
			if err := s.adapter.CreateTable(ctx, tables[name]); err != nil {
				return fmt.Errorf("failed to create table %s: %w", name, err)
			}
		}
		s.ok("✅ Tables created")
	}

	if opts.Truncate {
		if err := s.truncateTables(ctx, order); err != nil {
			return err
		}
	}

	batchSize := opts.Batch
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	for _, name := range order {
		if err := s.loadTable(ctx, tables[name], batchSize); err != nil {
			return fmt.Errorf("failed to load table %s: %w", name, err)
		}
	}

	if opts.Verify {
		if err := s.verifyCounts(ctx, order, tables); err != nil {
			return err
		}
	}

	s.ok("\n✅ Dataset loaded successfully!")
	return nil
}

func (s *Seeder) loadTable(ctx context.Context, table model.Table, batchSize int) error {
	s.info("  📝 Loading %s (%d records)...", table.Name, len(table.Rows))

	columns := table.ColumnNames()
	for start := 0; start < len(table.Rows); start += batchSize {
		end := start + batchSize
		if end > len(table.Rows) {
			end = len(table.Rows)
		}
		if err := s.adapter.InsertRows(ctx, table.Name, columns, table.Rows[start:end]); err != nil {
			return fmt.Errorf("failed to insert batch %d-%d: %w", start+1, end, err)
		}
	}
	return nil
}

// truncateTables clears tables in reverse insertion order so that referencing
// rows go first.
func (s *Seeder) truncateTables(ctx context.Context, order []string) error {
	s.warn("🗑️  Truncating tables...")

	var errors []string
	for i := len(order) - 1; i >= 0; i-- {
		if err := s.adapter.TruncateTable(ctx, order[i]); err != nil {
			errors = append(errors, fmt.Sprintf("failed to truncate %s: %v", order[i], err))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("truncate errors: %s", strings.Join(errors, "; "))
	}
	s.ok("✅ Tables truncated")
	return nil
}

func (s *Seeder) verifyCounts(ctx context.Context, order []string, tables map[string]model.Table) error {
	for _, name := range order {
		got, err := s.adapter.CountRows(ctx, name)
		if err != nil {
			return err
		}
		if want := int64(len(tables[name].Rows)); got != want {
			return fmt.Errorf("table %s holds %d rows, expected %d", name, got, want)
		}
	}
	s.ok("✅ Row counts verified")
	return nil
}

func (s *Seeder) info(format string, args ...interface{}) {
	if !s.quiet {
		color.Cyan(format, args...)
	}
}

func (s *Seeder) ok(format string, args ...interface{}) {
	if !s.quiet {
		color.Green(format, args...)
	}
}

func (s *Seeder) warn(format string, args ...interface{}) {
	if !s.quiet {
		color.Yellow(format, args...)
	}
}
