package seeder

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rana718/seedcart/internal/model"
)

type fakeAdapter struct {
	created   []string
	truncated []string
	batches   map[string][]int
	rows      map[string]int64
	failOn    string
}

func newFakeAdapter() *fakeAdapter {
	return &fakeAdapter{
		batches: make(map[string][]int),
		rows:    make(map[string]int64),
	}
}

func (f *fakeAdapter) Connect(ctx context.Context, url string) error { return nil }
func (f *fakeAdapter) Close() error                                  { return nil }
func (f *fakeAdapter) Ping(ctx context.Context) error                { return nil }

func (f *fakeAdapter) CreateTable(ctx context.Context, table model.Table) error {
	f.created = append(f.created, table.Name)
	return nil
}

func (f *fakeAdapter) TruncateTable(ctx context.Context, tableName string) error {
	f.truncated = append(f.truncated, tableName)
	f.rows[tableName] = 0
	return nil
}

func (f *fakeAdapter) InsertRows(ctx context.Context, tableName string, columns []string, rows [][]any) error {
	if tableName == f.failOn {
		return errors.New("boom")
	}
	f.batches[tableName] = append(f.batches[tableName], len(rows))
	f.rows[tableName] += int64(len(rows))
	return nil
}

func (f *fakeAdapter) CountRows(ctx context.Context, tableName string) (int64, error) {
	return f.rows[tableName], nil
}

func TestLoadCreatesTruncatesAndInserts(t *testing.T) {
	ds := generate(t, smallOptions(), 8)
	adapter := newFakeAdapter()

	err := NewSeeder(adapter, true).Load(context.Background(), ds, LoadOptions{
		Batch:    4,
		Create:   true,
		Truncate: true,
		Verify:   true,
	})
	require.NoError(t, err)

	order := make([]string, 0, len(ds.Tables()))
	for _, tbl := range ds.Tables() {
		order = append(order, tbl.Name)
	}
	assert.Equal(t, order, adapter.created)

	reversed := make([]string, len(order))
	for i, name := range order {
		reversed[len(order)-1-i] = name
	}
	assert.Equal(t, reversed, adapter.truncated)

	assert.Equal(t, []int{4, 1}, adapter.batches[model.TableCustomers])
	assert.Equal(t, []int{4, 4, 2}, adapter.batches[model.TableOrders])
	for name, count := range ds.Counts() {
		assert.Equal(t, int64(count), adapter.rows[name], name)
	}
}

func TestLoadWrapsInsertFailures(t *testing.T) {
	ds := generate(t, smallOptions(), 8)
	adapter := newFakeAdapter()
	adapter.failOn = model.TableProducts

	err := NewSeeder(adapter, true).Load(context.Background(), ds, LoadOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load table products")
	assert.Empty(t, adapter.batches[model.TableOrders])
}

type shortCounter struct{ *fakeAdapter }

func (s shortCounter) CountRows(ctx context.Context, tableName string) (int64, error) {
	return 0, nil
}

func TestLoadVerifyDetectsMissingRows(t *testing.T) {
	ds := generate(t, smallOptions(), 8)
	err := NewSeeder(shortCounter{newFakeAdapter()}, true).Load(context.Background(), ds, LoadOptions{Verify: true})
	assert.ErrorContains(t, err, "holds 0 rows")
}
