package export

import (
	"context"
	"encoding/json"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rana718/seedcart/internal/database/sqlite"
	"github.com/Rana718/seedcart/internal/model"
	"github.com/Rana718/seedcart/internal/seeder"
	"github.com/Rana718/seedcart/internal/types"
)

var today = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func dataset(t *testing.T, seed int64) *model.Dataset {
	t.Helper()
	opts := seeder.DefaultOptions()
	opts.Customers = 5
	opts.Suppliers = 2
	opts.Products = 3
	opts.Orders = 10
	opts.ReviewsMin = 1
	opts.ReviewsMax = 3
	opts.Today = today
	opts.Quiet = true

	gen, err := seeder.NewGenerator(opts, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	ds, err := gen.Generate()
	require.NoError(t, err)
	return ds
}

func readDir(t *testing.T, dir string) map[string][]byte {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	files := make(map[string][]byte)
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		require.NoError(t, err)
		files[e.Name()] = data
	}
	return files
}

func TestSameSeedProducesIdenticalCSV(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()

	_, err := WriteCSV(first, dataset(t, 99))
	require.NoError(t, err)
	_, err = WriteCSV(second, dataset(t, 99))
	require.NoError(t, err)

	a, b := readDir(t, first), readDir(t, second)
	assert.Len(t, a, 10)
	assert.Equal(t, a, b)
}

func TestCSVRoundTrip(t *testing.T) {
	ds := dataset(t, 5)
	dir := t.TempDir()
	_, err := WriteCSV(dir, ds)
	require.NoError(t, err)

	read, err := ReadCSV(dir)
	require.NoError(t, err)
	assert.Equal(t, ds.Counts(), read.Counts())

	again := t.TempDir()
	_, err = WriteCSV(again, read)
	require.NoError(t, err)
	assert.Equal(t, readDir(t, dir), readDir(t, again))
}

func TestCSVHeaders(t *testing.T) {
	dir := t.TempDir()
	_, err := WriteCSV(dir, dataset(t, 5))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "orders.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "OrderID,CustomerID,ProductID,Quantity,TotalAmount,OrderDate,Status\n")
}

func TestReadCSVRejectsWrongHeader(t *testing.T) {
	dir := t.TempDir()
	_, err := WriteCSV(dir, dataset(t, 5))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "suppliers.csv"),
		[]byte("ID,Name,ContactName,Phone,Email,Address\n"), 0644))

	_, err = ReadCSV(dir)
	assert.ErrorContains(t, err, "suppliers")
}

func TestReadCSVRejectsBadValues(t *testing.T) {
	dir := t.TempDir()
	_, err := WriteCSV(dir, dataset(t, 5))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "categories.csv"),
		[]byte("CategoryID,CategoryName\nten,Books\n"), 0644))

	_, err = ReadCSV(dir)
	assert.ErrorContains(t, err, "categories line 2")
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "42", FormatValue(42))
	assert.Equal(t, "7.50", FormatValue(decimal.RequireFromString("7.5")))
	assert.Equal(t, "2024-06-01", FormatValue(today))
	assert.Equal(t, "Shipped", FormatValue(model.StatusShipped))
	assert.Equal(t, "", FormatValue(nil))
}

func TestPerformExportJSON(t *testing.T) {
	ds := dataset(t, 5)
	dir := t.TempDir()

	files, err := PerformExport(context.Background(), ds, dir, FormatJSON, Meta{Seed: 5, ReferenceDate: today})
	require.NoError(t, err)
	require.Len(t, files, 2)

	raw, err := os.ReadFile(filepath.Join(dir, JSONFile))
	require.NoError(t, err)

	var doc types.ExportData
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "2024-06-01", doc.ReferenceDate)
	assert.Equal(t, int64(5), doc.Seed)
	assert.Len(t, doc.Tables[model.TableOrders], len(ds.Orders))
	assert.Equal(t, len(ds.Customers), doc.Counts[model.TableCustomers])

	first := doc.Tables[model.TableProducts][0]
	assert.Equal(t, ds.Products[0].Price.InexactFloat64(), first["Price"])
	assert.Equal(t, ds.Products[0].DateAdded.Format(time.DateOnly), first["DateAdded"])

	manifest, err := ReadManifest(dir)
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, manifest.Format)
	assert.Equal(t, []string{JSONFile}, manifest.Files)
}

func TestPerformExportSQLite(t *testing.T) {
	ds := dataset(t, 6)
	dir := t.TempDir()
	ctx := context.Background()

	_, err := PerformExport(ctx, ds, dir, FormatSQLite, Meta{Seed: 6, ReferenceDate: today})
	require.NoError(t, err)

	adapter := sqlite.New()
	require.NoError(t, adapter.Connect(ctx, filepath.Join(dir, SQLiteFile)))
	for name, want := range ds.Counts() {
		got, err := adapter.CountRows(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, int64(want), got, name)
	}
	require.NoError(t, adapter.Close())

	_, err = PerformExport(ctx, ds, dir, FormatSQLite, Meta{Seed: 6, ReferenceDate: today})
	require.NoError(t, err, "re-export replaces the previous file")
}

func TestPerformExportRejectsUnknownFormat(t *testing.T) {
	_, err := PerformExport(context.Background(), dataset(t, 1), t.TempDir(), "xml", Meta{})
	assert.ErrorContains(t, err, "unsupported export format")
}
