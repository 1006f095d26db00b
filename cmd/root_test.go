package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rana718/seedcart/internal/config"
	"github.com/Rana718/seedcart/internal/export"
)

const smallConfig = `
seed: 11
reference_date: "2024-06-01"
output_dir: out
counts:
  customers: 12
  suppliers: 3
  products: 6
  orders: 40
reviews:
  min: 1
  max: 3
database:
  provider: sqlite
  url_env: SEEDCART_TEST_DATABASE_URL
`

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	viper.Reset()
	resetFlags(rootCmd)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func setupProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Cleanup(viper.Reset)
	require.NoError(t, os.WriteFile(config.FileName, []byte(smallConfig), 0644))
	return dir
}

func TestInitWritesConfigAndEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Cleanup(viper.Reset)

	require.NoError(t, run(t, "init", "--sqlite", "-q"))
	assert.FileExists(t, config.FileName)

	env, err := os.ReadFile(".env")
	require.NoError(t, err)
	assert.Equal(t, "DATABASE_URL=sqlite://shop.db\n", string(env))

	assert.Error(t, run(t, "init", "-q"), "second init must not overwrite the config")
	assert.Error(t, run(t, "init", "--sqlite", "--mysql"))
}

func TestGenerateThenVerify(t *testing.T) {
	dir := setupProject(t)

	require.NoError(t, run(t, "generate", "-q"))
	out := filepath.Join(dir, "out")
	assert.FileExists(t, filepath.Join(out, "orders.csv"))
	assert.FileExists(t, filepath.Join(out, export.ManifestFile))

	manifest, err := export.ReadManifest(out)
	require.NoError(t, err)
	assert.Equal(t, int64(11), manifest.Seed)
	assert.Equal(t, "2024-06-01", manifest.ReferenceDate)
	assert.Equal(t, 40, manifest.Counts["orders"])

	require.NoError(t, run(t, "verify", "-q"))
}

func TestGenerateIsReproducible(t *testing.T) {
	dir := setupProject(t)

	require.NoError(t, run(t, "generate", "-q", "--seed", "5", "--out", "a"))
	require.NoError(t, run(t, "generate", "-q", "--seed", "5", "--out", "b"))

	for _, name := range []string{"customers.csv", "orders.csv", "reviews.csv", "shipments.csv"} {
		a, err := os.ReadFile(filepath.Join(dir, "a", name))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(dir, "b", name))
		require.NoError(t, err)
		assert.Equal(t, a, b, name)
	}
}

func TestVerifyDetectsTampering(t *testing.T) {
	dir := setupProject(t)
	require.NoError(t, run(t, "generate", "-q"))

	payments := filepath.Join(dir, "out", "payments.csv")
	require.NoError(t, os.WriteFile(payments,
		[]byte("PaymentID,OrderID,PaymentMethod,Amount,PaymentDate\n1,1,PayPal,0.01,2024-01-01\n"), 0644))

	assert.Error(t, run(t, "verify", "-q", "--dir", filepath.Join(dir, "out")))
}

func TestVerifyRejectsTruncatedExport(t *testing.T) {
	dir := setupProject(t)
	require.NoError(t, run(t, "generate", "-q"))

	reviews := filepath.Join(dir, "out", "reviews.csv")
	data, err := os.ReadFile(reviews)
	require.NoError(t, err)
	lines := strings.SplitAfter(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Greater(t, len(lines), 2, "need at least two reviews")

	truncated := strings.Join(lines[:len(lines)-1], "")
	require.NoError(t, os.WriteFile(reviews, []byte(truncated), 0644))

	err = run(t, "verify", "-q", "--dir", filepath.Join(dir, "out"))
	assert.ErrorContains(t, err, "manifest")
}

func TestGenerateWithoutReferenceDateRecordsDay(t *testing.T) {
	dir := setupProject(t)
	cfg := strings.Replace(smallConfig, "reference_date: \"2024-06-01\"\n", "", 1)
	require.NoError(t, os.WriteFile(config.FileName, []byte(cfg), 0644))

	require.NoError(t, run(t, "generate", "-q"))

	manifest, err := export.ReadManifest(filepath.Join(dir, "out"))
	require.NoError(t, err)
	day, err := time.Parse(time.DateOnly, manifest.ReferenceDate)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), day, 48*time.Hour)

	require.NoError(t, run(t, "verify", "-q"))
}

func TestGenerateRejectsUnknownFormat(t *testing.T) {
	setupProject(t)
	assert.ErrorContains(t, run(t, "generate", "-q", "--format", "parquet"), "unsupported format")
}

func TestLoadIntoSQLite(t *testing.T) {
	dir := setupProject(t)
	t.Setenv("SEEDCART_TEST_DATABASE_URL", "sqlite://"+filepath.Join(dir, "shop.db"))

	require.NoError(t, run(t, "generate", "-q"))
	require.NoError(t, run(t, "load", "-q", "--from", "out", "--create"))
	require.NoError(t, run(t, "load", "-q", "--truncate", "--batch", "7"))
}
