package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rana718/seedcart/internal/catalog"
	"github.com/Rana718/seedcart/internal/database"
	"github.com/Rana718/seedcart/internal/seeder"
)

func loadYAML(t *testing.T, content string) *Config {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	ConfigureEnv()
	viper.SetConfigType("yaml")
	require.NoError(t, viper.ReadConfig(bytes.NewBufferString(content)))

	cfg, err := Load()
	require.NoError(t, err)
	return cfg
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 1200, cfg.Counts.Customers)
	assert.Equal(t, 20, cfg.Counts.Suppliers)
	assert.Equal(t, 150, cfg.Counts.Products)
	assert.Equal(t, 60000, cfg.Counts.Orders)
	assert.Equal(t, "postgresql", cfg.Database.Provider)
	assert.Equal(t, "DATABASE_URL", cfg.Database.URLEnv)
	assert.Len(t, cfg.Catalog, 10)
	assert.NoError(t, cfg.Validate())
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg := loadYAML(t, "seed: 7\n")

	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, "csv", cfg.Format)
	assert.Equal(t, "data", cfg.OutputDir)
	assert.Equal(t, 150, cfg.Counts.Products)
	assert.Equal(t, 0.2, cfg.Orders.DiscountRate)
	assert.Len(t, cfg.Catalog, len(catalog.Default()))
}

func TestLoadReadsFile(t *testing.T) {
	cfg := loadYAML(t, `
reference_date: "2024-06-01"
format: json
counts:
  customers: 10
  suppliers: 2
  products: 4
  orders: 0
reviews:
  min: 0
  max: 2
orders:
  discount_rate: 0
catalog:
  - id: 1
    name: Books
    items: [Novel, Cookbook]
    price: {min: 5, max: 40}
stream:
  brokers: [localhost:9092]
`)

	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, 0, cfg.Counts.Orders)
	assert.Equal(t, 0.0, cfg.Orders.DiscountRate)
	assert.Equal(t, 5, cfg.Orders.MaxQuantity)
	require.Len(t, cfg.Catalog, 1)
	assert.Equal(t, "Books", cfg.Catalog[0].Name)
	assert.Equal(t, catalog.PriceRange{Min: 5, Max: 40}, cfg.Catalog[0].Price)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Stream.Brokers)
	require.NoError(t, cfg.Validate())

	opts, err := cfg.GeneratorOptions()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), opts.Today)
	assert.Equal(t, 10, opts.Customers)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("SEEDCART_COUNTS_ORDERS", "25")
	t.Setenv("SEEDCART_DATABASE_PROVIDER", "sqlite")

	cfg := loadYAML(t, "counts:\n  orders: 100\n")
	assert.Equal(t, 25, cfg.Counts.Orders)
	assert.Equal(t, "sqlite", cfg.Database.Provider)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{"unknown provider", func(c *Config) { c.Database.Provider = "oracle" }, nil},
		{"unknown format", func(c *Config) { c.Format = "xml" }, nil},
		{"bad reference date", func(c *Config) { c.ReferenceDate = "06/01/2024" }, nil},
		{"zero customers", func(c *Config) { c.Counts.Customers = 0 }, seeder.ErrInvalidOptions},
		{"inverted reviews", func(c *Config) { c.Reviews.Min = 9; c.Reviews.Max = 1 }, seeder.ErrInvalidOptions},
		{"duplicate category", func(c *Config) {
			c.Catalog = []catalog.Category{{ID: 1, Name: "A"}, {ID: 1, Name: "B"}}
		}, catalog.ErrInvalidCatalog},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestGetDatabaseURL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Database.URLEnv = "SEEDCART_TEST_DB_URL"

	_, err := cfg.GetDatabaseURL()
	assert.Error(t, err)

	t.Setenv("SEEDCART_TEST_DB_URL", "sqlite://test.db")
	url, err := cfg.GetDatabaseURL()
	require.NoError(t, err)
	assert.Equal(t, "sqlite://test.db", url)
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, DefaultConfig().Write(path))
	assert.Error(t, DefaultConfig().Write(path), "existing file must not be overwritten")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	cfg := loadYAML(t, string(data))
	assert.Equal(t, DefaultConfig().Counts, cfg.Counts)
	assert.Equal(t, DefaultConfig().Catalog, cfg.Catalog)
}

func TestPinReferenceDate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ReferenceDate = ""

	pinned, err := cfg.PinReferenceDate()
	require.NoError(t, err)
	assert.Equal(t, pinned.Format(time.DateOnly), cfg.ReferenceDate)

	again, err := cfg.ReferenceTime()
	require.NoError(t, err)
	assert.True(t, pinned.Equal(again))

	opts, err := cfg.GeneratorOptions()
	require.NoError(t, err)
	assert.True(t, pinned.Equal(opts.Today))

	cfg.ReferenceDate = "2024-06-01"
	pinned, err = cfg.PinReferenceDate()
	require.NoError(t, err)
	assert.True(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC).Equal(pinned))

	cfg.ReferenceDate = "06/01/2024"
	_, err = cfg.PinReferenceDate()
	assert.Error(t, err)
	assert.Equal(t, "06/01/2024", cfg.ReferenceDate)
}

func TestValidateAcceptsEveryAdapterProvider(t *testing.T) {
	for _, provider := range database.SupportedProviders {
		cfg := DefaultConfig()
		cfg.Database.Provider = provider
		assert.NoError(t, cfg.Validate(), provider)

		_, err := database.NewAdapter(provider)
		assert.NoError(t, err, provider)
	}
}
