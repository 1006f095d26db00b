package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Rana718/seedcart/internal/catalog"
	"github.com/Rana718/seedcart/internal/database"
	"github.com/Rana718/seedcart/internal/export"
	"github.com/Rana718/seedcart/internal/seeder"
)

const (
	FileName   = "seedcart.config.yaml"
	EnvPrefix  = "SEEDCART"
	DefaultURL = "DATABASE_URL"
)

type Config struct {
	Version       string             `yaml:"version" mapstructure:"version"`
	Seed          int64              `yaml:"seed" mapstructure:"seed"`
	ReferenceDate string             `yaml:"reference_date,omitempty" mapstructure:"reference_date"` // YYYY-MM-DD, empty means today
	OutputDir     string             `yaml:"output_dir" mapstructure:"output_dir"`
	Format        string             `yaml:"format" mapstructure:"format"`
	Counts        Counts             `yaml:"counts" mapstructure:"counts"`
	Reviews       Reviews            `yaml:"reviews" mapstructure:"reviews"`
	Orders        Orders             `yaml:"orders" mapstructure:"orders"`
	Catalog       []catalog.Category `yaml:"catalog,omitempty" mapstructure:"catalog"`
	Database      Database           `yaml:"database" mapstructure:"database"`
	Upload        Upload             `yaml:"upload" mapstructure:"upload"`
	Stream        Stream             `yaml:"stream" mapstructure:"stream"`
}

type Counts struct {
	Customers int `yaml:"customers" mapstructure:"customers"`
	Suppliers int `yaml:"suppliers" mapstructure:"suppliers"`
	Products  int `yaml:"products" mapstructure:"products"`
	Orders    int `yaml:"orders" mapstructure:"orders"`
}

type Reviews struct {
	Min int `yaml:"min" mapstructure:"min"`
	Max int `yaml:"max" mapstructure:"max"`
}

type Orders struct {
	MaxQuantity  int     `yaml:"max_quantity" mapstructure:"max_quantity"`
	DiscountRate float64 `yaml:"discount_rate" mapstructure:"discount_rate"`
}

type Database struct {
	Provider string `yaml:"provider" mapstructure:"provider"`
	URLEnv   string `yaml:"url_env" mapstructure:"url_env"`
	Batch    int    `yaml:"batch" mapstructure:"batch"`
	Create   bool   `yaml:"create" mapstructure:"create"`
	Truncate bool   `yaml:"truncate" mapstructure:"truncate"`
}

type Upload struct {
	Bucket   string `yaml:"bucket" mapstructure:"bucket"`
	Region   string `yaml:"region" mapstructure:"region"`
	Endpoint string `yaml:"endpoint,omitempty" mapstructure:"endpoint"`
	Prefix   string `yaml:"prefix,omitempty" mapstructure:"prefix"`
}

type Stream struct {
	Brokers     []string `yaml:"brokers" mapstructure:"brokers"`
	TopicPrefix string   `yaml:"topic_prefix" mapstructure:"topic_prefix"`
	BatchSize   int      `yaml:"batch_size" mapstructure:"batch_size"`
}

// DefaultConfig matches the cardinalities of the reference dataset.
func DefaultConfig() *Config {
	opts := seeder.DefaultOptions()
	return &Config{
		Version:   "1",
		Seed:      42,
		OutputDir: "data",
		Format:    export.FormatCSV,
		Counts: Counts{
			Customers: opts.Customers,
			Suppliers: opts.Suppliers,
			Products:  opts.Products,
			Orders:    opts.Orders,
		},
		Reviews: Reviews{Min: opts.ReviewsMin, Max: opts.ReviewsMax},
		Orders:  Orders{MaxQuantity: opts.MaxQuantity, DiscountRate: opts.DiscountRate},
		Catalog: catalog.Default(),
		Database: Database{
			Provider: "postgresql",
			URLEnv:   DefaultURL,
			Batch:    500,
		},
		Upload: Upload{Region: "us-east-1"},
		Stream: Stream{TopicPrefix: "seedcart", BatchSize: 200},
	}
}

// ConfigureEnv lets SEEDCART_* variables override any key, e.g.
// SEEDCART_COUNTS_ORDERS overrides counts.orders.
func ConfigureEnv() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

func setDefaults() {
	d := DefaultConfig()
	viper.SetDefault("version", d.Version)
	viper.SetDefault("seed", d.Seed)
	viper.SetDefault("reference_date", d.ReferenceDate)
	viper.SetDefault("output_dir", d.OutputDir)
	viper.SetDefault("format", d.Format)
	viper.SetDefault("counts.customers", d.Counts.Customers)
	viper.SetDefault("counts.suppliers", d.Counts.Suppliers)
	viper.SetDefault("counts.products", d.Counts.Products)
	viper.SetDefault("counts.orders", d.Counts.Orders)
	viper.SetDefault("reviews.min", d.Reviews.Min)
	viper.SetDefault("reviews.max", d.Reviews.Max)
	viper.SetDefault("orders.max_quantity", d.Orders.MaxQuantity)
	viper.SetDefault("orders.discount_rate", d.Orders.DiscountRate)
	viper.SetDefault("database.provider", d.Database.Provider)
	viper.SetDefault("database.url_env", d.Database.URLEnv)
	viper.SetDefault("database.batch", d.Database.Batch)
	viper.SetDefault("database.create", d.Database.Create)
	viper.SetDefault("database.truncate", d.Database.Truncate)
	viper.SetDefault("upload.bucket", d.Upload.Bucket)
	viper.SetDefault("upload.region", d.Upload.Region)
	viper.SetDefault("upload.endpoint", d.Upload.Endpoint)
	viper.SetDefault("upload.prefix", d.Upload.Prefix)
	viper.SetDefault("stream.brokers", d.Stream.Brokers)
	viper.SetDefault("stream.topic_prefix", d.Stream.TopicPrefix)
	viper.SetDefault("stream.batch_size", d.Stream.BatchSize)
}

func Load() (*Config, error) {
	setDefaults()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if len(cfg.Catalog) == 0 {
		cfg.Catalog = catalog.Default()
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = DefaultURL
	}

	return &cfg, nil
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

// ReferenceTime parses reference_date, falling back to the current UTC day.
func (c *Config) ReferenceTime() (time.Time, error) {
	if c.ReferenceDate == "" {
		return seeder.Day(time.Now().UTC()), nil
	}
	t, err := time.Parse(time.DateOnly, c.ReferenceDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("reference_date must be YYYY-MM-DD: %w", err)
	}
	return t, nil
}

// PinReferenceDate resolves the reference date once and stores it, so every
// later ReferenceTime call in the run sees the same day.
func (c *Config) PinReferenceDate() (time.Time, error) {
	t, err := c.ReferenceTime()
	if err != nil {
		return time.Time{}, err
	}
	c.ReferenceDate = t.Format(time.DateOnly)
	return t, nil
}

// GeneratorOptions converts the configuration into generator options.
func (c *Config) GeneratorOptions() (seeder.Options, error) {
	today, err := c.ReferenceTime()
	if err != nil {
		return seeder.Options{}, err
	}
	return seeder.Options{
		Customers:    c.Counts.Customers,
		Suppliers:    c.Counts.Suppliers,
		Products:     c.Counts.Products,
		Orders:       c.Counts.Orders,
		ReviewsMin:   c.Reviews.Min,
		ReviewsMax:   c.Reviews.Max,
		MaxQuantity:  c.Orders.MaxQuantity,
		DiscountRate: c.Orders.DiscountRate,
		Catalog:      c.Catalog,
		Today:        today,
	}, nil
}

func (c *Config) Validate() error {
	if !contains(database.SupportedProviders, c.Database.Provider) {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, database.SupportedProviders)
	}
	if !contains(export.Formats, c.Format) {
		return fmt.Errorf("unsupported format: %s. Supported formats: %v", c.Format, export.Formats)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir cannot be empty")
	}

	opts, err := c.GeneratorOptions()
	if err != nil {
		return err
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	if _, err := catalog.New(c.Catalog); err != nil {
		return err
	}
	return nil
}

func IsInitialized() bool {
	_, err := os.Stat(FileName)
	return err == nil
}

// Write marshals c as YAML to path, refusing to overwrite an existing file.
func (c *Config) Write(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
