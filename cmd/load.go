package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rana718/seedcart/internal/database"
	"github.com/Rana718/seedcart/internal/export"
	"github.com/Rana718/seedcart/internal/integrity"
	"github.com/Rana718/seedcart/internal/model"
	"github.com/Rana718/seedcart/internal/seeder"
)

var (
	loadFrom     string
	loadTruncate bool
	loadCreate   bool
	loadBatch    int
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load a dataset into the configured database",
	Long: `
Load a dataset into the database named by database.provider and the URL in
the environment variable database.url_env. Without --from a fresh dataset is
generated from the config; with --from an existing CSV export is loaded.

Examples:
  seedcart load --create
  seedcart load --from ./data --truncate`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		var ds *model.Dataset
		if loadFrom != "" {
			ds, err = export.ReadCSV(loadFrom)
			if err != nil {
				return fmt.Errorf("failed to read dataset: %w", err)
			}
			if report := integrity.Check(ds); !report.OK() {
				printViolations(report)
				return fmt.Errorf("refusing to load: %d consistency violations", len(report.Violations))
			}
		} else {
			ds, err = buildDataset(cfg)
			if err != nil {
				return err
			}
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		adapter, err := database.NewAdapter(cfg.Database.Provider)
		if err != nil {
			return err
		}

		dbURL, err := cfg.GetDatabaseURL()
		if err != nil {
			return err
		}

		if err := adapter.Connect(ctx, dbURL); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer adapter.Close()

		if err := adapter.Ping(ctx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}

		opts := seeder.LoadOptions{
			Batch:    cfg.Database.Batch,
			Create:   cfg.Database.Create || loadCreate,
			Truncate: cfg.Database.Truncate || loadTruncate,
			Verify:   true,
		}
		if cmd.Flags().Changed("batch") {
			opts.Batch = loadBatch
		}

		if err := seeder.NewSeeder(adapter, quiet).Load(ctx, ds, opts); err != nil {
			return err
		}
		printCounts(ds)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().StringVar(&loadFrom, "from", "", "Load a CSV export instead of generating")
	loadCmd.Flags().BoolVar(&loadTruncate, "truncate", false, "Delete existing rows first")
	loadCmd.Flags().BoolVar(&loadCreate, "create", false, "Create tables if they do not exist")
	loadCmd.Flags().IntVar(&loadBatch, "batch", 500, "Rows per insert")
}
