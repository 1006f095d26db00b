package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Rana718/seedcart/internal/export"
	"github.com/Rana718/seedcart/internal/integrity"
)

var verifyDir string

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check an exported CSV dataset for consistency",
	Long: `
Re-read a CSV export and check every consistency rule: foreign keys, order
totals, payment and shipment status and dates, reviewer purchases and
discount caps. Exits non-zero when any rule is broken.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := verifyDir
		if dir == "" {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			dir = cfg.OutputDir
		}

		info("🔍 Verifying %s ...", dir)
		ds, err := export.ReadCSV(dir)
		if err != nil {
			return fmt.Errorf("failed to read dataset: %w", err)
		}

		mismatches, err := compareManifest(dir, ds.Counts())
		if err != nil {
			return err
		}

		report := integrity.Check(ds)
		if report.OK() && mismatches == 0 {
			success("✅ Dataset is consistent (%d orders, %d reviews)", len(ds.Orders), len(ds.Reviews))
			return nil
		}
		if mismatches > 0 && report.OK() {
			return fmt.Errorf("%d tables do not match the manifest row counts", mismatches)
		}

		printViolations(report)
		byRule := report.ByRule()
		rules := make([]string, 0, len(byRule))
		for rule := range byRule {
			rules = append(rules, string(rule))
		}
		sort.Strings(rules)
		for _, rule := range rules {
			color.Red("  %-18s %d", rule, byRule[integrity.Rule(rule)])
		}
		if mismatches > 0 {
			return fmt.Errorf("dataset has %d consistency violations and %d tables do not match the manifest",
				len(report.Violations), mismatches)
		}
		return fmt.Errorf("dataset has %d consistency violations", len(report.Violations))
	},
}

// compareManifest reports every table whose row count differs from the one
// recorded at export time. A directory without a manifest is not compared.
func compareManifest(dir string, counts map[string]int) (int, error) {
	manifest, err := export.ReadManifest(dir)
	if errors.Is(err, fs.ErrNotExist) {
		warn("⚠️  No %s in %s, skipping row count check", export.ManifestFile, dir)
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	tables := make([]string, 0, len(manifest.Counts))
	for table := range manifest.Counts {
		tables = append(tables, table)
	}
	sort.Strings(tables)

	mismatches := 0
	for _, table := range tables {
		if got, want := counts[table], manifest.Counts[table]; got != want {
			color.Red("  ❌ %s has %d rows, manifest says %d", table, got, want)
			mismatches++
		}
	}
	return mismatches, nil
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().StringVarP(&verifyDir, "dir", "d", "", "Directory holding the CSV export (default is output_dir)")
}
