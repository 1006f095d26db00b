package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Rana718/seedcart/internal/config"
)

var (
	cfgFile string
	quiet   bool
	Version = "0.3.0"
)

func showBanner() {
	greenColor := color.New(color.FgGreen, color.Bold)

	banner := []string{
		"╔════════════════════════════════════════════════╗",
		"║   🛒  S E E D C A R T                          ║",
		"║                                                ║",
		"║   Synthetic e-commerce datasets, reproducibly  ║",
		"╚════════════════════════════════════════════════╝",
	}

	for _, line := range banner {
		greenColor.Println(line)
	}

	fmt.Print("   ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "seedcart",
	Short: "Generate referentially consistent e-commerce test data",
	Long: `
SeedCart generates a synthetic e-commerce dataset (customers, categories,
suppliers, products, orders, payments, shipments, reviews, inventory and
discounts) whose foreign keys, amounts, statuses and dates agree with each other.

The same seed and reference date always produce the same dataset.

Outputs:
- CSV (one file per table)
- JSON (a single document)
- SQLite (a database file with keys declared)
- PostgreSQL, MySQL, SQLite servers via "seedcart load"`,
	SilenceUsage: true,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("SeedCart CLI version %s\n", Version)
			return
		}

		if len(args) == 0 {
			showBanner()
			fmt.Println()
			cmd.Help()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./"+config.FileName+")")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only print errors and the final result")

	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("seedcart.config")
	}

	config.ConfigureEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound && cfgFile != "" {
			color.Yellow("⚠️  Could not read config %s: %v", cfgFile, err)
		}
	}
}

// loadConfig reads and validates the configuration shared by every command.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func info(format string, args ...interface{}) {
	if !quiet {
		color.Cyan(format, args...)
	}
}

func success(format string, args ...interface{}) {
	color.Green(format, args...)
}

func warn(format string, args ...interface{}) {
	color.Yellow(format, args...)
}
