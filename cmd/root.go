// =============================================================================
// Sales Analytics System - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that the subcommands ('analyze', 'validate', 'version')
// are attached to, and owns the global --config and --verbose flags.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/saak2000/sales-analytics-system/internal/config"
	"github.com/saak2000/sales-analytics-system/internal/logger"
)

// cfgFile holds the path to the configuration file (--config).
var cfgFile string

// verbose forces debug logging when set (--verbose).
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "sales-analytics",
	Short: "Sales Analytics System - ingest, validate and analyze a sales feed",
	Long: `Sales Analytics System ingests a pipe-delimited sales-transaction feed,
cleans and validates it, computes business aggregates (revenue, regional,
product, customer and daily breakdowns), optionally enriches records against
a remote product catalog, and renders a formatted text report.

Example Usage:
  sales-analytics analyze                         # Full pipeline with defaults
  sales-analytics analyze --region North          # Restrict to one region
  sales-analytics analyze --interactive           # Prompt for filters
  sales-analytics validate --input data/feed.txt  # Validation pass only`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// loadConfig loads the configuration and builds the run logger. The
// --verbose flag overrides the configured log level.
func loadConfig() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, zerolog.Logger{}, fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}

	return cfg, logger.New(level), nil
}
