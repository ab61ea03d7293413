// =============================================================================
// Sales Analytics System - Validate Command
// =============================================================================
//
// This file defines the 'validate' command: a dry pass that reads, parses and
// validates the feed without filtering, enrichment or report generation. It
// prints the validation summary so feed problems can be inspected before a
// full run.
//
// =============================================================================

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saak2000/sales-analytics-system/internal/feed"
	"github.com/saak2000/sales-analytics-system/internal/validation"
)

var validateInput string

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Parse and validate the sales feed without producing a report",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate()
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&validateInput, "input", "", "Override the configured input feed path")
}

func runValidate() error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	if validateInput != "" {
		cfg.InputFile = validateInput
	}

	lines, err := feed.ReadSalesData(cfg.InputFile)
	if err != nil {
		log.Error().Err(err).Msg("could not read sales feed")
		fmt.Println("✗ No data read.")
		return nil
	}

	records := feed.ParseAll(lines)
	_, summary, err := validation.ValidateAndFilter(records, validation.Filters{})
	if err != nil {
		return err
	}

	fmt.Println("=== Validation Summary ===")
	fmt.Printf("Lines read:       %d\n", len(lines))
	fmt.Printf("Parsed records:   %d\n", len(records))
	fmt.Printf("Dropped at parse: %d\n", len(lines)-len(records))
	fmt.Printf("Invalid records:  %d\n", summary.Invalid)
	fmt.Printf("Valid records:    %d\n", summary.FinalCount)
	fmt.Printf("Regions:          %s\n", strings.Join(summary.Regions, ", "))
	if summary.AmountRange != nil {
		fmt.Printf("Amount range:     %.2f - %.2f\n", summary.AmountRange.Min, summary.AmountRange.Max)
	} else {
		fmt.Println("Amount range:     no valid records")
	}

	return nil
}
