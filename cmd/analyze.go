// =============================================================================
// Sales Analytics System - Analyze Command
// =============================================================================
//
// This file defines the 'analyze' command, which runs the full pipeline.
//
// COMMAND USAGE:
//   sales-analytics analyze [flags]
//
// FLAGS:
//   --input        : Override the configured input feed path
//   --region       : Keep only transactions from this region
//   --min-amount   : Keep only transactions with amount >= this value
//   --max-amount   : Keep only transactions with amount <= this value
//   --interactive  : Prompt for the filters instead of taking them from flags
//   --no-enrich    : Skip the catalog fetch and enrichment stage
//   --excel        : Additionally export the report as an XLSX workbook
//
// =============================================================================

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/saak2000/sales-analytics-system/internal/feed"
	"github.com/saak2000/sales-analytics-system/internal/pipeline"
	"github.com/saak2000/sales-analytics-system/internal/validation"
)

var (
	inputFile   string
	region      string
	minAmount   float64
	maxAmount   float64
	interactive bool
	noEnrich    bool
	excelExport bool
)

// analyzeCmd represents the 'analyze' command.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full ingestion, validation, aggregation and report pipeline",
	Long: `The analyze command reads the sales feed, parses and validates it, applies
the optional region/amount filters, computes the aggregate views, enriches
records against the product catalog, and writes the text report (plus the
enriched data file) to the output directory.

Data-quality problems never abort a run: malformed lines are dropped at
parse time, invalid records are counted at validation time, and a failed
catalog fetch simply leaves every record unenriched.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze(cmd)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&inputFile, "input", "", "Override the configured input feed path")
	analyzeCmd.Flags().StringVar(&region, "region", "", "Keep only transactions from this region")
	analyzeCmd.Flags().Float64Var(&minAmount, "min-amount", 0, "Keep only transactions with amount >= this value")
	analyzeCmd.Flags().Float64Var(&maxAmount, "max-amount", 0, "Keep only transactions with amount <= this value")
	analyzeCmd.Flags().BoolVar(&interactive, "interactive", false, "Prompt for filters instead of taking them from flags")
	analyzeCmd.Flags().BoolVar(&noEnrich, "no-enrich", false, "Skip the catalog fetch and enrichment stage")
	analyzeCmd.Flags().BoolVar(&excelExport, "excel", false, "Additionally export the report as an XLSX workbook")
}

func runAnalyze(cmd *cobra.Command) error {
	startTime := time.Now()

	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	if inputFile != "" {
		cfg.InputFile = inputFile
	}

	fmt.Println("=== Sales Analytics System ===")

	filters := flagFilters(cmd)
	if interactive {
		filters, err = promptFilters(cfg.InputFile, os.Stdin)
		if err != nil {
			return err
		}
	}

	p := pipeline.New(cfg, pipeline.Options{
		Filters: filters,
		Enrich:  !noEnrich,
		Excel:   excelExport,
	}, log)

	res, err := p.Run(cmd.Context())
	if err != nil {
		return err
	}

	if res.Skipped {
		fmt.Printf("  ✗ Run stopped: %s\n", res.SkipReason)
		return nil
	}

	fmt.Println("\n=== Processing Complete ===")
	fmt.Printf("Lines read:      %d\n", res.RawLines)
	fmt.Printf("Parsed records:  %d\n", res.ParsedCount)
	fmt.Printf("Invalid records: %d\n", res.Summary.Invalid)
	fmt.Printf("Final records:   %d\n", res.Summary.FinalCount)
	if res.EnrichedPath != "" {
		fmt.Printf("Enriched:        %d matched -> %s\n", res.MatchedCount, res.EnrichedPath)
	}
	fmt.Printf("Report:          %s\n", res.ReportPath)
	if res.ExcelPath != "" {
		fmt.Printf("Excel report:    %s\n", res.ExcelPath)
	}
	fmt.Printf("Time elapsed:    %s\n", time.Since(startTime))

	return nil
}

// flagFilters builds the filter set from the command line. Amount flags only
// apply when explicitly set, so a zero value never filters by accident.
func flagFilters(cmd *cobra.Command) validation.Filters {
	filters := validation.Filters{Region: region}

	if cmd.Flags().Changed("min-amount") {
		v := minAmount
		filters.MinAmount = &v
	}
	if cmd.Flags().Changed("max-amount") {
		v := maxAmount
		filters.MaxAmount = &v
	}

	return filters
}

// promptFilters runs a preview validation pass to show the available filter
// options, then reads the filters interactively. Blank input skips a filter.
func promptFilters(inputPath string, in io.Reader) (validation.Filters, error) {
	var filters validation.Filters

	lines, err := feed.ReadSalesData(inputPath)
	if err != nil {
		// The pipeline will report the unreadable feed itself.
		return filters, nil
	}

	_, preview, err := validation.ValidateAndFilter(feed.ParseAll(lines), validation.Filters{})
	if err != nil {
		return filters, err
	}

	fmt.Println("\nFilter Options Available:")
	fmt.Printf("  Regions: %s\n", strings.Join(preview.Regions, ", "))
	if preview.AmountRange != nil {
		fmt.Printf("  Transaction Amount Range: %.2f - %.2f\n",
			preview.AmountRange.Min, preview.AmountRange.Max)
	} else {
		fmt.Println("  Transaction Amount Range: no valid records")
	}

	reader := bufio.NewReader(in)

	answer, err := promptLine(reader, "\nDo you want to filter data? (y/n): ")
	if err != nil {
		return filters, err
	}
	if strings.ToLower(answer) != "y" {
		return filters, nil
	}

	if filters.Region, err = promptLine(reader, "Enter region (or press Enter to skip): "); err != nil {
		return filters, err
	}

	if filters.MinAmount, err = promptAmount(reader, "Enter minimum amount (or press Enter to skip): "); err != nil {
		return filters, err
	}
	if filters.MaxAmount, err = promptAmount(reader, "Enter maximum amount (or press Enter to skip): "); err != nil {
		return filters, err
	}

	return filters, nil
}

func promptLine(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func promptAmount(reader *bufio.Reader, prompt string) (*float64, error) {
	answer, err := promptLine(reader, prompt)
	if err != nil {
		return nil, err
	}
	if answer == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(answer, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", answer, err)
	}
	return &v, nil
}
