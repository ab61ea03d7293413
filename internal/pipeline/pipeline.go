// =============================================================================
// Sales Analytics System - Pipeline Orchestration
// =============================================================================
//
// This module runs the full analysis pipeline for one input feed:
//
//   read raw lines -> parse records -> validate & filter -> aggregate
//     -> (optionally) enrich against the product catalog -> render report
//
// Each stage fully consumes its input before the next starts and returns a
// freshly constructed result; nothing is mutated in place. Collaborator
// failures (missing feed, unreachable catalog, unwritable enriched file)
// degrade the run instead of aborting it; only unexpected faults and invalid
// filter input surface as errors.
//
// =============================================================================

package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/saak2000/sales-analytics-system/internal/analytics"
	"github.com/saak2000/sales-analytics-system/internal/config"
	"github.com/saak2000/sales-analytics-system/internal/enrich"
	"github.com/saak2000/sales-analytics-system/internal/feed"
	"github.com/saak2000/sales-analytics-system/internal/report"
	"github.com/saak2000/sales-analytics-system/internal/types"
	"github.com/saak2000/sales-analytics-system/internal/validation"
	"github.com/saak2000/sales-analytics-system/pkg/utils"
)

// Options control a single pipeline run.
type Options struct {
	// Filters are the optional record filters, however obtained (flags or
	// interactive prompt).
	Filters validation.Filters

	// Enrich toggles the catalog fetch, enrichment and enriched-file write.
	Enrich bool

	// Excel additionally exports the report as an XLSX workbook.
	Excel bool
}

// Result describes one pipeline run.
type Result struct {
	RawLines    int
	ParsedCount int
	Summary     validation.Summary

	// Skipped is true when the run stopped early because no records
	// remained; SkipReason says at which stage.
	Skipped    bool
	SkipReason string

	MatchedCount int

	ReportPath   string
	EnrichedPath string
	ExcelPath    string
}

// Pipeline executes the analysis stages for one configured run.
type Pipeline struct {
	cfg  *config.Config
	opts Options
	log  zerolog.Logger
}

// New creates a pipeline for the given configuration and run options.
func New(cfg *config.Config, opts Options, log zerolog.Logger) *Pipeline {
	return &Pipeline{cfg: cfg, opts: opts, log: log}
}

// Run executes the pipeline. A run that finds no usable records is not an
// error: it returns a Result with Skipped set and the downstream stages
// untouched.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	var res Result

	if err := p.cfg.EnsureDirs(); err != nil {
		return res, err
	}

	// Stage 1: read raw lines. A missing or undecodable feed degrades to an
	// empty run rather than an error.
	lines, err := feed.ReadSalesData(p.cfg.InputFile)
	if err != nil {
		p.log.Error().Err(err).Msg("could not read sales feed")
		res.Skipped = true
		res.SkipReason = "sales feed unavailable"
		return res, nil
	}
	res.RawLines = len(lines)
	p.log.Info().Int("lines", len(lines)).Str("file", p.cfg.InputFile).Msg("read sales feed")

	// Stage 2: parse. Malformed lines are dropped silently and only show up
	// as a smaller parsed count.
	records := feed.ParseAll(lines)
	res.ParsedCount = len(records)
	p.log.Info().Int("parsed", len(records)).Int("dropped", len(lines)-len(records)).Msg("parsed records")

	if len(records) == 0 {
		res.Skipped = true
		res.SkipReason = "no records parsed"
		return res, nil
	}

	// Stage 3: validate and filter.
	filtered, summary, err := validation.ValidateAndFilter(records, p.opts.Filters)
	if err != nil {
		return res, err
	}
	res.Summary = summary
	p.log.Info().
		Int("valid", summary.TotalInput-summary.Invalid).
		Int("invalid", summary.Invalid).
		Int("final", summary.FinalCount).
		Msg("validated records")

	if len(filtered) == 0 {
		res.Skipped = true
		res.SkipReason = "no records after validation and filtering"
		return res, nil
	}

	// Stage 4: enrichment (optional).
	var enriched []types.EnrichedTransaction
	if p.opts.Enrich {
		enriched = p.runEnrichment(ctx, filtered, &res)
	}

	// Stage 5: aggregate and render.
	data := p.assemble(filtered, enriched)

	reportPath := filepath.Join(p.cfg.OutputDir, utils.GenerateOutputFileName(p.cfg.ReportFile))
	if err := report.Write(data, reportPath); err != nil {
		return res, fmt.Errorf("rendering report: %w", err)
	}
	res.ReportPath = reportPath
	p.log.Info().Str("path", reportPath).Msg("report written")

	if p.opts.Excel {
		excelPath := filepath.Join(p.cfg.OutputDir, utils.GenerateOutputFileName(p.cfg.ExcelFile))
		if err := report.WriteExcel(data, excelPath); err != nil {
			return res, fmt.Errorf("exporting excel report: %w", err)
		}
		res.ExcelPath = excelPath
		p.log.Info().Str("path", excelPath).Msg("excel report written")
	}

	return res, nil
}

// runEnrichment fetches the catalog once and enriches the record set. Both
// the fetch and the enriched-file write are non-fatal: on failure the run
// continues with unmatched records or without the file.
func (p *Pipeline) runEnrichment(ctx context.Context, records []types.Transaction, res *Result) []types.EnrichedTransaction {
	client := enrich.NewClient(p.cfg.CatalogURL, p.cfg.CatalogTimeout(), p.log)
	mapping := enrich.BuildMapping(client.FetchProducts(ctx))

	enriched := enrich.Enrich(records, mapping)
	res.MatchedCount = enrich.MatchedCount(enriched)
	p.log.Info().Int("matched", res.MatchedCount).Int("total", len(enriched)).Msg("enriched records")

	path := filepath.Join(p.cfg.OutputDir, utils.GenerateOutputFileName(p.cfg.EnrichedFile))
	if err := enrich.WriteEnriched(enriched, path); err != nil {
		p.log.Warn().Err(err).Msg("could not write enriched data file")
	} else {
		res.EnrichedPath = path
		p.log.Info().Str("path", path).Msg("enriched data written")
	}

	return enriched
}

// assemble computes the aggregate views and bundles them for the renderer.
func (p *Pipeline) assemble(records []types.Transaction, enriched []types.EnrichedTransaction) report.Data {
	totalRevenue := analytics.TotalRevenue(records)

	var avgOrder float64
	if len(records) > 0 {
		avgOrder = totalRevenue / float64(len(records))
	}

	data := report.Data{
		GeneratedAt:   time.Now(),
		Currency:      p.cfg.CurrencySymbol,
		RecordCount:   len(records),
		TotalRevenue:  totalRevenue,
		AvgOrderValue: avgOrder,
		DateRange:     dateRange(records),
		TopN:          p.cfg.TopProducts,
		Regions:       analytics.RegionBreakdown(records),
		TopProducts:   analytics.TopProducts(records, p.cfg.TopProducts),
		Customers:     analytics.CustomerAnalysis(records),
		DailyTrend:    analytics.DailyTrend(records),
		LowPerformers: analytics.LowPerformingProducts(records, p.cfg.LowQuantityThreshold),
		Enriched:      enriched,
	}

	if peak, ok := analytics.PeakSalesDay(records); ok {
		data.PeakDay = &peak
	}

	return data
}

// dateRange formats the "first to last" date span of the record set.
func dateRange(records []types.Transaction) string {
	if len(records) == 0 {
		return "N/A"
	}
	dates := make([]string, 0, len(records))
	for _, tx := range records {
		dates = append(dates, tx.Date)
	}
	sort.Strings(dates)
	return fmt.Sprintf("%s to %s", dates[0], dates[len(dates)-1])
}
