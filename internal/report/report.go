// =============================================================================
// Sales Analytics System - Report Renderer
// =============================================================================
//
// This module renders the fixed-layout text report. It holds no business
// logic of its own: it consumes the aggregate views and the enriched record
// set and formats them section by section. Column widths and the currency
// symbol are part of the output contract.
//
// SECTIONS:
//   1. Header            5. Top 5 customers
//   2. Overall summary   6. Daily sales trend
//   3. Region table      7. Peak / low-performer analysis
//   4. Top 5 products    8. Enrichment summary
//
// =============================================================================

package report

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/saak2000/sales-analytics-system/internal/analytics"
	"github.com/saak2000/sales-analytics-system/internal/types"
)

const sectionWidth = 50

// Data carries everything the renderer needs for one report.
type Data struct {
	GeneratedAt time.Time

	// Currency prefixes every monetary value.
	Currency string

	RecordCount   int
	TotalRevenue  float64
	AvgOrderValue float64
	DateRange     string

	// TopN is the configured product ranking size, used for the section title.
	TopN int

	Regions       []analytics.RegionStats
	TopProducts   []analytics.ProductStats
	Customers     []analytics.CustomerStats
	DailyTrend    []analytics.DailyStats
	PeakDay       *analytics.PeakDay
	LowPerformers []analytics.ProductStats

	// Enriched is nil when enrichment was skipped for the run.
	Enriched []types.EnrichedTransaction
}

// Generate renders the report into a byte buffer.
func Generate(d Data) []byte {
	var buf bytes.Buffer

	writeHeader(&buf, d)
	writeOverallSummary(&buf, d)
	writeRegionTable(&buf, d)
	writeTopProducts(&buf, d)
	writeTopCustomers(&buf, d)
	writeDailyTrend(&buf, d)
	writePerformanceAnalysis(&buf, d)
	writeEnrichmentSummary(&buf, d)

	return buf.Bytes()
}

// Write renders the report and writes it to path.
func Write(d Data, path string) error {
	if err := os.WriteFile(path, Generate(d), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// =============================================================================
// SECTIONS
// =============================================================================

func writeHeader(buf *bytes.Buffer, d Data) {
	rule := strings.Repeat("=", sectionWidth)
	fmt.Fprintf(buf, "%s\n", rule)
	fmt.Fprintf(buf, "           SALES ANALYTICS REPORT\n")
	fmt.Fprintf(buf, "         Generated: %s\n", d.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(buf, "         Records Processed: %d\n", d.RecordCount)
	fmt.Fprintf(buf, "%s\n\n", rule)
}

func writeOverallSummary(buf *bytes.Buffer, d Data) {
	writeSectionTitle(buf, "OVERALL SUMMARY")
	fmt.Fprintf(buf, "Total Revenue:        %s\n", money(d.Currency, d.TotalRevenue, 2))
	fmt.Fprintf(buf, "Total Transactions:   %d\n", d.RecordCount)
	fmt.Fprintf(buf, "Average Order Value:  %s\n", money(d.Currency, d.AvgOrderValue, 2))
	fmt.Fprintf(buf, "Date Range:           %s\n\n", d.DateRange)
}

func writeRegionTable(buf *bytes.Buffer, d Data) {
	writeSectionTitle(buf, "REGION-WISE PERFORMANCE")
	fmt.Fprintf(buf, "%-10s%-15s%-15s%s\n", "Region", "Sales", "% of Total", "Transactions")

	for _, r := range d.Regions {
		fmt.Fprintf(buf, "%-10s%-15s%6.2f%%        %d\n",
			r.Region, money(d.Currency, r.TotalSales, 0), r.Percentage, r.TransactionCount)
	}
	buf.WriteByte('\n')
}

func writeTopProducts(buf *bytes.Buffer, d Data) {
	n := d.TopN
	if n <= 0 {
		n = len(d.TopProducts)
	}
	writeSectionTitle(buf, fmt.Sprintf("TOP %d PRODUCTS", n))
	fmt.Fprintf(buf, "%-6s%-25s%-10s%s\n", "Rank", "Product", "Qty", "Revenue")

	for i, p := range d.TopProducts {
		fmt.Fprintf(buf, "%-6d%-25s%-10d%s\n",
			i+1, p.Product, p.Quantity, money(d.Currency, p.Revenue, 0))
	}
	buf.WriteByte('\n')
}

func writeTopCustomers(buf *bytes.Buffer, d Data) {
	customers := d.Customers
	if len(customers) > 5 {
		customers = customers[:5]
	}

	writeSectionTitle(buf, "TOP 5 CUSTOMERS")
	fmt.Fprintf(buf, "%-6s%-15s%-15s%s\n", "Rank", "Customer", "Spent", "Orders")

	for i, c := range customers {
		fmt.Fprintf(buf, "%-6d%-15s%-15s%d\n",
			i+1, c.CustomerID, money(d.Currency, c.TotalSpent, 0), c.OrderCount)
	}
	buf.WriteByte('\n')
}

func writeDailyTrend(buf *bytes.Buffer, d Data) {
	writeSectionTitle(buf, "DAILY SALES TREND")
	fmt.Fprintf(buf, "%-12s%-15s%-10s%s\n", "Date", "Revenue", "Txns", "Customers")

	for _, day := range d.DailyTrend {
		fmt.Fprintf(buf, "%-12s%-15s%-10d%d\n",
			day.Date, money(d.Currency, day.Revenue, 0), day.TransactionCount, day.UniqueCustomers)
	}
	buf.WriteByte('\n')
}

func writePerformanceAnalysis(buf *bytes.Buffer, d Data) {
	writeSectionTitle(buf, "PRODUCT PERFORMANCE ANALYSIS")

	if d.PeakDay != nil {
		fmt.Fprintf(buf, "Best Selling Day: %s (%s, %d transactions)\n\n",
			d.PeakDay.Date, money(d.Currency, d.PeakDay.Revenue, 0), d.PeakDay.TransactionCount)
	} else {
		fmt.Fprintf(buf, "Best Selling Day: no sales data available\n\n")
	}

	if len(d.LowPerformers) > 0 {
		fmt.Fprintf(buf, "Low Performing Products:\n")
		for _, p := range d.LowPerformers {
			fmt.Fprintf(buf, "- %s: %d units, %s\n",
				p.Product, p.Quantity, money(d.Currency, p.Revenue, 0))
		}
	} else {
		fmt.Fprintf(buf, "No low performing products identified.\n")
	}
	buf.WriteByte('\n')
}

func writeEnrichmentSummary(buf *bytes.Buffer, d Data) {
	writeSectionTitle(buf, "API ENRICHMENT SUMMARY")

	if len(d.Enriched) == 0 {
		fmt.Fprintf(buf, "No enrichment data available.\n")
		return
	}

	var matched int
	unmatchedSet := make(map[string]bool)
	for _, e := range d.Enriched {
		if e.APIMatch {
			matched++
		} else {
			unmatchedSet[e.ProductName] = true
		}
	}
	rate := float64(matched) / float64(len(d.Enriched)) * 100

	fmt.Fprintf(buf, "Total Transactions:     %d\n", len(d.Enriched))
	fmt.Fprintf(buf, "Successfully Enriched:  %d\n", matched)
	fmt.Fprintf(buf, "Success Rate:           %.2f%%\n\n", rate)

	if len(unmatchedSet) > 0 {
		unmatched := make([]string, 0, len(unmatchedSet))
		for name := range unmatchedSet {
			unmatched = append(unmatched, name)
		}
		sort.Strings(unmatched)

		fmt.Fprintf(buf, "Products Not Enriched:\n")
		for _, name := range unmatched {
			fmt.Fprintf(buf, "- %s\n", name)
		}
	}
}

func writeSectionTitle(buf *bytes.Buffer, title string) {
	fmt.Fprintf(buf, "%s\n%s\n", title, strings.Repeat("-", sectionWidth))
}

// =============================================================================
// FORMATTING
// =============================================================================

// money formats an amount with the currency symbol, comma grouping and the
// given number of decimal places.
func money(currency string, amount float64, decimals int) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	formatted := groupThousands(fmt.Sprintf("%.*f", decimals, amount))
	if negative {
		return "-" + currency + formatted
	}
	return currency + formatted
}

// groupThousands inserts comma separators into the integer part of an
// already-formatted number.
func groupThousands(s string) string {
	intPart := s
	var fracPart string
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, fracPart = s[:dot], s[dot:]
	}

	if len(intPart) <= 3 {
		return intPart + fracPart
	}

	var parts []string
	for len(intPart) > 3 {
		parts = append([]string{intPart[len(intPart)-3:]}, parts...)
		intPart = intPart[:len(intPart)-3]
	}
	parts = append([]string{intPart}, parts...)

	return strings.Join(parts, ",") + fracPart
}
