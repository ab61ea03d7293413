package enrich

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/saak2000/sales-analytics-system/internal/types"
)

// enrichedHeader is the fixed 12-column header of the enriched data file.
var enrichedHeader = []string{
	"TransactionID", "Date", "ProductID", "ProductName",
	"Quantity", "UnitPrice", "CustomerID", "Region",
	"API_Category", "API_Brand", "API_Rating", "API_Match",
}

// WriteEnriched serializes the enriched records to a pipe-delimited file.
// Absent attributes serialize as empty strings. Callers treat a write
// failure as reported-but-non-fatal; it does not stop the pipeline.
func WriteEnriched(enriched []types.EnrichedTransaction, path string) error {
	var buf bytes.Buffer

	writeRow(&buf, enrichedHeader)
	for _, e := range enriched {
		writeRow(&buf, []string{
			e.TransactionID,
			e.Date,
			e.ProductID,
			e.ProductName,
			strconv.Itoa(e.Quantity),
			formatFloat(e.UnitPrice),
			e.CustomerID,
			e.Region,
			stringOrEmpty(e.APICategory),
			stringOrEmpty(e.APIBrand),
			floatOrEmpty(e.APIRating),
			formatBool(e.APIMatch),
		})
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write enriched data: %w", err)
	}
	return nil
}

func writeRow(buf *bytes.Buffer, fields []string) {
	for i, field := range fields {
		if i > 0 {
			buf.WriteByte('|')
		}
		buf.WriteString(field)
	}
	buf.WriteByte('\n')
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatBool keeps the True/False casing of the legacy enriched files.
func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func floatOrEmpty(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}
