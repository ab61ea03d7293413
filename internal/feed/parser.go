// =============================================================================
// Sales Analytics System - Record Parser
// =============================================================================
//
// This module turns raw feed lines into typed transaction records. Parsing is
// purely structural: a line must split into exactly 8 pipe-delimited fields
// and its numeric fields must parse after comma grouping separators are
// stripped. Lines that fail are silently dropped; they only become visible as
// a smaller parsed count. Semantic checks (prefixes, positivity) belong to
// the validation package.
//
// =============================================================================

package feed

import (
	"strconv"
	"strings"

	"github.com/saak2000/sales-analytics-system/internal/types"
)

// FieldSeparator is the fixed field delimiter of the sales feed.
const FieldSeparator = "|"

// fieldCount is the required number of fields per line.
const fieldCount = 8

// ParseLine parses one raw feed line into a transaction record.
// The second return value is false when the line is rejected.
func ParseLine(line string) (types.Transaction, bool) {
	parts := strings.Split(line, FieldSeparator)
	if len(parts) != fieldCount {
		return types.Transaction{}, false
	}

	// Commas are stripped from the product name; in numeric fields they are
	// grouping separators and are stripped before parsing.
	quantity, err := strconv.Atoi(strings.ReplaceAll(parts[4], ",", ""))
	if err != nil {
		return types.Transaction{}, false
	}
	unitPrice, err := strconv.ParseFloat(strings.ReplaceAll(parts[5], ",", ""), 64)
	if err != nil {
		return types.Transaction{}, false
	}

	return types.Transaction{
		TransactionID: parts[0],
		Date:          parts[1],
		ProductID:     parts[2],
		ProductName:   strings.ReplaceAll(parts[3], ",", ""),
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		CustomerID:    parts[6],
		Region:        parts[7],
	}, true
}

// ParseAll parses a sequence of raw lines, dropping rejected lines. The
// result preserves input order and its length is at most len(lines).
func ParseAll(lines []string) []types.Transaction {
	transactions := make([]types.Transaction, 0, len(lines))
	for _, line := range lines {
		if tx, ok := ParseLine(line); ok {
			transactions = append(transactions, tx)
		}
	}
	return transactions
}
