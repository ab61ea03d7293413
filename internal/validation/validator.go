// =============================================================================
// Sales Analytics System - Validation & Filtering
// =============================================================================
//
// This module classifies parsed records as valid or invalid, derives the
// monetary amount for valid records, and applies the optional region and
// amount filters. Invalid records are counted, never raised: data-quality
// problems surface through the Summary, not through errors.
//
// FILTER ORDER (fixed, order-preserving):
//   1. region (exact match)
//   2. minimum amount (Amount >= min)
//   3. maximum amount (Amount <= max)
// Region removals are counted separately; both amount removals accumulate
// into a single FilteredByAmount count.
//
// =============================================================================

package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/saak2000/sales-analytics-system/internal/types"
)

// Required identifier prefixes.
const (
	TransactionIDPrefix = "T"
	ProductIDPrefix     = "P"
	CustomerIDPrefix    = "C"
)

// ErrUnknownRegion is returned when a region filter names a region that does
// not appear in any valid record. The core is strict here on purpose: a typo
// in a filter should not masquerade as an empty result.
var ErrUnknownRegion = errors.New("unknown region")

// Filters holds the optional record filters. An empty Region means no region
// filter; nil amount bounds mean no amount filter.
type Filters struct {
	Region    string
	MinAmount *float64
	MaxAmount *float64
}

// AmountRange is the observed [Min, Max] amount across valid records,
// measured before any filtering.
type AmountRange struct {
	Min float64
	Max float64
}

// Summary describes one validation/filter pass.
//
// Note that Invalid + FinalCount + FilteredByRegion + FilteredByAmount does
// not generally equal TotalInput: the filters compose on the already-valid
// set, so only FinalCount <= TotalInput - Invalid holds.
type Summary struct {
	TotalInput       int
	Invalid          int
	FilteredByRegion int
	FilteredByAmount int
	FinalCount       int

	// Regions is the sorted set of distinct regions among valid records,
	// discovered before filtering. Used to drive filter-option display.
	Regions []string

	// AmountRange is nil when there are no valid records.
	AmountRange *AmountRange
}

// ValidateAndFilter validates parsed records and applies the given filters.
//
// A record is valid when its quantity and unit price are positive, its three
// identifiers carry their required prefixes, and its region is non-empty.
// Valid records receive Amount = Quantity * UnitPrice. The returned slice
// preserves the relative order of the input.
func ValidateAndFilter(records []types.Transaction, f Filters) ([]types.Transaction, Summary, error) {
	summary := Summary{TotalInput: len(records)}

	valid := make([]types.Transaction, 0, len(records))
	regionSet := make(map[string]bool)

	for _, tx := range records {
		if !isValid(tx) {
			summary.Invalid++
			continue
		}

		tx.Amount = float64(tx.Quantity) * tx.UnitPrice

		if !regionSet[tx.Region] {
			regionSet[tx.Region] = true
			summary.Regions = append(summary.Regions, tx.Region)
		}
		if summary.AmountRange == nil {
			summary.AmountRange = &AmountRange{Min: tx.Amount, Max: tx.Amount}
		} else {
			if tx.Amount < summary.AmountRange.Min {
				summary.AmountRange.Min = tx.Amount
			}
			if tx.Amount > summary.AmountRange.Max {
				summary.AmountRange.Max = tx.Amount
			}
		}

		valid = append(valid, tx)
	}

	sort.Strings(summary.Regions)

	if f.Region != "" && !regionSet[f.Region] {
		return nil, summary, fmt.Errorf("region %q: %w (available: %s)",
			f.Region, ErrUnknownRegion, strings.Join(summary.Regions, ", "))
	}

	filtered := valid

	if f.Region != "" {
		before := len(filtered)
		filtered = keep(filtered, func(tx types.Transaction) bool {
			return tx.Region == f.Region
		})
		summary.FilteredByRegion = before - len(filtered)
	}

	if f.MinAmount != nil {
		before := len(filtered)
		filtered = keep(filtered, func(tx types.Transaction) bool {
			return tx.Amount >= *f.MinAmount
		})
		summary.FilteredByAmount += before - len(filtered)
	}

	if f.MaxAmount != nil {
		before := len(filtered)
		filtered = keep(filtered, func(tx types.Transaction) bool {
			return tx.Amount <= *f.MaxAmount
		})
		summary.FilteredByAmount += before - len(filtered)
	}

	summary.FinalCount = len(filtered)
	return filtered, summary, nil
}

// isValid applies the semantic field rules to a parsed record.
func isValid(tx types.Transaction) bool {
	if tx.Quantity <= 0 || tx.UnitPrice <= 0 {
		return false
	}
	if !strings.HasPrefix(tx.TransactionID, TransactionIDPrefix) {
		return false
	}
	if !strings.HasPrefix(tx.ProductID, ProductIDPrefix) {
		return false
	}
	if !strings.HasPrefix(tx.CustomerID, CustomerIDPrefix) {
		return false
	}
	if tx.Region == "" {
		return false
	}
	return true
}

// keep returns the records satisfying pred, preserving order. It always
// allocates a fresh slice so no filter step aliases another's output.
func keep(records []types.Transaction, pred func(types.Transaction) bool) []types.Transaction {
	out := make([]types.Transaction, 0, len(records))
	for _, tx := range records {
		if pred(tx) {
			out = append(out, tx)
		}
	}
	return out
}
