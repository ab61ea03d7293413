package enrich

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/saak2000/sales-analytics-system/internal/types"
)

// Enrich augments each record with catalog attributes, keyed by the numeric
// id embedded in the product identifier (P101 -> 101). Records whose id does
// not parse or is absent from the mapping are marked unmatched with nil
// attributes. Input records are never mutated; the result is a fresh copy.
func Enrich(records []types.Transaction, mapping Mapping) []types.EnrichedTransaction {
	enriched := make([]types.EnrichedTransaction, 0, len(records))

	for _, tx := range records {
		e := types.EnrichedTransaction{Transaction: tx}

		if id, ok := lookupKey(tx.ProductID); ok {
			if info, found := mapping[id]; found {
				category, brand, rating := info.Category, info.Brand, info.Rating
				e.APICategory = &category
				e.APIBrand = &brand
				e.APIRating = &rating
				e.APIMatch = true
			}
		}

		enriched = append(enriched, e)
	}

	return enriched
}

// MatchedCount returns how many records carry catalog attributes.
func MatchedCount(enriched []types.EnrichedTransaction) int {
	var n int
	for _, e := range enriched {
		if e.APIMatch {
			n++
		}
	}
	return n
}

// lookupKey derives the catalog key from a product identifier by stripping
// its non-numeric prefix and parsing the remainder as an integer.
func lookupKey(productID string) (int, bool) {
	digits := strings.TrimLeftFunc(productID, func(r rune) bool {
		return !unicode.IsDigit(r)
	})
	if digits == "" {
		return 0, false
	}
	id, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return id, true
}
