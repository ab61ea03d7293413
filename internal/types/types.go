// =============================================================================
// Sales Analytics System - Shared Types
// =============================================================================
//
// This package contains the record types shared across the pipeline stages
// (feed, validation, analytics, enrich, report) to avoid import cycles.
//
// =============================================================================

package types

// Transaction represents a single parsed sales transaction.
//
// Fields map positionally to the pipe-delimited feed:
// TransactionID|Date|ProductID|ProductName|Quantity|UnitPrice|CustomerID|Region
type Transaction struct {
	// TransactionID is the feed identifier; valid records start with "T".
	TransactionID string

	// Date is kept in its YYYY-MM-DD string form and treated as an opaque
	// sortable key. No calendar validation is performed.
	Date string

	// ProductID starts with "P" for valid records and embeds the numeric id
	// used for catalog lookups (P101 -> 101).
	ProductID string

	// ProductName has commas stripped during parsing.
	ProductName string

	Quantity  int
	UnitPrice float64

	// CustomerID starts with "C" for valid records.
	CustomerID string

	// Region is a free-form non-empty string for valid records.
	Region string

	// Amount is Quantity * UnitPrice. It is derived by the validator and is
	// zero on records that have not passed validation.
	Amount float64
}

// EnrichedTransaction is a Transaction augmented with product catalog
// attributes. Enrichment never mutates the source record; it produces an
// augmented copy. Attribute pointers are nil when APIMatch is false.
type EnrichedTransaction struct {
	Transaction

	APICategory *string
	APIBrand    *string
	APIRating   *float64
	APIMatch    bool
}
