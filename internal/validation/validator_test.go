package validation

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/saak2000/sales-analytics-system/internal/types"
)

func tx(id, date, productID, name string, qty int, price float64, customerID, region string) types.Transaction {
	return types.Transaction{
		TransactionID: id,
		Date:          date,
		ProductID:     productID,
		ProductName:   name,
		Quantity:      qty,
		UnitPrice:     price,
		CustomerID:    customerID,
		Region:        region,
	}
}

func f64(v float64) *float64 { return &v }

func sampleRecords() []types.Transaction {
	return []types.Transaction{
		tx("T001", "2024-01-05", "P101", "Widget", 10, 25.5, "C001", "North"),  // 255.0
		tx("T002", "2024-01-05", "P102", "Gadget", 2, 50, "C002", "South"),     // 100.0
		tx("T003", "2024-01-06", "P101", "Widget", 4, 25.5, "C001", "North"),   // 102.0
		tx("T004", "2024-01-07", "P103", "Gizmo", 1, 999.99, "C003", "East"),   // 999.99
	}
}

func TestValidateAndFilterDerivesAmount(t *testing.T) {
	got, summary, err := ValidateAndFilter(sampleRecords(), Filters{})
	if err != nil {
		t.Fatalf("ValidateAndFilter: %v", err)
	}
	if summary.Invalid != 0 {
		t.Fatalf("Invalid = %d, want 0", summary.Invalid)
	}
	if got[0].Amount != 255.0 {
		t.Errorf("Amount = %v, want 255.0", got[0].Amount)
	}
	if summary.FinalCount != 4 || len(got) != 4 {
		t.Errorf("FinalCount = %d, len = %d, want 4", summary.FinalCount, len(got))
	}
}

func TestValidateAndFilterInvalidRecords(t *testing.T) {
	tests := []struct {
		name string
		tx   types.Transaction
	}{
		{"zero quantity", tx("T001", "2024-01-05", "P101", "Widget", 0, 25.5, "C001", "North")},
		{"negative quantity", tx("T001", "2024-01-05", "P101", "Widget", -3, 25.5, "C001", "North")},
		{"zero price", tx("T001", "2024-01-05", "P101", "Widget", 10, 0, "C001", "North")},
		{"negative price", tx("T001", "2024-01-05", "P101", "Widget", 10, -1, "C001", "North")},
		{"bad transaction prefix", tx("X001", "2024-01-05", "P101", "Widget", 10, 25.5, "C001", "North")},
		{"bad product prefix", tx("T001", "2024-01-05", "Q101", "Widget", 10, 25.5, "C001", "North")},
		{"bad customer prefix", tx("T001", "2024-01-05", "P101", "Widget", 10, 25.5, "X001", "North")},
		{"empty region", tx("T001", "2024-01-05", "P101", "Widget", 10, 25.5, "C001", "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, summary, err := ValidateAndFilter([]types.Transaction{tt.tx}, Filters{})
			if err != nil {
				t.Fatalf("ValidateAndFilter: %v", err)
			}
			if summary.Invalid != 1 {
				t.Errorf("Invalid = %d, want 1", summary.Invalid)
			}
			if len(got) != 0 {
				t.Errorf("got %d records, want 0", len(got))
			}
			if summary.AmountRange != nil {
				t.Error("AmountRange should be nil with no valid records")
			}
		})
	}
}

func TestValidateAndFilterSummary(t *testing.T) {
	records := append(sampleRecords(),
		tx("T005", "2024-01-08", "P104", "Broken", 0, 10, "C004", "West"))

	_, summary, err := ValidateAndFilter(records, Filters{})
	if err != nil {
		t.Fatalf("ValidateAndFilter: %v", err)
	}

	if summary.TotalInput != 5 {
		t.Errorf("TotalInput = %d, want 5", summary.TotalInput)
	}
	if summary.Invalid != 1 {
		t.Errorf("Invalid = %d, want 1", summary.Invalid)
	}
	wantRegions := []string{"East", "North", "South"}
	if !reflect.DeepEqual(summary.Regions, wantRegions) {
		t.Errorf("Regions = %v, want %v", summary.Regions, wantRegions)
	}
	if summary.AmountRange == nil {
		t.Fatal("AmountRange is nil")
	}
	if summary.AmountRange.Min != 100.0 || math.Abs(summary.AmountRange.Max-999.99) > 1e-9 {
		t.Errorf("AmountRange = %+v, want {100 999.99}", *summary.AmountRange)
	}
	if summary.FinalCount > summary.TotalInput-summary.Invalid {
		t.Errorf("FinalCount %d exceeds valid count %d",
			summary.FinalCount, summary.TotalInput-summary.Invalid)
	}
}

func TestValidateAndFilterRegionFilter(t *testing.T) {
	got, summary, err := ValidateAndFilter(sampleRecords(), Filters{Region: "North"})
	if err != nil {
		t.Fatalf("ValidateAndFilter: %v", err)
	}
	if summary.FilteredByRegion != 2 {
		t.Errorf("FilteredByRegion = %d, want 2", summary.FilteredByRegion)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	// Order is preserved.
	if got[0].TransactionID != "T001" || got[1].TransactionID != "T003" {
		t.Errorf("order = [%s, %s], want [T001, T003]", got[0].TransactionID, got[1].TransactionID)
	}
	for _, r := range got {
		if r.Region != "North" {
			t.Errorf("record %s has region %q", r.TransactionID, r.Region)
		}
	}
}

func TestValidateAndFilterRegionFilterIdempotent(t *testing.T) {
	once, _, err := ValidateAndFilter(sampleRecords(), Filters{Region: "North"})
	if err != nil {
		t.Fatalf("first pass: %v", err)
	}
	twice, _, err := ValidateAndFilter(once, Filters{Region: "North"})
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second pass changed the result:\n once = %+v\ntwice = %+v", once, twice)
	}
}

func TestValidateAndFilterUnknownRegion(t *testing.T) {
	_, _, err := ValidateAndFilter(sampleRecords(), Filters{Region: "Mars"})
	if !errors.Is(err, ErrUnknownRegion) {
		t.Fatalf("error = %v, want ErrUnknownRegion", err)
	}
}

func TestValidateAndFilterAmountBounds(t *testing.T) {
	tests := []struct {
		name    string
		filters Filters
		wantIDs []string
		wantCut int
	}{
		{
			name:    "min amount keeps boundary",
			filters: Filters{MinAmount: f64(102.0)},
			wantIDs: []string{"T001", "T003", "T004"},
			wantCut: 1,
		},
		{
			name:    "max amount keeps boundary",
			filters: Filters{MaxAmount: f64(102.0)},
			wantIDs: []string{"T002", "T003"},
			wantCut: 2,
		},
		{
			name:    "min and max combine",
			filters: Filters{MinAmount: f64(101.0), MaxAmount: f64(300.0)},
			wantIDs: []string{"T001", "T003"},
			wantCut: 2,
		},
		{
			name:    "region then amounts",
			filters: Filters{Region: "North", MinAmount: f64(200.0)},
			wantIDs: []string{"T001"},
			wantCut: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, summary, err := ValidateAndFilter(sampleRecords(), tt.filters)
			if err != nil {
				t.Fatalf("ValidateAndFilter: %v", err)
			}
			ids := make([]string, len(got))
			for i, r := range got {
				ids[i] = r.TransactionID
			}
			if !reflect.DeepEqual(ids, tt.wantIDs) {
				t.Errorf("kept = %v, want %v", ids, tt.wantIDs)
			}
			if summary.FilteredByAmount != tt.wantCut {
				t.Errorf("FilteredByAmount = %d, want %d", summary.FilteredByAmount, tt.wantCut)
			}
		})
	}
}

func TestValidateAndFilterEmptyInput(t *testing.T) {
	got, summary, err := ValidateAndFilter(nil, Filters{})
	if err != nil {
		t.Fatalf("ValidateAndFilter: %v", err)
	}
	if len(got) != 0 || summary.FinalCount != 0 {
		t.Errorf("expected empty result, got %d records", len(got))
	}
	if summary.AmountRange != nil {
		t.Error("AmountRange should be nil for empty input")
	}
	if len(summary.Regions) != 0 {
		t.Errorf("Regions = %v, want empty", summary.Regions)
	}
}
