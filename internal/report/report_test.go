package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/saak2000/sales-analytics-system/internal/analytics"
	"github.com/saak2000/sales-analytics-system/internal/types"
)

func sampleData() Data {
	category := "beauty"
	brand := "Essence"
	rating := 4.94

	return Data{
		GeneratedAt:   time.Date(2024, 1, 10, 12, 30, 0, 0, time.UTC),
		Currency:      "₹",
		RecordCount:   3,
		TotalRevenue:  1255000.5,
		AvgOrderValue: 418333.5,
		DateRange:     "2024-01-05 to 2024-01-07",
		TopN:          5,
		Regions: []analytics.RegionStats{
			{Region: "North", TotalSales: 755000.5, TransactionCount: 2, Percentage: 60.16},
			{Region: "South", TotalSales: 500000, TransactionCount: 1, Percentage: 39.84},
		},
		TopProducts: []analytics.ProductStats{
			{Product: "Widget", Quantity: 14, Revenue: 755000.5},
			{Product: "Gadget", Quantity: 10, Revenue: 500000},
		},
		Customers: []analytics.CustomerStats{
			{CustomerID: "C001", TotalSpent: 755000.5, OrderCount: 2, AvgOrderValue: 377500.25, Products: []string{"Widget"}},
			{CustomerID: "C002", TotalSpent: 500000, OrderCount: 1, AvgOrderValue: 500000, Products: []string{"Gadget"}},
		},
		DailyTrend: []analytics.DailyStats{
			{Date: "2024-01-05", Revenue: 755000.25, TransactionCount: 2, UniqueCustomers: 1},
			{Date: "2024-01-07", Revenue: 500000, TransactionCount: 1, UniqueCustomers: 1},
		},
		PeakDay:       &analytics.PeakDay{Date: "2024-01-05", Revenue: 755000.25, TransactionCount: 2},
		LowPerformers: []analytics.ProductStats{{Product: "Gizmo", Quantity: 1, Revenue: 45}},
		Enriched: []types.EnrichedTransaction{
			{
				Transaction: types.Transaction{TransactionID: "T001", ProductName: "Widget"},
				APICategory: &category, APIBrand: &brand, APIRating: &rating, APIMatch: true,
			},
			{Transaction: types.Transaction{TransactionID: "T002", ProductName: "Gadget"}},
			{Transaction: types.Transaction{TransactionID: "T003", ProductName: "Gizmo"}},
		},
	}
}

func TestGenerateSections(t *testing.T) {
	out := string(Generate(sampleData()))

	sections := []string{
		"SALES ANALYTICS REPORT",
		"OVERALL SUMMARY",
		"REGION-WISE PERFORMANCE",
		"TOP 5 PRODUCTS",
		"TOP 5 CUSTOMERS",
		"DAILY SALES TREND",
		"PRODUCT PERFORMANCE ANALYSIS",
		"API ENRICHMENT SUMMARY",
	}
	pos := 0
	for _, s := range sections {
		i := strings.Index(out[pos:], s)
		if i < 0 {
			t.Fatalf("section %q missing or out of order:\n%s", s, out)
		}
		pos += i
	}
}

func TestGenerateContent(t *testing.T) {
	out := string(Generate(sampleData()))

	wantLines := []string{
		"Generated: 2024-01-10 12:30:00",
		"Records Processed: 3",
		"Total Revenue:        ₹1,255,000.50",
		"Average Order Value:  ₹418,333.50",
		"Date Range:           2024-01-05 to 2024-01-07",
		"Best Selling Day: 2024-01-05 (₹755,000, 2 transactions)",
		"- Gizmo: 1 units, ₹45",
		"Successfully Enriched:  1",
		"Success Rate:           33.33%",
	}
	for _, want := range wantLines {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}

	// Unmatched product names are listed sorted.
	gadget := strings.Index(out, "- Gadget")
	gizmo := strings.LastIndex(out, "- Gizmo")
	if gadget < 0 || gizmo < 0 || gadget > gizmo {
		t.Errorf("unmatched products not listed in sorted order:\n%s", out)
	}
}

func TestGenerateTopNTitleUsesConfiguredN(t *testing.T) {
	d := sampleData()
	d.TopN = 3

	out := string(Generate(d))
	if !strings.Contains(out, "TOP 3 PRODUCTS") {
		t.Errorf("expected TOP 3 PRODUCTS title:\n%s", out)
	}
}

func TestGenerateNoEnrichment(t *testing.T) {
	d := sampleData()
	d.Enriched = nil

	out := string(Generate(d))
	if !strings.Contains(out, "No enrichment data available.") {
		t.Errorf("missing empty-enrichment line:\n%s", out)
	}
}

func TestGenerateNoPeakDay(t *testing.T) {
	d := sampleData()
	d.PeakDay = nil
	d.LowPerformers = nil

	out := string(Generate(d))
	if !strings.Contains(out, "Best Selling Day: no sales data available") {
		t.Errorf("missing no-peak line:\n%s", out)
	}
	if !strings.Contains(out, "No low performing products identified.") {
		t.Errorf("missing empty low-performer line:\n%s", out)
	}
}

func TestGenerateCustomersCappedAtFive(t *testing.T) {
	d := sampleData()
	d.Customers = nil
	for i := 0; i < 8; i++ {
		d.Customers = append(d.Customers, analytics.CustomerStats{
			CustomerID: "C00" + string(rune('1'+i)),
			TotalSpent: float64(800 - i),
			OrderCount: 1,
		})
	}

	out := string(Generate(d))
	if strings.Contains(out, "C006") {
		t.Errorf("customer table lists more than five rows:\n%s", out)
	}
	if !strings.Contains(out, "C005") {
		t.Errorf("fifth customer missing:\n%s", out)
	}
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	if err := Write(sampleData(), path); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	if !strings.Contains(string(data), "SALES ANALYTICS REPORT") {
		t.Error("written report is missing the header")
	}
}

func TestMoney(t *testing.T) {
	tests := []struct {
		amount   float64
		decimals int
		want     string
	}{
		{0, 2, "₹0.00"},
		{45, 0, "₹45"},
		{999, 0, "₹999"},
		{1000, 0, "₹1,000"},
		{255.0, 2, "₹255.00"},
		{1234567.891, 2, "₹1,234,567.89"},
		{-1500, 0, "-₹1,500"},
	}

	for _, tt := range tests {
		if got := money("₹", tt.amount, tt.decimals); got != tt.want {
			t.Errorf("money(%v, %d) = %q, want %q", tt.amount, tt.decimals, got, tt.want)
		}
	}
}
