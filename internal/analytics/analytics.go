// =============================================================================
// Sales Analytics System - Aggregate Views
// =============================================================================
//
// This module computes the analytical views over a valid, filtered record
// set. Every function is pure: it builds fresh accumulator maps per call and
// returns a new ordered slice, so there is no cross-call state and no caching.
// Empty input always yields empty/zeroed structures, never a panic — callers
// detect "no data" from zero-length results (peak day carries an explicit ok
// flag because selecting a maximum from nothing is otherwise undefined).
//
// =============================================================================

package analytics

import (
	"math"
	"sort"

	"github.com/saak2000/sales-analytics-system/internal/types"
)

// Defaults for the product views.
const (
	DefaultTopN         = 5
	DefaultLowThreshold = 10
)

// RegionStats is one row of the region breakdown.
type RegionStats struct {
	Region           string
	TotalSales       float64
	TransactionCount int

	// Percentage is the region's share of total revenue, rounded to two
	// decimals. Zero when total revenue is zero.
	Percentage float64
}

// ProductStats is one row of the top-selling / low-performing product views.
type ProductStats struct {
	Product  string
	Quantity int
	Revenue  float64
}

// CustomerStats is one row of the customer analysis.
type CustomerStats struct {
	CustomerID    string
	TotalSpent    float64
	OrderCount    int
	AvgOrderValue float64

	// Products is the distinct set of product names purchased, sorted for
	// deterministic output. Set membership has no inherent order; sorting is
	// imposed here because the report needs a stable rendering.
	Products []string
}

// DailyStats is one row of the daily sales trend.
type DailyStats struct {
	Date             string
	Revenue          float64
	TransactionCount int
	UniqueCustomers  int
}

// PeakDay is the single date with maximum revenue in the daily trend.
type PeakDay struct {
	Date             string
	Revenue          float64
	TransactionCount int
}

// TotalRevenue sums Amount over all records. Zero for empty input.
func TotalRevenue(records []types.Transaction) float64 {
	var total float64
	for _, tx := range records {
		total += tx.Amount
	}
	return total
}

// RegionBreakdown groups records by region, ordered by total sales
// descending (stable for ties).
func RegionBreakdown(records []types.Transaction) []RegionStats {
	totalRevenue := TotalRevenue(records)

	byRegion := make(map[string]*RegionStats)
	var order []string

	for _, tx := range records {
		stats, ok := byRegion[tx.Region]
		if !ok {
			stats = &RegionStats{Region: tx.Region}
			byRegion[tx.Region] = stats
			order = append(order, tx.Region)
		}
		stats.TotalSales += tx.Amount
		stats.TransactionCount++
	}

	result := make([]RegionStats, 0, len(order))
	for _, region := range order {
		stats := *byRegion[region]
		if totalRevenue > 0 {
			stats.Percentage = roundTo2(stats.TotalSales / totalRevenue * 100)
		}
		result = append(result, stats)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalSales > result[j].TotalSales
	})
	return result
}

// TopProducts returns the first n products by total quantity sold,
// descending. Ties keep first-seen order.
func TopProducts(records []types.Transaction, n int) []ProductStats {
	products := groupByProduct(records)

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Quantity > products[j].Quantity
	})

	if n > 0 && len(products) > n {
		products = products[:n]
	}
	return products
}

// LowPerformingProducts returns products whose total quantity sold is
// strictly below threshold, ascending by quantity.
func LowPerformingProducts(records []types.Transaction, threshold int) []ProductStats {
	products := groupByProduct(records)

	low := products[:0]
	for _, p := range products {
		if p.Quantity < threshold {
			low = append(low, p)
		}
	}

	sort.SliceStable(low, func(i, j int) bool {
		return low[i].Quantity < low[j].Quantity
	})
	return low
}

// CustomerAnalysis groups records by customer, ordered by total spent
// descending (stable for ties).
func CustomerAnalysis(records []types.Transaction) []CustomerStats {
	type acc struct {
		stats    CustomerStats
		products map[string]bool
	}

	byCustomer := make(map[string]*acc)
	var order []string

	for _, tx := range records {
		a, ok := byCustomer[tx.CustomerID]
		if !ok {
			a = &acc{
				stats:    CustomerStats{CustomerID: tx.CustomerID},
				products: make(map[string]bool),
			}
			byCustomer[tx.CustomerID] = a
			order = append(order, tx.CustomerID)
		}
		a.stats.TotalSpent += tx.Amount
		a.stats.OrderCount++
		a.products[tx.ProductName] = true
	}

	result := make([]CustomerStats, 0, len(order))
	for _, customer := range order {
		a := byCustomer[customer]
		a.stats.AvgOrderValue = roundTo2(a.stats.TotalSpent / float64(a.stats.OrderCount))
		a.stats.Products = sortedKeys(a.products)
		result = append(result, a.stats)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalSpent > result[j].TotalSpent
	})
	return result
}

// DailyTrend groups records by date string, ascending in lexical order
// (which matches chronological order for YYYY-MM-DD keys).
func DailyTrend(records []types.Transaction) []DailyStats {
	type acc struct {
		stats     DailyStats
		customers map[string]bool
	}

	byDate := make(map[string]*acc)

	for _, tx := range records {
		a, ok := byDate[tx.Date]
		if !ok {
			a = &acc{
				stats:     DailyStats{Date: tx.Date},
				customers: make(map[string]bool),
			}
			byDate[tx.Date] = a
		}
		a.stats.Revenue += tx.Amount
		a.stats.TransactionCount++
		a.customers[tx.CustomerID] = true
	}

	result := make([]DailyStats, 0, len(byDate))
	for _, a := range byDate {
		a.stats.UniqueCustomers = len(a.customers)
		result = append(result, a.stats)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Date < result[j].Date
	})
	return result
}

// PeakSalesDay returns the trend entry with maximum revenue. Revenue ties
// break toward the earliest date. ok is false for empty input.
func PeakSalesDay(records []types.Transaction) (peak PeakDay, ok bool) {
	trend := DailyTrend(records)
	if len(trend) == 0 {
		return PeakDay{}, false
	}

	// trend is date-ascending, so the first maximal entry is the earliest.
	best := trend[0]
	for _, day := range trend[1:] {
		if day.Revenue > best.Revenue {
			best = day
		}
	}
	return PeakDay{
		Date:             best.Date,
		Revenue:          best.Revenue,
		TransactionCount: best.TransactionCount,
	}, true
}

// groupByProduct accumulates quantity and revenue per product name,
// preserving first-seen order.
func groupByProduct(records []types.Transaction) []ProductStats {
	byProduct := make(map[string]*ProductStats)
	var order []string

	for _, tx := range records {
		stats, ok := byProduct[tx.ProductName]
		if !ok {
			stats = &ProductStats{Product: tx.ProductName}
			byProduct[tx.ProductName] = stats
			order = append(order, tx.ProductName)
		}
		stats.Quantity += tx.Quantity
		stats.Revenue += tx.Amount
	}

	result := make([]ProductStats, 0, len(order))
	for _, product := range order {
		result = append(result, *byProduct[product])
	}
	return result
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
