package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the XLSX export, in workbook order.
var excelSheets = []string{"Summary", "Regions", "Products", "Customers", "Daily Trend", "Enrichment"}

// WriteExcel exports the report data as an XLSX workbook, one sheet per
// report section. The workbook mirrors the text report's content, not its
// fixed-width layout.
func WriteExcel(d Data, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, name := range excelSheets {
		if i == 0 {
			f.SetSheetName("Sheet1", name)
			continue
		}
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	writeSummarySheet(f, d)
	writeRegionSheet(f, d, headerStyle)
	writeProductSheet(f, d, headerStyle)
	writeCustomerSheet(f, d, headerStyle)
	writeTrendSheet(f, d, headerStyle)
	writeEnrichmentSheet(f, d, headerStyle)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write excel report: %w", err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, d Data) {
	rows := [][]interface{}{
		{"Generated", d.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"Records Processed", d.RecordCount},
		{"Total Revenue", d.TotalRevenue},
		{"Average Order Value", d.AvgOrderValue},
		{"Date Range", d.DateRange},
	}
	if d.PeakDay != nil {
		rows = append(rows, []interface{}{"Best Selling Day", d.PeakDay.Date})
	}
	writeRows(f, "Summary", nil, rows, 0)
	f.SetColWidth("Summary", "A", "A", 22)
}

func writeRegionSheet(f *excelize.File, d Data, headerStyle int) {
	header := []interface{}{"Region", "Total Sales", "% of Total", "Transactions"}
	rows := make([][]interface{}, 0, len(d.Regions))
	for _, r := range d.Regions {
		rows = append(rows, []interface{}{r.Region, r.TotalSales, r.Percentage, r.TransactionCount})
	}
	writeRows(f, "Regions", header, rows, headerStyle)
}

func writeProductSheet(f *excelize.File, d Data, headerStyle int) {
	header := []interface{}{"Rank", "Product", "Quantity", "Revenue"}
	rows := make([][]interface{}, 0, len(d.TopProducts)+len(d.LowPerformers))
	for i, p := range d.TopProducts {
		rows = append(rows, []interface{}{i + 1, p.Product, p.Quantity, p.Revenue})
	}
	writeRows(f, "Products", header, rows, headerStyle)

	// Low performers follow the ranking after a blank row.
	start := len(rows) + 3
	f.SetCellValue("Products", fmt.Sprintf("A%d", start), "Low Performing Products")
	f.SetCellStyle("Products", fmt.Sprintf("A%d", start), fmt.Sprintf("A%d", start), headerStyle)
	for i, p := range d.LowPerformers {
		row := start + 1 + i
		f.SetCellValue("Products", fmt.Sprintf("A%d", row), p.Product)
		f.SetCellValue("Products", fmt.Sprintf("B%d", row), p.Quantity)
		f.SetCellValue("Products", fmt.Sprintf("C%d", row), p.Revenue)
	}
	f.SetColWidth("Products", "B", "B", 28)
}

func writeCustomerSheet(f *excelize.File, d Data, headerStyle int) {
	header := []interface{}{"Customer", "Total Spent", "Orders", "Avg Order Value", "Distinct Products"}
	rows := make([][]interface{}, 0, len(d.Customers))
	for _, c := range d.Customers {
		rows = append(rows, []interface{}{c.CustomerID, c.TotalSpent, c.OrderCount, c.AvgOrderValue, len(c.Products)})
	}
	writeRows(f, "Customers", header, rows, headerStyle)
}

func writeTrendSheet(f *excelize.File, d Data, headerStyle int) {
	header := []interface{}{"Date", "Revenue", "Transactions", "Unique Customers"}
	rows := make([][]interface{}, 0, len(d.DailyTrend))
	for _, day := range d.DailyTrend {
		rows = append(rows, []interface{}{day.Date, day.Revenue, day.TransactionCount, day.UniqueCustomers})
	}
	writeRows(f, "Daily Trend", header, rows, headerStyle)
}

func writeEnrichmentSheet(f *excelize.File, d Data, headerStyle int) {
	header := []interface{}{"TransactionID", "ProductID", "Product", "Category", "Brand", "Rating", "Matched"}
	rows := make([][]interface{}, 0, len(d.Enriched))
	for _, e := range d.Enriched {
		row := []interface{}{e.TransactionID, e.ProductID, e.ProductName, "", "", "", e.APIMatch}
		if e.APIMatch {
			row[3] = *e.APICategory
			row[4] = *e.APIBrand
			row[5] = *e.APIRating
		}
		rows = append(rows, row)
	}
	writeRows(f, "Enrichment", header, rows, headerStyle)
}

// writeRows writes an optional styled header row followed by data rows,
// starting at A1.
func writeRows(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}, headerStyle int) {
	rowIndex := 1

	if header != nil {
		for col, value := range header {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowIndex)
			f.SetCellValue(sheet, cell, value)
			f.SetCellStyle(sheet, cell, cell, headerStyle)
		}
		rowIndex++
	}

	for _, row := range rows {
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowIndex)
			f.SetCellValue(sheet, cell, value)
		}
		rowIndex++
	}
}
