package report

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestWriteExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	if err := WriteExcel(sampleData(), path); err != nil {
		t.Fatalf("WriteExcel: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("opening workbook: %v", err)
	}
	defer f.Close()

	if got := f.GetSheetList(); !reflect.DeepEqual(got, excelSheets) {
		t.Errorf("sheets = %v, want %v", got, excelSheets)
	}

	got, err := f.GetCellValue("Regions", "A2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if got != "North" {
		t.Errorf("Regions!A2 = %q, want North", got)
	}

	matched, err := f.GetCellValue("Enrichment", "D2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if matched != "beauty" {
		t.Errorf("Enrichment!D2 = %q, want beauty", matched)
	}
}

func TestWriteExcelEmptyData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	if err := WriteExcel(Data{Currency: "₹"}, path); err != nil {
		t.Fatalf("WriteExcel with empty data: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("opening workbook: %v", err)
	}
	defer f.Close()

	if got := len(f.GetSheetList()); got != len(excelSheets) {
		t.Errorf("got %d sheets, want %d", got, len(excelSheets))
	}
}
