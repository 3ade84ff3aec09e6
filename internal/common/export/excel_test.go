package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func TestToExcel(t *testing.T) {
	clockIn := time.Date(2026, 8, 3, 9, 15, 0, 0, time.UTC)
	data := []map[string]any{
		{"Employee": "e1", "Date": "2026-08-03", "Clock In": clockIn, "Net Pay": 4200.50},
		{"Employee": "e2", "Date": "2026-08-03", "Clock In": nil, "Net Pay": 3100.0},
	}

	content, filename, err := ToExcel(data, []string{"Employee", "Date", "Clock In", "Net Pay"}, "Attendance", "attendance-2026-08")
	if err != nil {
		t.Fatalf("ToExcel: %v", err)
	}
	if filename != "attendance-2026-08.xlsx" {
		t.Errorf("filename = %q", filename)
	}

	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Attendance")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(rows))
	}
	if rows[0][0] != "Employee" || rows[0][3] != "Net Pay" {
		t.Errorf("header row = %v", rows[0])
	}
	if rows[1][0] != "e1" {
		t.Errorf("first data row = %v", rows[1])
	}
	if rows[1][2] != "2026-08-03 09:15:00" {
		t.Errorf("time cell = %q", rows[1][2])
	}
}

func TestToExcelAppendsExtension(t *testing.T) {
	_, filename, err := ToExcel(nil, []string{"A"}, "Sheet", "already.xlsx")
	if err != nil {
		t.Fatal(err)
	}
	if filename != "already.xlsx" {
		t.Errorf("filename = %q", filename)
	}
}
