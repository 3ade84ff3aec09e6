package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// ToExcel renders tabular data into a styled xlsx workbook and returns the
// bytes plus the final filename. Columns decide both header order and which
// keys of each record are written.
func ToExcel(data []map[string]any, columns []string, sheetName, filename string) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	if len(columns) == 0 && len(data) > 0 {
		for k := range data[0] {
			columns = append(columns, k)
		}
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, col)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, record := range data {
		for colIdx, col := range columns {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			switch v := record[col].(type) {
			case time.Time:
				f.SetCellValue(sheetName, cell, v.Format("2006-01-02 15:04:05"))
			case *time.Time:
				if v != nil {
					f.SetCellValue(sheetName, cell, v.Format("2006-01-02 15:04:05"))
				}
			case map[string]any:
				f.SetCellValue(sheetName, cell, fmt.Sprintf("%v", v))
			default:
				f.SetCellValue(sheetName, cell, v)
			}
		}
	}

	for i := range columns {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, col, col, 15)
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	if !strings.HasSuffix(filename, ".xlsx") {
		filename += ".xlsx"
	}
	return buffer.Bytes(), filename, nil
}
