package report

import (
	"io"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Sheet1"

// WriteWorkbook renders a header row plus data rows as a spreadsheet and
// writes the xlsx bytes to w.
func WriteWorkbook(w io.Writer, header []string, rows [][]any) error {
	f := excelize.NewFile()
	defer f.Close()

	for col, title := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(exportSheet, cell, title); err != nil {
			return err
		}
	}

	for rowIdx, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(exportSheet, cell, value); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}

func attendanceExportRows(rows []AttendanceRow, names map[int64]string) ([]string, [][]any) {
	header := []string{"Date", "Employee", "Status"}
	data := make([][]any, len(rows))
	for i, r := range rows {
		status := "Absent"
		if r.Present {
			status = "Present"
		}
		data[i] = []any{r.Date, displayName(names, r.EmployeeID), status}
	}
	return header, data
}

func expenseExportRows(rows []ExpenseRow, names map[int64]string) ([]string, [][]any) {
	header := []string{"Date", "Employee", "Category", "Description", "Amount"}
	data := make([][]any, len(rows))
	for i, r := range rows {
		data[i] = []any{r.Date, displayName(names, r.EmployeeID), r.Category, r.Description, r.Amount}
	}
	return header, data
}

func displayName(names map[int64]string, id int64) string {
	if name, ok := names[id]; ok {
		return name
	}
	return "Unknown"
}
