package export

import (
	"fmt"
	"io"

	"github.com/frahmantamala/expense-tracker/internal/expense"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Expenses"

var xlsxHeader = []interface{}{"Date", "Category", "Amount", "Note"}

// WriteXLSX writes a single-sheet workbook with the CSV columns plus Note.
// Amounts are numeric cells; dates use the CSV timestamp text.
func WriteXLSX(w io.Writer, expenses []expense.Expense) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := xlsxHeader
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", "D1", bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for i, e := range expenses {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		amount, _ := e.Amount.Float64()
		row := []interface{}{FormatTimestamp(e.Date), e.Category, amount, e.Note}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(sheetName, "A", "A", 26); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
