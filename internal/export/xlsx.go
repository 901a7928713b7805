package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/GustavoCaso/expensetrack/internal/expense"
)

// SheetName is the worksheet XLSX writes to.
const SheetName = "Expenses"

var columnWidths = []float64{38, 12, 30, 12, 16, 16}

// XLSX exports expenses as a spreadsheet with the CSV columns. Amounts are
// numeric cells in dollars.
func XLSX(writer io.Writer, expenses []expense.Expense) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	rows := make([][]any, 0, len(expenses)+1)
	header := make([]any, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	rows = append(rows, header)

	for _, e := range expenses {
		rows = append(rows, []any{
			e.ID(),
			e.Date().Format(expense.DateLayout),
			e.Description(),
			expense.DollarsFloat(e.Amount()),
			e.Category().String(),
			e.PaymentMethod().String(),
		})
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return err
		}
	}

	if err := f.Write(writer); err != nil {
		return fmt.Errorf("failed to write XLSX: %w", err)
	}

	return nil
}
