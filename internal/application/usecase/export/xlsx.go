// Package export contains the spreadsheet export use case.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Laporan Keuangan"

// transactionHeaders are the column headers of the transaction table.
var transactionHeaders = []string{"Tanggal", "Tipe", "Kategori", "Judul", "Deskripsi", "Jumlah"}

// renderXLSX writes a reportSheet into an xlsx workbook:
//
//	row 1   LAPORAN KEUANGAN
//	row 2   Periode: <label>
//	row 4   Total Pemasukan   <amount>
//	row 5   Total Pengeluaran <amount>
//	row 6   Saldo             <amount>
//	row 9   DAFTAR TRANSAKSI
//	row 11  column headers
//	row 12+ one row per transaction
func renderXLSX(sheet reportSheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}

	setCell := func(cell string, value string) error {
		return f.SetCellValue(sheetName, cell, value)
	}

	staticCells := map[string]string{
		"A1": "LAPORAN KEUANGAN",
		"A2": "Periode: " + sheet.PeriodLabel,
		"A4": "Total Pemasukan",
		"B4": sheet.TotalIncome,
		"A5": "Total Pengeluaran",
		"B5": sheet.TotalExpense,
		"A6": "Saldo",
		"B6": sheet.Balance,
		"A9": "DAFTAR TRANSAKSI",
	}
	for cell, value := range staticCells {
		if err := setCell(cell, value); err != nil {
			return nil, fmt.Errorf("failed to write cell %s: %w", cell, err)
		}
	}

	const headerRow = 11
	for i, header := range transactionHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return nil, fmt.Errorf("failed to build header cell name: %w", err)
		}
		if err := setCell(cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header %s: %w", header, err)
		}
	}

	for rowIdx, row := range sheet.Rows {
		values := []string{row.Date, row.Type, row.Category, row.Title, row.Description, row.Amount}
		for colIdx, value := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, headerRow+1+rowIdx)
			if err != nil {
				return nil, fmt.Errorf("failed to build cell name: %w", err)
			}
			if err := setCell(cell, value); err != nil {
				return nil, fmt.Errorf("failed to write transaction row %d: %w", rowIdx, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
