package export

import (
	"io"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// SheetName is the only sheet of the workbook.
const SheetName = "Sales Report"

// numFmtTwoDecimals is the builtin "0.00" format.
const numFmtTwoDecimals = 2

// WriteXLSX writes rows as a workbook with a bold header and a closing total row.
func WriteXLSX(w io.Writer, rows []Row, total decimal.Decimal) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return errors.Wrap(err, "rename sheet")
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.Wrap(err, "header style")
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: numFmtTwoDecimals})
	if err != nil {
		return errors.Wrap(err, "money style")
	}

	header := make([]any, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return errors.Wrap(err, "write header")
	}
	lastCol, _ := excelize.ColumnNumberToName(len(Header))
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", bold); err != nil {
		return errors.Wrap(err, "style header")
	}

	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := []any{
			r.Date.Format(DateLayout),
			r.Customer,
			r.IDNumber,
			r.Phone,
			r.Article,
			r.Name,
			r.Brand,
			r.Quantity,
			r.LineTotal.InexactFloat64(),
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return errors.Wrapf(err, "write row %d", i+2)
		}
	}

	totalRow := len(rows) + 2
	labelCell, _ := excelize.CoordinatesToCellName(len(Header)-1, totalRow)
	totalCell, _ := excelize.CoordinatesToCellName(len(Header), totalRow)
	if err := f.SetCellValue(SheetName, labelCell, "Period total"); err != nil {
		return errors.Wrap(err, "write total label")
	}
	if err := f.SetCellValue(SheetName, totalCell, total.InexactFloat64()); err != nil {
		return errors.Wrap(err, "write total")
	}
	if err := f.SetCellStyle(SheetName, labelCell, labelCell, bold); err != nil {
		return errors.Wrap(err, "style total")
	}
	firstMoney, _ := excelize.CoordinatesToCellName(len(Header), 2)
	if err := f.SetCellStyle(SheetName, firstMoney, totalCell, money); err != nil {
		return errors.Wrap(err, "style amounts")
	}

	if err := f.SetColWidth(SheetName, "A", "A", 17); err != nil {
		return errors.Wrap(err, "column width")
	}
	if err := f.SetColWidth(SheetName, "B", lastCol, 14); err != nil {
		return errors.Wrap(err, "column width")
	}

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "write workbook")
	}
	return nil
}
