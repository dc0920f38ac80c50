package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// column widths in mm, A4 landscape leaves 277mm between 10mm margins
var pdfWidths = []float64{30, 40, 25, 27, 25, 50, 30, 20, 30}

// WritePDF writes an A4 landscape table of rows under title, closed by the period total.
func WritePDF(w io.Writer, title string, rows []Row, total decimal.Decimal) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 12)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	header := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(220, 220, 220)
		for i, h := range Header {
			pdf.CellFormat(pdfWidths[i], 7, tr(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 9)
	}
	pdf.SetHeaderFunc(func() {
		if pdf.PageNo() > 1 {
			header()
		}
	})

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, tr(title), "", 1, "L", false, 0, "")
	pdf.Ln(2)
	header()

	for _, r := range rows {
		for i, cell := range r.Strings() {
			align := "L"
			if i >= len(Header)-2 {
				align = "R"
			}
			pdf.CellFormat(pdfWidths[i], 6, fit(pdf, tr(cell), pdfWidths[i]), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("Period total: %s", total.StringFixed(2))), "", 1, "R", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return errors.Wrap(err, "write pdf")
	}
	return nil
}

// fit cuts s so it prints inside width with a little padding.
// s is already translated to the single byte font encoding.
func fit(pdf *fpdf.Fpdf, s string, width float64) string {
	for len(s) > 0 && pdf.GetStringWidth(s) > width-2 {
		s = s[:len(s)-1]
	}
	return s
}
