package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/bribank/origination/internal/domain/model"
)

var pdfColumns = []struct {
	title string
	width float64
}{
	{"#", 14},
	{"Installment", 42},
	{"Interest", 42},
	{"Principal", 42},
	{"Remaining", 50},
}

func renderPDF(requestID string, schedule []model.Installment) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "Amortization Schedule", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("Request %s", requestID), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range pdfColumns {
		pdf.CellFormat(col.width, 7, col.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, inst := range schedule {
		cells := []string{
			fmt.Sprintf("%d", inst.Number),
			euroString(inst.Total),
			euroString(inst.Interest),
			euroString(inst.Principal),
			euroString(inst.Remaining),
		}
		for i, cell := range cells {
			align := "R"
			if i == 0 {
				align = "C"
			}
			pdf.CellFormat(pdfColumns[i].width, 6, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
