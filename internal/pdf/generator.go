package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/nurpe/donations-service/internal/model"
)

type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica"}
}

// Generate renders a one-page receipt for an approved donation.
func (g *Generator) Generate(doc model.ReceiptDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 16)
	pdf.CellFormat(0, 10, "Donation Receipt", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Receipt No. %s", doc.Donation.ID), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Issued %s", formatDate(time.Now())), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Donor", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, doc.Donation.Name, "", 1, "L", false, 0, "")
	if doc.Donation.Email != "" {
		pdf.CellFormat(0, 6, doc.Donation.Email, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Donation", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)

	headers := []string{"Campaign", "Type", "Amount", "Donated on"}
	colWidths := []float64{80, 25, 30, 35}
	drawTableRow(pdf, g.fontName, headers, colWidths, true)

	row := []string{
		doc.Campaign.Title,
		typeLabel(doc.Donation.DonationType),
		formatAmount(doc.Donation.Amount),
		formatDate(doc.Donation.DonatedAt),
	}
	drawTableRow(pdf, g.fontName, row, colWidths, false)

	if doc.Donation.Purpose != "" {
		pdf.Ln(4)
		pdf.SetFont(g.fontName, "B", 12)
		pdf.CellFormat(0, 8, "Purpose", "", 1, "L", false, 0, "")
		pdf.SetFont(g.fontName, "", 10)
		pdf.MultiCell(0, 5, doc.Donation.Purpose, "", "L", false)
	}

	pdf.Ln(8)
	pdf.SetFont(g.fontName, "", 10)
	pdf.CellFormat(0, 6, "Thank you for supporting this campaign.", "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Donations Team", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawTableRow(pdf *gofpdf.Fpdf, fontName string, cells []string, widths []float64, header bool) {
	if header {
		pdf.SetFont(fontName, "B", 10)
		pdf.SetFillColor(230, 230, 230)
	} else {
		pdf.SetFont(fontName, "", 10)
		pdf.SetFillColor(255, 255, 255)
	}
	for i, cell := range cells {
		pdf.CellFormat(widths[i], 8, cell, "1", 0, "L", header, 0, "")
	}
	pdf.Ln(-1)
}

func typeLabel(t model.DonationType) string {
	if t == model.DonationTypeGoods {
		return "In-kind"
	}
	return "Monetary"
}

func formatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

func formatDate(t time.Time) string {
	return t.Format("02.01.2006")
}
