package infra

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/NightFoX54/ERP-Proje/internal/model"

	"github.com/go-pdf/fpdf"
)

// PDFGenerator renders order delivery notes into a storage directory.
type PDFGenerator struct {
	dir string
}

func NewPDFGenerator(dir string) *PDFGenerator {
	return &PDFGenerator{dir: dir}
}

// GenerateOrderPDF writes the delivery note for the order and returns the
// file path. An existing note for the same order is overwritten.
func (g *PDFGenerator) GenerateOrderPDF(order *model.Order) (string, error) {
	if err := os.MkdirAll(g.dir, 0o755); err != nil {
		return "", err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Delivery note %s", order.ID), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Delivery Note")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Order: %s", order.ID))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Customer: %s", order.CustomerName))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Order date: %s", order.OrderDate.Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Delivery date: %s", order.DeliveryDate.Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Status: %s", order.Status))
	pdf.Ln(10)

	// Line items
	pdf.SetFont("Helvetica", "B", 9)
	widths := []float64{50, 25, 25, 25, 30, 30}
	headers := []string{"Stock item", "Pieces", "Cut (mm)", "Weight (kg)", "Price/kg", "Line total"}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, sold := range order.SoldItems {
		pieces := sold.Quantity
		if sold.CutQuantity > 0 {
			pieces = sold.CutQuantity
		}
		pdf.CellFormat(widths[0], 7, sold.StockItemID.String()[:8], "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, fmt.Sprintf("%d", pieces), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 7, fmt.Sprintf("%.0f", sold.CutLength), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 7, fmt.Sprintf("%.2f", sold.SoldWeight), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 7, fmt.Sprintf("%.2f", sold.KgPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[5], 7, fmt.Sprintf("%.2f", sold.TotalPrice), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Total weight: %.2f kg", order.TotalSaleWeight))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Total wastage: %.3f kg", order.TotalWastageWeight))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Total price: %.2f", order.TotalPrice))

	path := filepath.Join(g.dir, fmt.Sprintf("order-%s.pdf", order.ID))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", err
	}
	return path, nil
}
