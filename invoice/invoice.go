// Package invoice renders a placed order into a downloadable PDF.
package invoice

import (
	"bytes"
	"fmt"

	"electrofusion/models"
	"electrofusion/utils"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

const (
	rowAdvance  = 25.0 // vertical space reserved per item row
	pageBreakAt = 250.0
	footerText  = "Thank you for shopping with Electro Fusion!"
	deliveryTxt = "Expected delivery: 2 days from order date"
)

// Filename embeds the order id so downloads of different orders never
// collide.
func Filename(order models.Order) string {
	return fmt.Sprintf("ElectroFusion_Invoice_%s.pdf", order.ID)
}

// Render produces the invoice document for the order: title block, billing
// block, items table in stored order, total, payment method and footer.
func Render(order models.Order) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Title block
	pdf.SetFont("Arial", "B", 24)
	pdf.SetTextColor(0, 123, 255)
	pdf.Text(20, 30, "Electro Fusion")
	pdf.SetFont("Arial", "", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(20, 40, "One stop solution for all electronics items")

	pdf.SetFont("Arial", "", 18)
	pdf.Text(20, 60, "Invoice")

	pdf.SetFont("Arial", "", 12)
	pdf.Text(20, 75, fmt.Sprintf("Order ID: %s", order.ID))
	pdf.Text(20, 85, fmt.Sprintf("Date: %s", order.Date.Format("02/01/2006")))
	pdf.Text(20, 95, fmt.Sprintf("Status: %s", order.Status))

	// QR stamp of the order id, top right
	if qr, err := qrcode.Encode(order.ID, qrcode.Medium, 256); err == nil {
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("order-qr", opts, bytes.NewReader(qr))
		pdf.ImageOptions("order-qr", 160, 20, 30, 30, false, opts, 0, "")
	}

	// Billing block
	addr := order.Address
	pdf.Text(20, 115, "Bill To:")
	pdf.Text(20, 125, addr.Name)
	pdf.Text(20, 135, addr.Email)
	pdf.Text(20, 145, addr.Phone)
	pdf.Text(20, 155, addr.Street)
	pdf.Text(20, 165, fmt.Sprintf("%s, %s - %s", addr.City, addr.State, addr.Pincode))
	if addr.Landmark != "" {
		pdf.Text(20, 175, fmt.Sprintf("Landmark: %s", addr.Landmark))
	}

	y := drawItemsTable(pdf, order.Items)
	if y > pageBreakAt {
		pdf.AddPage()
		y = 30
	}

	pdf.Line(20, y, 200, y)
	y += 15
	pdf.SetFont("Arial", "", 14)
	pdf.Text(20, y, fmt.Sprintf("Total Amount: Rs. %s", utils.FormatAmount(order.Total)))
	pdf.Text(20, y+15, fmt.Sprintf("Payment Method: %s", order.PaymentMethod))

	// Footer
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(128, 128, 128)
	pdf.Text(20, 280, footerText)
	pdf.Text(20, 290, deliveryTxt)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("invoice render: %w", err)
	}
	return buf.Bytes(), nil
}

// drawItemsTable renders the table header and one row per item, breaking to
// a fresh page when the cursor runs past the footer margin. Returns the Y
// position after the last row.
func drawItemsTable(pdf *gofpdf.Fpdf, items []models.CartItem) float64 {
	drawHeader := func(y float64) float64 {
		pdf.SetFont("Arial", "", 12)
		pdf.SetTextColor(0, 0, 0)
		pdf.Text(20, y, "Item")
		pdf.Text(120, y, "Qty")
		pdf.Text(150, y, "Price")
		pdf.Text(180, y, "Total")
		pdf.Line(20, y+5, 200, y+5)
		return y + 20
	}

	y := drawHeader(200)
	for _, item := range items {
		if y > pageBreakAt {
			pdf.AddPage()
			y = drawHeader(30)
		}

		lineTotal := item.Price * item.Quantity
		name := item.Name
		if len(name) > 30 {
			name = name[:30]
		}

		pdf.SetFont("Arial", "", 10)
		pdf.Text(20, y, name)
		pdf.Text(20, y+10, item.Brand)
		pdf.Text(120, y, fmt.Sprintf("%d", item.Quantity))
		pdf.Text(150, y, "Rs. "+utils.FormatAmount(item.Price))
		pdf.Text(180, y, "Rs. "+utils.FormatAmount(lineTotal))

		y += rowAdvance
	}
	return y
}
