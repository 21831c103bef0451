// Package billing renders a paginated PDF tax invoice for an order.
// Render is a pure function of its inputs; the caller owns the tax
// side effect on the order record.
package billing

import (
	"bytes"
	"fmt"
	"math"
	"net/url"

	"github.com/Mikjohns10/instabite-backend/entity"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// GSTRate is the flat tax rate applied to the order subtotal.
const GSTRate = 0.05

const (
	brandName = "InstaBite"
	tagline   = "Good food, zero wait"
)

// Layout constants, mm on A4 portrait. Rows are laid out at a fixed
// height from tableTopY; a row that would cross pageBottomY starts a
// new page at contTopY. The table header is not repeated on
// continuation pages.
const (
	leftX        = 10.0
	pageWidth    = 190.0
	tableHeaderY = 100.0
	tableTopY    = 108.0
	rowHeight    = 8.0
	pageBottomY  = 270.0
	contTopY     = 20.0
)

// column widths: Description, Price, Qty, Amount
var colWidths = [4]float64{95, 30, 20, 45}

// ComputeTax derives the GST line and grand total from the subtotal,
// rounding the tax to the nearest whole currency unit. Deterministic
// given the same subtotal, so repeated bill generation is idempotent.
func ComputeTax(totalAmount int64) (gstAmount, grandTotal int64) {
	gstAmount = int64(math.Round(float64(totalAmount) * GSTRate))
	return gstAmount, totalAmount + gstAmount
}

type Options struct {
	CurrencyPrefix string
}

// Render lays out the invoice document and returns its bytes.
// The order's tax fields must already be populated.
func Render(o *entity.Order, rest *entity.Restaurant, opts Options) ([]byte, error) {
	money := func(v int64) string {
		return fmt.Sprintf("%s %d", opts.CurrencyPrefix, v)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	// pin the document date so identical inputs render identical bytes
	pdf.SetCreationDate(o.CreatedAt.UTC())
	pdf.SetModificationDate(o.CreatedAt.UTC())
	// font/image dictionaries are emitted in map order unless sorted
	pdf.SetCatalogSort(true)
	pdf.SetAutoPageBreak(false, 0) // pagination handled by the row cursor
	pdf.AddPage()

	// header
	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetXY(leftX, 15)
	pdf.CellFormat(pageWidth, 10, brandName, "", 0, "C", false, 0, "")
	pdf.SetFont("Helvetica", "I", 11)
	pdf.SetXY(leftX, 26)
	pdf.CellFormat(pageWidth, 6, tagline, "", 0, "C", false, 0, "")
	pdf.SetLineWidth(0.4)
	pdf.Line(leftX, 34, leftX+pageWidth, 34)

	// invoice metadata
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(leftX, 40)
	pdf.CellFormat(pageWidth, 5, "Order Code: "+o.OrderCode, "", 0, "L", false, 0, "")
	pdf.SetXY(leftX, 46)
	pdf.CellFormat(pageWidth, 5, "Order Date: "+o.CreatedAt.Format("02 Jan 2006"), "", 0, "L", false, 0, "")
	pdf.SetXY(leftX, 52)
	pdf.CellFormat(pageWidth, 5, "Order Time: "+o.CreatedAt.Format("03:04 PM"), "", 0, "L", false, 0, "")

	// seller block (snapshot fields first, live record as fallback)
	sellerName := o.RestaurantName
	sellerAddress := o.RestaurantAddress
	sellerGstin := o.RestaurantGstin
	if sellerName == "" {
		sellerName = rest.Name
	}
	if sellerAddress == "" {
		sellerAddress = rest.Address
	}
	if sellerGstin == "" {
		sellerGstin = rest.Gstin
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(leftX, 62)
	pdf.CellFormat(90, 6, "From", "", 0, "L", false, 0, "")
	pdf.SetXY(110, 62)
	pdf.CellFormat(90, 6, "Bill To", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	seller := []string{sellerName, sellerAddress, "Phone: " + rest.Phone}
	if sellerGstin != "" {
		seller = append(seller, "GSTIN: "+sellerGstin)
	}
	buyer := []string{o.CustomerName, "Phone: " + o.CustomerPhone, o.CustomerAddress}
	y := 69.0
	for _, line := range seller {
		pdf.SetXY(leftX, y)
		pdf.CellFormat(90, 5, line, "", 0, "L", false, 0, "")
		y += 5
	}
	y = 69.0
	for _, line := range buyer {
		pdf.SetXY(110, y)
		pdf.CellFormat(90, 5, line, "", 0, "L", false, 0, "")
		y += 5
	}

	// itemized table
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	headers := [4]string{"Description", "Price", "Qty", "Amount"}
	aligns := [4]string{"L", "R", "R", "R"}
	x := leftX
	pdf.SetY(tableHeaderY)
	for i, h := range headers {
		pdf.SetXY(x, tableHeaderY)
		pdf.CellFormat(colWidths[i], rowHeight, h, "1", 0, aligns[i], true, 0, "")
		x += colWidths[i]
	}

	pdf.SetFont("Helvetica", "", 10)
	y = tableTopY
	for _, line := range o.Items {
		if y+rowHeight > pageBottomY {
			pdf.AddPage()
			y = contTopY
		}
		cells := [4]string{
			line.Name,
			money(line.Price),
			fmt.Sprintf("%d", line.Quantity),
			money(line.ItemTotal),
		}
		x = leftX
		for i, cell := range cells {
			pdf.SetXY(x, y)
			pdf.CellFormat(colWidths[i], rowHeight, cell, "B", 0, aligns[i], false, 0, "")
			x += colWidths[i]
		}
		y += rowHeight
	}

	// totals, right-aligned beneath the table
	if y+34 > pageBottomY {
		pdf.AddPage()
		y = contTopY
	}
	y += 4
	totals := []struct {
		label string
		value string
		bold  bool
	}{
		{"Subtotal", money(o.TotalAmount), false},
		{fmt.Sprintf("GST (%.0f%%)", GSTRate*100), money(o.GstAmount), false},
		{"Grand Total", money(o.GrandTotal), true},
	}
	for _, t := range totals {
		if t.bold {
			pdf.SetFont("Helvetica", "B", 11)
		} else {
			pdf.SetFont("Helvetica", "", 10)
		}
		pdf.SetXY(110, y)
		pdf.CellFormat(50, 7, t.label, "", 0, "L", false, 0, "")
		pdf.SetXY(160, y)
		pdf.CellFormat(40, 7, t.value, "", 0, "R", false, 0, "")
		y += 7
	}

	// payment block
	if y+46 > pageBottomY {
		pdf.AddPage()
		y = contTopY
	}
	y += 6
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(leftX, y)
	pdf.CellFormat(90, 6, "Payment", "", 0, "L", false, 0, "")
	y += 6
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(leftX, y)
	pdf.CellFormat(90, 5, "Method: "+o.PaymentMethod, "", 0, "L", false, 0, "")
	y += 5
	if rest.UpiID != "" {
		pdf.SetXY(leftX, y)
		pdf.CellFormat(90, 5, "UPI: "+rest.UpiID, "", 0, "L", false, 0, "")

		payload := fmt.Sprintf("upi://pay?pa=%s&pn=%s", rest.UpiID, url.QueryEscape(sellerName))
		if png, err := qrcode.Encode(payload, qrcode.Medium, 256); err == nil {
			imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}
			pdf.RegisterImageOptionsReader("upi-qr", imgOpts, bytes.NewReader(png))
			pdf.ImageOptions("upi-qr", leftX+pageWidth-28, y-11, 28, 28, false, imgOpts, 0, "")
		}
		y += 5
	}

	// footer
	y += 14
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetXY(leftX, y)
	pdf.CellFormat(pageWidth, 5, "Thank you for ordering with InstaBite!", "", 0, "C", false, 0, "")
	pdf.SetXY(leftX, y+5)
	pdf.CellFormat(pageWidth, 5, "support@instabite.in  |  www.instabite.in", "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Filename suggests the attachment name for a rendered invoice.
func Filename(orderCode string) string {
	return fmt.Sprintf("invoice-%s.pdf", orderCode)
}
