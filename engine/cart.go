package engine

import (
	"coffee-order/models"

	"github.com/shopspring/decimal"
)

// LineSubtotal is the pre-tax amount of a line: final price times quantity.
func LineSubtotal(line models.CartLine) decimal.Decimal {
	return line.FinalPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
}

// Totals reduces cart lines into subtotal, tax and total. Tax is applied per
// line with the line's own rate; the sums are rounded to cents.
func Totals(lines []models.CartLine) models.CartTotals {
	subtotal := decimal.Zero
	tax := decimal.Zero
	count := 0

	for _, line := range lines {
		lineSubtotal := LineSubtotal(line)
		subtotal = subtotal.Add(lineSubtotal)
		tax = tax.Add(lineSubtotal.Mul(line.TaxRate))
		count += line.Quantity
	}

	subtotal = subtotal.Round(2)
	tax = tax.Round(2)
	return models.CartTotals{
		Subtotal:  subtotal,
		Tax:       tax,
		Total:     subtotal.Add(tax),
		ItemCount: count,
	}
}
