package orders

import (
	"math"

	"github.com/nikunjj1175/Cafe_Order_Management_Backend/models"
)

// TaxRate is applied once, when the order lines are summed.
const TaxRate = 0.05

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeTotals sums the order lines and applies the tax rate.
// total == subtotal + tax always holds for the returned values.
func ComputeTotals(lines []models.OrderLine) (subtotal, tax, total float64) {
	for _, line := range lines {
		subtotal += line.Price * float64(line.Quantity)
	}
	subtotal = round2(subtotal)
	tax = round2(subtotal * TaxRate)
	total = round2(subtotal + tax)
	return subtotal, tax, total
}
