package orders

import (
	"math"
	"testing"

	"github.com/nikunjj1175/Cafe_Order_Management_Backend/models"
)

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name         string
		lines        []models.OrderLine
		wantSubtotal float64
		wantTax      float64
		wantTotal    float64
	}{
		{
			name: "simple",
			lines: []models.OrderLine{
				{Price: 40, Quantity: 2},
				{Price: 20, Quantity: 1},
			},
			wantSubtotal: 100,
			wantTax:      5,
			wantTotal:    105,
		},
		{
			name: "rounding",
			lines: []models.OrderLine{
				{Price: 3.33, Quantity: 3}, // 9.99, tax 0.4995 -> 0.50
			},
			wantSubtotal: 9.99,
			wantTax:      0.5,
			wantTotal:    10.49,
		},
		{
			name:         "empty cart",
			lines:        nil,
			wantSubtotal: 0,
			wantTax:      0,
			wantTotal:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subtotal, tax, total := ComputeTotals(tt.lines)
			if subtotal != tt.wantSubtotal {
				t.Errorf("subtotal = %v, want %v", subtotal, tt.wantSubtotal)
			}
			if tax != tt.wantTax {
				t.Errorf("tax = %v, want %v", tax, tt.wantTax)
			}
			if total != tt.wantTotal {
				t.Errorf("total = %v, want %v", total, tt.wantTotal)
			}
			if total != subtotal+tax {
				t.Errorf("total %v != subtotal %v + tax %v", total, subtotal, tax)
			}
			if tax != math.Round(subtotal*TaxRate*100)/100 {
				t.Errorf("tax %v is not round(subtotal*%v, 2)", tax, TaxRate)
			}
		})
	}
}
