package cart

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestLineTotal(t *testing.T) {
	tests := []struct {
		name       string
		basePrice  string
		adjustment string
		quantity   int
		want       string
	}{
		{name: "no adjustment", basePrice: "19.99", adjustment: "0.00", quantity: 1, want: "19.99"},
		{name: "positive adjustment", basePrice: "19.99", adjustment: "2.00", quantity: 3, want: "65.97"},
		{name: "negative adjustment", basePrice: "45.99", adjustment: "-5.00", quantity: 2, want: "81.98"},
		{name: "rounds half away from zero", basePrice: "0.335", adjustment: "0.00", quantity: 1, want: "0.34"},
		{name: "rounds the line total not the unit", basePrice: "0.015", adjustment: "0.00", quantity: 3, want: "0.05"},
		{name: "large quantity", basePrice: "199.99", adjustment: "25.00", quantity: 10, want: "2249.90"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := decimal.RequireFromString(tt.basePrice)
			adj := decimal.RequireFromString(tt.adjustment)
			got := LineTotal(base, adj, tt.quantity)
			if got.String() != decimal.RequireFromString(tt.want).String() {
				t.Fatalf("LineTotal(%s, %s, %d) = %s, want %s", tt.basePrice, tt.adjustment, tt.quantity, got, tt.want)
			}
		})
	}
}
