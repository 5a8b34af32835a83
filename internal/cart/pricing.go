package cart

import "github.com/shopspring/decimal"

// LineTotal prices one cart line: (base_price + price_adjustment) * quantity,
// rounded to two fractional digits. The rounding is applied once to the line
// total, not per unit, so a line's total always equals the rounded product of
// its exact unit price and quantity.
func LineTotal(basePrice, priceAdjustment decimal.Decimal, quantity int) decimal.Decimal {
	unit := basePrice.Add(priceAdjustment)
	return unit.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}
