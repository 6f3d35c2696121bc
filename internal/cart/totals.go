package cart

import (
	"github.com/shopspring/decimal"

	"souq/internal/domain"
)

// EffectiveUnitPrice is the amount one unit actually costs: the sale price
// when a sale is active (0 < sale < price), the regular price otherwise.
func EffectiveUnitPrice(q domain.PriceQuote) float64 {
	if q.SalePrice > 0 && q.SalePrice < q.Price {
		return q.SalePrice
	}
	return q.Price
}

// Subtotal is quantity times unit price for one line, computed in decimal so
// display totals do not drift.
func Subtotal(l Line) decimal.Decimal {
	return decimal.NewFromFloat(l.UnitPrice).Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Total sums all line subtotals.
func Total(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(Subtotal(l))
	}
	return total
}

// Count is the number of units across all lines.
func Count(lines []Line) int {
	n := 0
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}
