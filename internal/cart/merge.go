package cart

import (
	"errors"
	"net/url"
	"sort"
	"strings"

	"souq/internal/domain"
)

// ErrOutOfStock is returned when an add resolves to zero purchasable stock.
// The cart is left untouched; callers surface this to the shopper instead of
// treating it as a failure.
var ErrOutOfStock = errors.New("out of stock")

// Line is one cart line. Lines for the same product with different variant
// selections stay separate; the LineKey encodes that.
type Line struct {
	LineKey          string                 `json:"lineKey"`
	ProductID        string                 `json:"productId"`
	Title            string                 `json:"title"`
	Quantity         int                    `json:"quantity"`
	UnitPrice        float64                `json:"unitPrice"`
	Currency         string                 `json:"currency"`
	MaxStock         int                    `json:"maxStock"` // domain.StockUnbounded when untracked
	Variants         map[string]string      `json:"variants,omitempty"`
	WarehouseType    domain.FulfillmentType `json:"warehouseType"`
	ETAMinDays       int                    `json:"etaMinDays,omitempty"`
	ETAMaxDays       int                    `json:"etaMaxDays,omitempty"`
	WarehouseCountry string                 `json:"warehouseCountry"`
}

// PriceResolver and WarehouseResolver are injected so the merge logic stays
// a pure function over its arguments (catalog supplies the real ones).
type PriceResolver func(p domain.Product, countryCode string) domain.PriceQuote

type WarehouseResolver func(p domain.Product, countryCode string, quantity int) domain.WarehouseAssignment

// VariantSignature canonicalizes a variant selection: sorted key=value pairs,
// URL-encoded, joined by ";". Equal selections always produce equal
// signatures regardless of map iteration order.
func VariantSignature(selected map[string]string) string {
	pairs := make([]string, 0, len(selected))
	for k, v := range selected {
		pairs = append(pairs, url.QueryEscape(k)+"="+url.QueryEscape(v))
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ";")
}

// LineKey identifies a cart line: the product ID alone, or product ID plus
// variant signature when options were selected.
func LineKey(productID string, selected map[string]string) string {
	if len(selected) == 0 {
		return productID
	}
	return productID + "::" + VariantSignature(selected)
}

// Add merges a product into the cart and returns the updated line list. The
// input list is never mutated; untouched lines keep their order and new lines
// append at the end. Quantities are clamped against purchasable stock, and an
// existing line's price and warehouse promise are recomputed for the new
// total quantity — crossing the local-stock threshold can flip a line from
// the fast promise to the slow one.
func Add(
	lines []Line,
	p domain.Product,
	selected map[string]string,
	quantity int,
	countryCode string,
	resolvePrice PriceResolver,
	resolveWarehouse WarehouseResolver,
) ([]Line, error) {
	if quantity < 1 {
		quantity = 1
	}

	max := maxStock(p, selected)
	if max != domain.StockUnbounded && max <= 0 {
		return lines, ErrOutOfStock
	}

	key := LineKey(p.ID, selected)
	existing := -1
	for i := range lines {
		if lines[i].LineKey == key {
			existing = i
			break
		}
	}

	qty := quantity
	if existing >= 0 {
		qty += lines[existing].Quantity
	}
	if max != domain.StockUnbounded && qty > max {
		qty = max
	}

	quote := resolvePrice(p, countryCode)
	asg := resolveWarehouse(p, countryCode, qty)

	line := Line{
		LineKey:          key,
		ProductID:        p.ID,
		Title:            p.Title,
		Quantity:         qty,
		UnitPrice:        EffectiveUnitPrice(quote),
		Currency:         quote.Currency,
		MaxStock:         max,
		Variants:         selected,
		WarehouseType:    asg.Type,
		ETAMinDays:       asg.ETAMinDays,
		ETAMaxDays:       asg.ETAMaxDays,
		WarehouseCountry: countryCode,
	}

	out := make([]Line, len(lines))
	copy(out, lines)
	if existing >= 0 {
		out[existing] = line
		return out, nil
	}
	return append(out, line), nil
}

// maxStock is the clamp ceiling for one add. With a variant selection it is
// the minimum tracked stock across the chosen options; an option that does
// not exist on the product contributes no constraint. Without variants the
// product's total stock applies, where 0 means "not tracked" and therefore
// no ceiling at all.
func maxStock(p domain.Product, selected map[string]string) int {
	if len(selected) > 0 {
		max := domain.StockUnbounded
		for group, value := range selected {
			for _, opt := range p.Variants[group] {
				if opt.Value == value && opt.Stock < max {
					max = opt.Stock
				}
			}
		}
		return max
	}
	if p.TotalStock == nil || *p.TotalStock == 0 {
		return domain.StockUnbounded
	}
	return *p.TotalStock
}
