package catalog

import "souq/internal/domain"

// Delivery promises per warehouse type, in days.
const (
	etaLocalMin  = 1
	etaLocalMax  = 2
	etaGlobalMin = 10
	etaGlobalMax = 14
)

// ResolveWarehouse decides how a requested quantity is fulfilled for a
// shopper country. Local stock always wins when it covers the full quantity
// (fastest promise); global stock is the cross-border fallback; none means
// the quantity cannot be fulfilled at all. Stock levels are returned either
// way so callers can show "N left" style diagnostics.
func ResolveWarehouse(p domain.Product, countryCode string, quantity int) domain.WarehouseAssignment {
	if quantity < 1 {
		quantity = 1
	}

	local := p.StockByCountry[CountryKey(countryCode)]
	if local < 0 {
		local = 0
	}
	global := domain.StockUnbounded
	if p.TotalStock != nil {
		global = *p.TotalStock
	}

	asg := domain.WarehouseAssignment{LocalStock: local, GlobalStock: global}
	switch {
	case local >= quantity && local > 0:
		asg.Type = domain.FulfillmentLocal
		asg.ETAMinDays, asg.ETAMaxDays = etaLocalMin, etaLocalMax
	case global >= quantity && global > 0:
		asg.Type = domain.FulfillmentGlobal
		asg.ETAMinDays, asg.ETAMaxDays = etaGlobalMin, etaGlobalMax
	default:
		asg.Type = domain.FulfillmentNone
	}
	return asg
}
