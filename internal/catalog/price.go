package catalog

import "souq/internal/domain"

// ConvertFunc converts an amount between two currencies. It is supplied by
// the caller; its output is not validated here.
type ConvertFunc func(amount float64, from, to string) float64

// ResolvePrice picks the displayable price for a product in a shopper
// country. A per-country override with price > 0 is authoritative and is
// returned as stored. Otherwise the base price applies, converted through
// convert when one is supplied and the currencies differ; without a usable
// conversion the base values are reported in the base currency.
func ResolvePrice(p domain.Product, countryCode string, convert ConvertFunc) domain.PriceQuote {
	key := CountryKey(countryCode)
	target := CurrencyFor(key)

	if cp, ok := p.PriceByCountry[key]; ok && cp.Price > 0 {
		return domain.PriceQuote{
			Price:           cp.Price,
			SalePrice:       cp.SalePrice,
			Currency:        target,
			CountrySpecific: true,
		}
	}

	base := p.BaseCurrency
	if base == "" {
		base = "SAR"
	}
	price, sale := p.BasePrice, p.BaseSalePrice
	if convert != nil && base != target {
		price = convert(price, base, target)
		if sale > 0 {
			sale = convert(sale, base, target)
		}
		return domain.PriceQuote{Price: price, SalePrice: sale, Currency: target}
	}
	return domain.PriceQuote{Price: price, SalePrice: sale, Currency: base}
}

// SaleActive reports whether a quote's sale price should be shown instead of
// the regular price.
func SaleActive(q domain.PriceQuote) bool {
	return q.SalePrice > 0 && q.SalePrice < q.Price
}
