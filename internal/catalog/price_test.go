package catalog_test

import (
	"testing"

	"souq/internal/catalog"
	"souq/internal/domain"
)

func TestResolvePrice_CountryOverrideWins(t *testing.T) {
	p := domain.Product{
		ID:            "p1",
		BasePrice:     999,
		BaseSalePrice: 500,
		BaseCurrency:  "SAR",
		PriceByCountry: map[string]domain.CountryPrice{
			"UAE": {Price: 100, SalePrice: 80},
		},
	}

	calls := 0
	convert := func(amount float64, from, to string) float64 {
		calls++
		return amount * 2
	}

	q := catalog.ResolvePrice(p, "AE", convert)
	if !q.CountrySpecific {
		t.Fatalf("want country-specific quote, got %+v", q)
	}
	if q.Price != 100 || q.SalePrice != 80 || q.Currency != "AED" {
		t.Fatalf("override not returned as stored: %+v", q)
	}
	if calls != 0 {
		t.Fatalf("convert must not run for overrides, ran %d times", calls)
	}
}

func TestResolvePrice_ZeroOverrideFallsThrough(t *testing.T) {
	p := domain.Product{
		BasePrice:    200,
		BaseCurrency: "SAR",
		PriceByCountry: map[string]domain.CountryPrice{
			"KSA": {Price: 0, SalePrice: 10},
		},
	}
	q := catalog.ResolvePrice(p, "SA", nil)
	if q.CountrySpecific {
		t.Fatalf("zero-priced override must not win: %+v", q)
	}
	if q.Price != 200 || q.Currency != "SAR" {
		t.Fatalf("want base price, got %+v", q)
	}
}

func TestResolvePrice_SameCurrencyNoConversion(t *testing.T) {
	p := domain.Product{BasePrice: 150, BaseSalePrice: 120, BaseCurrency: "SAR"}
	convert := func(amount float64, from, to string) float64 {
		t.Fatalf("convert called for %s->%s", from, to)
		return 0
	}
	q := catalog.ResolvePrice(p, "SA", convert)
	if q.Price != 150 || q.SalePrice != 120 || q.Currency != "SAR" || q.CountrySpecific {
		t.Fatalf("unexpected quote: %+v", q)
	}
}

func TestResolvePrice_ConvertsBaseAndSale(t *testing.T) {
	p := domain.Product{BasePrice: 100, BaseSalePrice: 40, BaseCurrency: "SAR"}
	convert := func(amount float64, from, to string) float64 {
		if from != "SAR" || to != "AED" {
			t.Fatalf("unexpected conversion %s->%s", from, to)
		}
		return amount * 0.5
	}
	q := catalog.ResolvePrice(p, "AE", convert)
	if q.Price != 50 || q.SalePrice != 20 || q.Currency != "AED" {
		t.Fatalf("conversion not applied: %+v", q)
	}
}

func TestResolvePrice_ZeroSaleNotConverted(t *testing.T) {
	p := domain.Product{BasePrice: 100, BaseCurrency: "SAR"}
	q := catalog.ResolvePrice(p, "AE", func(a float64, _, _ string) float64 { return a * 2 })
	if q.Price != 200 || q.SalePrice != 0 {
		t.Fatalf("zero sale must stay zero: %+v", q)
	}
}

func TestResolvePrice_NoConverterReportsBaseCurrency(t *testing.T) {
	p := domain.Product{BasePrice: 75, BaseCurrency: "USD"}
	q := catalog.ResolvePrice(p, "AE", nil)
	if q.Price != 75 || q.Currency != "USD" {
		t.Fatalf("want raw base values in base currency, got %+v", q)
	}
}

func TestResolvePrice_UnknownCountryPassesThrough(t *testing.T) {
	p := domain.Product{
		BasePrice: 10,
		PriceByCountry: map[string]domain.CountryPrice{
			"Egypt": {Price: 7},
		},
	}
	// "Egypt" is not in the mapping table; the raw value must still be usable
	// as a stock/price key.
	q := catalog.ResolvePrice(p, "Egypt", nil)
	if !q.CountrySpecific || q.Price != 7 {
		t.Fatalf("pass-through key not honored: %+v", q)
	}
	if q.Currency != "SAR" {
		t.Fatalf("unknown keys default to SAR, got %q", q.Currency)
	}
}

func TestSaleActive(t *testing.T) {
	cases := []struct {
		price, sale float64
		want        bool
	}{
		{100, 50, true},
		{100, 0, false},
		{100, 100, false},
		{100, 150, false},
		{0, 0, false},
	}
	for _, tc := range cases {
		got := catalog.SaleActive(domain.PriceQuote{Price: tc.price, SalePrice: tc.sale})
		if got != tc.want {
			t.Fatalf("SaleActive(price=%v, sale=%v) = %v, want %v", tc.price, tc.sale, got, tc.want)
		}
	}
}
