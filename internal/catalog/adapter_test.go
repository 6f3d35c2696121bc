package catalog_test

import (
	"encoding/json"
	"testing"

	"souq/internal/catalog"
)

func TestNormalize_DuckTypedRecord(t *testing.T) {
	raw := []byte(`{
		"_id": "abc123",
		"name": "Oud Perfume",
		"price": "149.50",
		"salePrice": 99,
		"stockQty": "12",
		"stockByCountry": {"KSA": 5, "UAE": "3"},
		"priceByCountry": {"UAE": {"price": "120", "salePrice": 100}},
		"variants": {"size": [{"value": "50ml", "stockQty": 4}, {"value": "100ml", "stockQty": "0"}]},
		"imagePath": "media/oud.jpg",
		"video": "media/oud.mp4"
	}`)
	var r catalog.RawProduct
	if err := json.Unmarshal(raw, &r); err != nil {
		t.Fatal(err)
	}

	p := catalog.Normalize(r)
	if p.ID != "abc123" || p.Title != "Oud Perfume" {
		t.Fatalf("identity not mapped: %+v", p)
	}
	if p.Category != "Other" {
		t.Fatalf("missing category must default to Other, got %q", p.Category)
	}
	if p.BasePrice != 149.50 || p.BaseSalePrice != 99 {
		t.Fatalf("prices not coerced: %+v", p)
	}
	if p.BaseCurrency != "SAR" {
		t.Fatalf("missing currency must default to SAR, got %q", p.BaseCurrency)
	}
	if p.TotalStock == nil || *p.TotalStock != 12 {
		t.Fatalf("stockQty not coerced: %+v", p.TotalStock)
	}
	if p.StockByCountry["KSA"] != 5 || p.StockByCountry["UAE"] != 3 {
		t.Fatalf("per-country stock not coerced: %+v", p.StockByCountry)
	}
	if p.PriceByCountry["UAE"].Price != 120 || p.PriceByCountry["UAE"].SalePrice != 100 {
		t.Fatalf("per-country price not coerced: %+v", p.PriceByCountry)
	}
	if got := p.Variants["size"]; len(got) != 2 || got[0].Stock != 4 || got[1].Stock != 0 {
		t.Fatalf("variants not coerced: %+v", got)
	}
	if len(p.Images) != 1 || p.Images[0] != "media/oud.jpg" {
		t.Fatalf("imagePath fallback not applied: %+v", p.Images)
	}
	if p.VideoURL != "media/oud.mp4" {
		t.Fatalf("video fallback not applied: %q", p.VideoURL)
	}
}

func TestNormalize_AbsentStockIsUntracked(t *testing.T) {
	p := catalog.Normalize(catalog.RawProduct{ID: "p1", Name: "X"})
	if p.TotalStock != nil {
		t.Fatalf("absent stockQty must stay untracked, got %v", *p.TotalStock)
	}
}

func TestNormalize_GarbageNumbersBecomeZero(t *testing.T) {
	var r catalog.RawProduct
	if err := json.Unmarshal([]byte(`{"id":"p1","price":"abc","salePrice":-5,"stockQty":"-3"}`), &r); err != nil {
		t.Fatal(err)
	}
	p := catalog.Normalize(r)
	if p.BasePrice != 0 || p.BaseSalePrice != 0 {
		t.Fatalf("garbage prices must normalize to 0: %+v", p)
	}
	if p.TotalStock == nil || *p.TotalStock != 0 {
		t.Fatalf("garbage stock must normalize to 0: %+v", p.TotalStock)
	}
}

func TestNormalize_MediaPrecedence(t *testing.T) {
	p := catalog.Normalize(catalog.RawProduct{ID: "p1", VideoURL: "a.mp4", Video: "b.mp4", Videos: []string{"c.mp4"}})
	if p.VideoURL != "a.mp4" {
		t.Fatalf("videoUrl must win, got %q", p.VideoURL)
	}
	p = catalog.Normalize(catalog.RawProduct{ID: "p1", Videos: []string{"c.mp4"}})
	if p.VideoURL != "c.mp4" {
		t.Fatalf("videos[0] is the last fallback, got %q", p.VideoURL)
	}
	p = catalog.Normalize(catalog.RawProduct{ID: "p1", Images: []string{"x.jpg"}, ImagePath: "y.jpg"})
	if len(p.Images) != 1 || p.Images[0] != "x.jpg" {
		t.Fatalf("images must win over imagePath: %+v", p.Images)
	}
}
