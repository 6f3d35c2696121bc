package catalog

import (
	"strconv"
	"strings"

	"souq/internal/domain"
)

// RawProduct mirrors the inconsistently shaped records the listing API
// returns: numbers arrive as numbers or strings, media lives under several
// field names, and most fields are optional. Normalize is the only place
// that untangles this.
type RawProduct struct {
	ID        string `json:"id"`
	MongoID   string `json:"_id"`
	Name      string `json:"name"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Price     any    `json:"price"`
	SalePrice any    `json:"salePrice"`
	Currency  string `json:"baseCurrency"`
	StockQty  any    `json:"stockQty"`

	StockByCountry map[string]any                `json:"stockByCountry"`
	PriceByCountry map[string]rawCountryPrice    `json:"priceByCountry"`
	Variants       map[string][]rawVariantOption `json:"variants"`

	Images    []string `json:"images"`
	ImagePath string   `json:"imagePath"`
	Video     string   `json:"video"`
	VideoURL  string   `json:"videoUrl"`
	Videos    []string `json:"videos"`
}

type rawCountryPrice struct {
	Price     any `json:"price"`
	SalePrice any `json:"salePrice"`
}

type rawVariantOption struct {
	Value    string `json:"value"`
	StockQty any    `json:"stockQty"`
}

// Normalize maps one raw record into the single Product shape. Malformed or
// missing numerics become 0 rather than failing — a zero-priced card renders,
// a dropped page does not.
func Normalize(r RawProduct) domain.Product {
	p := domain.Product{
		ID:            r.ID,
		Title:         r.Name,
		Category:      strings.TrimSpace(r.Category),
		BasePrice:     asFloat(r.Price),
		BaseSalePrice: asFloat(r.SalePrice),
		BaseCurrency:  strings.ToUpper(strings.TrimSpace(r.Currency)),
	}
	if p.ID == "" {
		p.ID = r.MongoID
	}
	if p.Title == "" {
		p.Title = r.Title
	}
	if p.Category == "" {
		p.Category = "Other"
	}
	if p.BaseCurrency == "" {
		p.BaseCurrency = "SAR"
	}

	if r.StockQty != nil {
		total := asInt(r.StockQty)
		p.TotalStock = &total
	}
	if len(r.StockByCountry) > 0 {
		p.StockByCountry = make(map[string]int, len(r.StockByCountry))
		for key, v := range r.StockByCountry {
			p.StockByCountry[key] = asInt(v)
		}
	}
	if len(r.PriceByCountry) > 0 {
		p.PriceByCountry = make(map[string]domain.CountryPrice, len(r.PriceByCountry))
		for key, cp := range r.PriceByCountry {
			p.PriceByCountry[key] = domain.CountryPrice{
				Price:     asFloat(cp.Price),
				SalePrice: asFloat(cp.SalePrice),
			}
		}
	}
	if len(r.Variants) > 0 {
		p.Variants = make(map[string][]domain.VariantOption, len(r.Variants))
		for group, opts := range r.Variants {
			list := make([]domain.VariantOption, 0, len(opts))
			for _, o := range opts {
				list = append(list, domain.VariantOption{Value: o.Value, Stock: asInt(o.StockQty)})
			}
			p.Variants[group] = list
		}
	}

	p.Images = r.Images
	if len(p.Images) == 0 && r.ImagePath != "" {
		p.Images = []string{r.ImagePath}
	}
	switch {
	case r.VideoURL != "":
		p.VideoURL = r.VideoURL
	case r.Video != "":
		p.VideoURL = r.Video
	case len(r.Videos) > 0:
		p.VideoURL = r.Videos[0]
	}
	return p
}

// NormalizePage maps a whole fetched page.
func NormalizePage(raw []RawProduct) []domain.Product {
	out := make([]domain.Product, len(raw))
	for i, r := range raw {
		out[i] = Normalize(r)
	}
	return out
}

func asFloat(v any) float64 {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	case string:
		f, _ = strconv.ParseFloat(strings.TrimSpace(n), 64)
	}
	if f < 0 {
		return 0
	}
	return f
}

func asInt(v any) int {
	switch n := v.(type) {
	case float64:
		if n < 0 {
			return 0
		}
		return int(n)
	case int:
		if n < 0 {
			return 0
		}
		return n
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil || i < 0 {
			return 0
		}
		return i
	}
	return 0
}
