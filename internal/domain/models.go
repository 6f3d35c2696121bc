package domain

import "math"

// StockUnbounded marks a stock ceiling the backend does not track.
const StockUnbounded = math.MaxInt

// Product is the normalized catalog record every core function operates on.
// Upstream listing records are loosely shaped; catalog.Normalize maps them
// into this struct at the ingestion boundary so business logic never branches
// on field shape.
type Product struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Category      string  `json:"category"` // "Other" when upstream omits it
	BasePrice     float64 `json:"basePrice"`
	BaseSalePrice float64 `json:"baseSalePrice"`
	BaseCurrency  string  `json:"baseCurrency"` // 3-letter code, SAR by default

	// TotalStock is nil when the backend does not track a global ceiling.
	TotalStock     *int                       `json:"totalStock,omitempty"`
	StockByCountry map[string]int             `json:"stockByCountry,omitempty"`
	PriceByCountry map[string]CountryPrice    `json:"priceByCountry,omitempty"`
	Variants       map[string][]VariantOption `json:"variants,omitempty"`

	Images   []string `json:"images,omitempty"`
	VideoURL string   `json:"videoUrl,omitempty"`
}

// CountryPrice is a per-country-key price override. A Price of 0 means the
// override is not usable and base-price conversion applies instead.
type CountryPrice struct {
	Price     float64 `json:"price"`
	SalePrice float64 `json:"salePrice"`
}

// VariantOption is one selectable value inside a variant group (e.g. "XL"
// inside "size") with its own tracked stock.
type VariantOption struct {
	Value string `json:"value"`
	Stock int    `json:"stockQty"`
}

// PriceQuote is the displayable price for one product in one country.
// Recomputed per request, never persisted.
type PriceQuote struct {
	Price           float64 `json:"price"`
	SalePrice       float64 `json:"salePrice"`
	Currency        string  `json:"currency"`
	CountrySpecific bool    `json:"isCountrySpecific"`
}

type FulfillmentType string

const (
	FulfillmentLocal  FulfillmentType = "local"
	FulfillmentGlobal FulfillmentType = "global"
	FulfillmentNone   FulfillmentType = "none"
)

// WarehouseAssignment reports which warehouse serves a requested quantity and
// the delivery promise that comes with it. ETA fields are zero (omitted in
// JSON) when Type is FulfillmentNone. GlobalStock is StockUnbounded when the
// product carries no tracked global ceiling.
type WarehouseAssignment struct {
	Type        FulfillmentType `json:"type"`
	ETAMinDays  int             `json:"etaMinDays,omitempty"`
	ETAMaxDays  int             `json:"etaMaxDays,omitempty"`
	LocalStock  int             `json:"localStock"`
	GlobalStock int             `json:"globalStock"`
}

// Pagination is the listing API's page metadata.
type Pagination struct {
	Page  int `json:"page"`
	Pages int `json:"pages"`
	Total int `json:"total"`
}
