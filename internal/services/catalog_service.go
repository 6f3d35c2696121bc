package services

import (
	"context"

	"souq/internal/catalog"
	"souq/internal/domain"
)

// ProductQuote bundles everything a product page needs for one shopper
// country: the product plus its display price and fulfillment promise.
type ProductQuote struct {
	Product      domain.Product             `json:"product"`
	Quote        domain.PriceQuote          `json:"quote"`
	SaleActive   bool                       `json:"saleActive"`
	Availability domain.WarehouseAssignment `json:"availability"`
}

// CatalogService resolves display values for single products.
type CatalogService struct {
	Products ProductSource
	Convert  catalog.ConvertFunc
}

func NewCatalogService(products ProductSource) *CatalogService {
	return &CatalogService{Products: products}
}

func (s *CatalogService) GetQuote(ctx context.Context, productID, countryCode string, qty int) (ProductQuote, error) {
	p, err := s.Products.GetProduct(ctx, productID)
	if err != nil {
		return ProductQuote{}, err
	}
	quote := catalog.ResolvePrice(p, countryCode, s.Convert)
	return ProductQuote{
		Product:      p,
		Quote:        quote,
		SaleActive:   catalog.SaleActive(quote),
		Availability: catalog.ResolveWarehouse(p, countryCode, qty),
	}, nil
}

// CheckAvailability resolves just the warehouse assignment, for the
// availability endpoint the product page polls as quantity changes.
func (s *CatalogService) CheckAvailability(ctx context.Context, productID, countryCode string, qty int) (domain.WarehouseAssignment, error) {
	p, err := s.Products.GetProduct(ctx, productID)
	if err != nil {
		return domain.WarehouseAssignment{}, err
	}
	return catalog.ResolveWarehouse(p, countryCode, qty), nil
}
