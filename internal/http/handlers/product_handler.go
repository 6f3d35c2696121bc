package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "souq/internal/log"
	"souq/internal/repos"
	"souq/internal/services"
	"souq/internal/validate"
)

type ProductHandler struct {
	Catalog  *services.CatalogService
	Sessions *repos.SessionRepo
}

// country picks the shopper country: explicit ?country= wins, otherwise the
// session's saved selection.
func (h *ProductHandler) country(c *fiber.Ctx, sid string) string {
	if code, ok := validate.Country(c.Query("country")); ok {
		return code
	}
	code, err := h.Sessions.Country(sid)
	if err != nil {
		return "SA"
	}
	return code
}

// Detail returns a product with its price quote and fulfillment promise for
// the shopper's country.
func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "this item is no longer available"})
	}
	qty := validate.Qty(c.Query("qty"))

	pq, err := h.Catalog.GetQuote(c.Context(), id, h.country(c, sid), qty)
	if err != nil {
		applog.Error(c, "product.quote.fail", err, map[string]any{"product": id})
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "this item is no longer available"})
	}
	return c.JSON(pq)
}

// Availability resolves just the warehouse assignment; the product page polls
// this as the shopper changes quantity.
func (h *ProductHandler) Availability(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ID(c.Query("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing productId"})
	}
	qty := validate.Qty(c.Query("qty"))

	asg, err := h.Catalog.CheckAvailability(c.Context(), id, h.country(c, sid), qty)
	if err != nil {
		applog.Error(c, "availability.fail", err, map[string]any{"product": id})
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "could not check availability"})
	}
	return c.JSON(asg)
}
