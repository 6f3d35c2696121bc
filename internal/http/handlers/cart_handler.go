package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"souq/internal/cart"
	applog "souq/internal/log"
	"souq/internal/services"
	"souq/internal/validate"
)

type CartHandler struct {
	Cart *services.CartService
}

type addToCartRequest struct {
	ProductID string            `json:"productId"`
	Quantity  int               `json:"qty"`
	Variants  map[string]string `json:"variants"`
}

// Add puts a product into the cart, merging with an existing line when the
// same product/variant combination is already there.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := ensureSID(c)

	var req addToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	id, ok := validate.ID(req.ProductID)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing productId"})
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	view, err := h.Cart.Add(c.Context(), sid, id, req.Variants, req.Quantity)
	if errors.Is(err, cart.ErrOutOfStock) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "out of stock"})
	}
	if err != nil {
		applog.Error(c, "cart.add.fail", err, map[string]any{"product": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not add to cart"})
	}
	applog.Audit(c, "cart.add", map[string]any{"product": id, "qty": req.Quantity})
	return c.JSON(view)
}

// View returns the current cart with totals.
func (h *CartHandler) View(c *fiber.Ctx) error {
	sid := ensureSID(c)
	view, err := h.Cart.View(sid)
	if err != nil {
		applog.Error(c, "cart.view.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load cart"})
	}
	return c.JSON(view)
}
