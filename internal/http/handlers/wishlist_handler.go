package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "souq/internal/log"
	"souq/internal/services"
	"souq/internal/validate"
)

type WishlistHandler struct {
	Wish *services.WishlistService
}

func (h *WishlistHandler) List(c *fiber.Ctx) error {
	sid := ensureSID(c)
	items, err := h.Wish.List(sid)
	if err != nil {
		applog.Error(c, "wishlist.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load wishlist"})
	}
	return c.JSON(fiber.Map{"items": items})
}

func (h *WishlistHandler) Save(c *fiber.Ctx) error {
	sid := ensureSID(c)
	pid, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing productId"})
	}
	if err := h.Wish.Save(sid, pid); err != nil {
		applog.Error(c, "wishlist.save.fail", err, map[string]any{"product": pid})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not save item"})
	}
	applog.Audit(c, "wishlist.save", map[string]any{"product": pid})
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *WishlistHandler) Unsave(c *fiber.Ctx) error {
	sid := ensureSID(c)
	pid, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing productId"})
	}
	if err := h.Wish.Unsave(sid, pid); err != nil {
		applog.Error(c, "wishlist.unsave.fail", err, map[string]any{"product": pid})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not unsave item"})
	}
	applog.Audit(c, "wishlist.unsave", map[string]any{"product": pid})
	return c.SendStatus(fiber.StatusNoContent)
}
