package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "souq/internal/log"
	"souq/internal/services"
	"souq/internal/validate"
)

type FeedHandler struct {
	Feed *services.FeedService
}

// View returns the accumulated feed as it currently stands.
func (h *FeedHandler) View(c *fiber.Ctx) error {
	sid := ensureSID(c)
	return c.JSON(fiber.Map{
		"category": h.Feed.Category(sid),
		"feed":     h.Feed.Snapshot(sid),
	})
}

// More loads the next page into the feed. While a fetch is still pending the
// trigger is refused so the same page cannot be appended twice.
func (h *FeedHandler) More(c *fiber.Ctx) error {
	sid := ensureSID(c)
	state, err := h.Feed.LoadNext(c.Context(), sid)
	if errors.Is(err, services.ErrFeedBusy) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "a page is already loading",
			"feed":  state,
		})
	}
	if err != nil {
		applog.Error(c, "feed.load.fail", err, nil)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "could not load products"})
	}
	return c.JSON(fiber.Map{"feed": state})
}

// Filter resets the feed for a new category and loads its first page.
func (h *FeedHandler) Filter(c *fiber.Ctx) error {
	sid := ensureSID(c)
	category, ok := validate.Category(c.FormValue("category"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "category"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid category"})
	}
	h.Feed.SetCategory(sid, category)
	state, err := h.Feed.LoadNext(c.Context(), sid)
	if err != nil && !errors.Is(err, services.ErrFeedBusy) {
		applog.Error(c, "feed.filter.fail", err, map[string]any{"category": category})
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "could not load products"})
	}
	return c.JSON(fiber.Map{"category": category, "feed": state})
}
