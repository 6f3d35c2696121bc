package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "souq/internal/log"
	"souq/internal/repos"
	"souq/internal/validate"
)

type SessionHandler struct {
	Sessions *repos.SessionRepo
}

// View returns the session's country selection.
func (h *SessionHandler) View(c *fiber.Ctx) error {
	sid := ensureSID(c)
	country, err := h.Sessions.Country(sid)
	if err != nil {
		applog.Error(c, "session.view.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load session"})
	}
	return c.JSON(fiber.Map{"country": country})
}

// SetCountry stores the shopper's country; prices, stock and ETAs all follow
// from it.
func (h *SessionHandler) SetCountry(c *fiber.Ctx) error {
	sid := ensureSID(c)
	country, ok := validate.Country(c.FormValue("country"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "country"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "enter a valid 2-letter country code"})
	}
	if err := h.Sessions.SetCountry(sid, country); err != nil {
		applog.Error(c, "session.country.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not save country"})
	}
	applog.Audit(c, "session.country", map[string]any{"country": country})
	return c.JSON(fiber.Map{"country": country})
}
