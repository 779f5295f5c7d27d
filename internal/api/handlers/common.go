package handlers

import (
	"errors"

	"github.com/lumumba11/carbon-tracker-dashboard/internal/models"
	"github.com/lumumba11/carbon-tracker-dashboard/internal/service"
	"github.com/lumumba11/carbon-tracker-dashboard/internal/session"
	"github.com/lumumba11/carbon-tracker-dashboard/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

// sessionFrom pulls the session the middleware resolved for this request.
func sessionFrom(c *fiber.Ctx) (*session.Session, error) {
	sess, ok := c.Locals(middleware.SessionKey).(*session.Session)
	if !ok {
		return nil, fiber.ErrInternalServerError
	}
	return sess, nil
}

// respondError maps core errors onto the JSON error shape used everywhere:
// validation failures are 400s, assistant state conflicts are 409s.
func respondError(c *fiber.Ctx, err error) error {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": verr.Error(),
		})
	}
	if errors.Is(err, service.ErrAssistantBusy) || errors.Is(err, service.ErrAssistantClosed) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
