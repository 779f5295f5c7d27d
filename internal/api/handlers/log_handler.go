package handlers

import (
	"github.com/lumumba11/carbon-tracker-dashboard/internal/dto"
	"github.com/lumumba11/carbon-tracker-dashboard/internal/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type LogHandler struct {
	logger *zap.Logger
}

func NewLogHandler(logger *zap.Logger) *LogHandler {
	return &LogHandler{logger: logger}
}

// AddLog appends one activity entry to the session log. The entry's CO2e
// is computed and frozen here; invalid quantity or category is a 400 and
// nothing is logged.
func (h *LogHandler) AddLog(c *fiber.Ctx) error {
	sess, err := sessionFrom(c)
	if err != nil {
		return err
	}

	var req dto.AddLogRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	category, err := models.ParseCategory(req.Category)
	if err != nil {
		return respondError(c, err)
	}

	entry, err := sess.Log.Append(category, req.Quantity)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewLogEntryResponse(entry))
}

// ListLogs returns entries newest first, capped by the limit query
// parameter (default 50).
func (h *LogHandler) ListLogs(c *fiber.Ctx) error {
	sess, err := sessionFrom(c)
	if err != nil {
		return err
	}

	limit := c.QueryInt("limit", 50)
	return c.JSON(dto.NewLogEntryResponses(sess.Log.Recent(limit)))
}
