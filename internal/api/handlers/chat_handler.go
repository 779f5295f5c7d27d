package handlers

import (
	"github.com/lumumba11/carbon-tracker-dashboard/internal/dto"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ChatHandler struct {
	logger *zap.Logger
}

func NewChatHandler(logger *zap.Logger) *ChatHandler {
	return &ChatHandler{logger: logger}
}

// Open opens the chat window. The first open with empty history schedules
// the welcome message after the pacing delay.
func (h *ChatHandler) Open(c *fiber.Ctx) error {
	sess, err := sessionFrom(c)
	if err != nil {
		return err
	}
	sess.Assistant.Open()
	return c.JSON(fiber.Map{"open": true})
}

// Close closes the chat window; history is retained for the next open.
func (h *ChatHandler) Close(c *fiber.Ctx) error {
	sess, err := sessionFrom(c)
	if err != nil {
		return err
	}
	sess.Assistant.Close()
	return c.JSON(fiber.Map{"open": false})
}

// Submit accepts a user message. The reply is composed after the typing
// delay and lands in the history; 202 reflects that it is not in this
// response. Submissions while a reply is in flight get a 409.
func (h *ChatHandler) Submit(c *fiber.Ctx) error {
	sess, err := sessionFrom(c)
	if err != nil {
		return err
	}

	var req dto.SubmitChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	msg, err := sess.Assistant.Submit(req.Text)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(dto.NewChatMessageResponse(msg))
}

// QuickAction submits a quick action's canonical query through the same
// pipeline as typed input.
func (h *ChatHandler) QuickAction(c *fiber.Ctx) error {
	sess, err := sessionFrom(c)
	if err != nil {
		return err
	}

	var req dto.QuickActionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	msg, err := sess.Assistant.SubmitQuickAction(req.Query)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(dto.NewChatMessageResponse(msg))
}

// History returns the assistant state and the full message history.
func (h *ChatHandler) History(c *fiber.Ctx) error {
	sess, err := sessionFrom(c)
	if err != nil {
		return err
	}

	return c.JSON(dto.ChatHistoryResponse{
		Open:      sess.Assistant.IsOpen(),
		Composing: sess.Assistant.IsComposing(),
		Messages:  dto.NewChatMessageResponses(sess.Assistant.Messages()),
	})
}
