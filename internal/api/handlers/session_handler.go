package handlers

import (
	"github.com/lumumba11/carbon-tracker-dashboard/internal/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SessionHandler struct {
	manager *session.Manager
	logger  *zap.Logger
}

func NewSessionHandler(manager *session.Manager, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{manager: manager, logger: logger}
}

// End discards the request's session: the log, goal, and chat history are
// dropped and pending assistant timers are cancelled.
func (h *SessionHandler) End(c *fiber.Ctx) error {
	sess, err := sessionFrom(c)
	if err != nil {
		return err
	}
	h.manager.End(sess.ID)
	return c.JSON(fiber.Map{"ended": true})
}
