package middleware

import (
	"github.com/lumumba11/carbon-tracker-dashboard/internal/session"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HeaderSessionID carries the client's session token. There is no
// authentication; the token only names which in-memory session the request
// operates on.
const HeaderSessionID = "X-Session-ID"

// SessionKey is the fiber context local the resolved *session.Session is
// stored under.
const SessionKey = "session"

// SessionMiddleware resolves the request's session. A missing, malformed,
// or expired token gets a fresh session; the effective session ID is always
// echoed back in the response header so the client can stick to it.
func SessionMiddleware(manager *session.Manager, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var sess *session.Session

		if token := c.Get(HeaderSessionID); token != "" {
			id, err := uuid.Parse(token)
			if err != nil {
				logger.Warn("Malformed session token", zap.String("token", token))
			} else if found, ok := manager.Get(id); ok {
				sess = found
			}
		}

		if sess == nil {
			sess = manager.Create()
		}

		c.Set(HeaderSessionID, sess.ID.String())
		c.Locals(SessionKey, sess)
		return c.Next()
	}
}
