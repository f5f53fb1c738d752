package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderRequestID is the request correlation header
const HeaderRequestID = "X-Request-ID"

// RequestID attaches a correlation id to every request, honoring one
// supplied by the client.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals("requestID", id)
		c.Set(HeaderRequestID, id)
		return c.Next()
	}
}
