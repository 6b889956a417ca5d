// Package rayid provides request-id middleware for the Fiber server.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the header carrying the request identifier.
const HeaderName = "X-Ray-Id"

// New returns middleware that assigns each request a ray id. An incoming id
// is kept so upstream proxies can correlate; otherwise a fresh one is
// generated. The id is stored in locals for the logger and echoed back in
// the response header.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
