package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header is the response header carrying the request's RayID.
const Header = "X-Ray-ID"

// New creates a middleware that tags every request with a unique RayID.
// The id is stored in locals for logger correlation and echoed back to
// the client in the response headers.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := uuid.NewString()
		c.Locals("ray_id", rid)
		c.Set(Header, rid)
		return c.Next()
	}
}
