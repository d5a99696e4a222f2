// Package rayid tags every request with a unique RayID.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// Header carries the RayID on requests and responses.
	Header = "X-Ray-ID"
	// LocalsKey is the fiber.Ctx locals key holding the RayID.
	LocalsKey = "ray_id"
)

// New returns a middleware that reuses an incoming RayID or generates one,
// stores it in the context locals and echoes it in the response header.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(Header, rid)
		return c.Next()
	}
}
