package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// Header carries the API key.
const Header = "X-API-Key"

// New returns a middleware requiring the X-API-Key header to equal apiKey.
// An empty apiKey disables the check.
func New(apiKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if apiKey == "" {
			return c.Next()
		}
		got := c.Get(Header)
		if subtle.ConstantTimeCompare([]byte(got), []byte(apiKey)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or missing API key",
			})
		}
		return c.Next()
	}
}
