package rayid

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRayID(t *testing.T) {
	app := fiber.New()
	app.Use(New())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(LocalsKey).(string))
	})

	t.Run("Generates Id", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)

		rid := resp.Header.Get(Header)
		_, err = uuid.Parse(rid)
		assert.NoError(t, err)
	})

	t.Run("Reuses Incoming Id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(Header, "upstream-id")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "upstream-id", resp.Header.Get(Header))
	})
}
