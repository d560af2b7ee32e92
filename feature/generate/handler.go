package generate

import (
	"strconv"

	"i18next-typesafe/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the rendered key type.
type Handler struct {
	generator *Generator
}

// NewHandler creates a new HTTP handler.
func NewHandler(g *Generator) *Handler {
	return &Handler{generator: g}
}

// RegisterRoutes registers the generate routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/generate", h.HandleGenerate)
}

// HandleGenerate renders the declaration for the current input without writing it.
// @Summary Render Key Type
// @Description Render the TranslationKey union for the canonical locale.
// @Tags generate
// @Produce plain
// @Success 200 {string} string "Type declaration"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /generate [get]
func (h *Handler) HandleGenerate(c *fiber.Ctx) error {
	text, n, err := h.generator.Artifact()
	if err != nil {
		logger.WithRayID(h.generator.logger, c).Error("Key type rendering failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	c.Set("X-Total-Keys", strconv.Itoa(n))
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(text)
}
