package validation

import (
	"errors"

	"i18next-typesafe/core/logger"
	"i18next-typesafe/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for validation reports.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the validation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/validate")
	group.Get("/", h.HandleValidateAll)
	group.Get("/sync", h.HandleValidateSync)
	group.Get("/blocks", h.HandleValidateBlocks)
	group.Get("/keys", h.HandleValidateKeys)
}

// HandleValidateAll runs every check concurrently.
// @Summary Run All Validations
// @Description Run sync, unused-block and unused-key checks in parallel.
// @Tags validation
// @Produce json
// @Success 200 {object} validation.Summary "Combined report"
// @Router /validate [get]
func (h *Handler) HandleValidateAll(c *fiber.Ctx) error {
	summary := h.service.RunAllConcurrent(c.UserContext())
	return c.JSON(summary)
}

// HandleValidateSync compares the configured languages.
// @Summary Validate Sync
// @Description Compare key sets across languages.
// @Tags validation
// @Produce json
// @Success 200 {object} validation.SyncReport "Sync report"
// @Failure 422 {object} map[string]string "Fewer than two languages loaded"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /validate/sync [get]
func (h *Handler) HandleValidateSync(c *fiber.Ctx) error {
	report, err := h.service.ValidateSync(c.UserContext())
	if err != nil {
		return h.fail(c, "Sync validation failed", err)
	}
	return c.JSON(report)
}

// HandleValidateBlocks reports unused blocks.
// @Summary Validate Blocks
// @Description Find blocks of the canonical locale not referenced in source.
// @Tags validation
// @Produce json
// @Success 200 {object} validation.BlocksReport "Blocks report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /validate/blocks [get]
func (h *Handler) HandleValidateBlocks(c *fiber.Ctx) error {
	report, err := h.service.ValidateBlocks(c.UserContext())
	if err != nil {
		return h.fail(c, "Block validation failed", err)
	}
	return c.JSON(report)
}

// HandleValidateKeys reports unused keys.
// @Summary Validate Keys
// @Description Find keys of the canonical locale never called in source.
// @Tags validation
// @Produce json
// @Success 200 {object} validation.KeysReport "Keys report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /validate/keys [get]
func (h *Handler) HandleValidateKeys(c *fiber.Ctx) error {
	report, err := h.service.ValidateKeys(c.UserContext())
	if err != nil {
		return h.fail(c, "Key validation failed", err)
	}
	return c.JSON(report)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	l := logger.WithRayID(h.service.logger, c)
	status := fiber.StatusInternalServerError
	if errors.Is(err, reconcile.ErrTooFewLanguages) {
		status = fiber.StatusUnprocessableEntity
	}
	l.Error(msg, zap.Error(err))
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
