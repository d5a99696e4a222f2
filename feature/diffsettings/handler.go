package diffsettings

import (
	"appserve/core/logger"
	"appserve/core/settings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the difference between live settings and the defaults.
type Handler struct {
	settings *settings.Settings
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(s *settings.Settings, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{settings: s, logger: logger}
}

// RegisterRoutes registers the settings routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/settings/diff", h.HandleDiff)
	app.Get("/settings/:name", h.HandleGet)
}

// HandleDiff returns every declaration that differs from the defaults.
// @Summary Settings Diff
// @Description Lists the settings whose values differ from the built-in defaults. Secrets are masked. Only available when DEBUG is set.
// @Tags settings
// @Produce json
// @Success 200 {object} map[string]interface{} "Changed settings"
// @Failure 404 {object} map[string]string "Not available"
// @Router /settings/diff [get]
func (h *Handler) HandleDiff(c *fiber.Ctx) error {
	if !h.settings.Debug {
		return debugOnly(c)
	}

	diff := h.settings.Diff(settings.New())
	logger.WithRayID(h.logger, c).Debug("Served settings diff", zap.Int("changed", len(diff)))
	return c.JSON(fiber.Map{
		"module":  h.settings.ModuleName,
		"changed": diff,
	})
}

// HandleGet returns a single declaration by its upper-case name.
// @Summary Get Setting
// @Description Returns the live value of one setting. Secrets are masked. Only available when DEBUG is set.
// @Tags settings
// @Produce json
// @Param name path string true "Setting name (e.g. 'TIME_ZONE')"
// @Success 200 {object} map[string]interface{} "Setting"
// @Failure 404 {object} map[string]string "Not available or unknown"
// @Router /settings/{name} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	if !h.settings.Debug {
		return debugOnly(c)
	}

	name := c.Params("name")
	value, ok := h.settings.Get(name)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "unknown setting " + name,
		})
	}
	return c.JSON(fiber.Map{
		"name":  name,
		"value": settings.Mask(name, value),
	})
}

func debugOnly(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "settings endpoints are only available when DEBUG is set",
	})
}
