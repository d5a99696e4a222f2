package health

import (
	"appserve/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the health report.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the health routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/health", h.HandleHealth)
}

// HandleHealth reports process and database health.
// @Summary Health Check
// @Description Reports the settings module, process name and database reachability. Responds 503 when the database is configured but unreachable.
// @Tags health
// @Produce json
// @Success 200 {object} health.Report "Healthy"
// @Failure 503 {object} health.Report "Degraded"
// @Router /health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	report := h.service.Check(c.Context())
	if report.Status != "ok" {
		logger.WithRayID(h.service.logger, c).Warn("Health check degraded",
			zap.String("database_error", report.DatabaseError))
		return c.Status(fiber.StatusServiceUnavailable).JSON(report)
	}
	return c.JSON(report)
}
