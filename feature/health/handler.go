package health

import (
	"context"

	"object-storage/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for health checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the health routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/health", h.HandleHealthCheck)
	app.Post("/health/fix", h.HandleFix)
}

// HandleHealthCheck reports whether the bucket exists. It never writes.
// @Summary Check Bucket
// @Description Checks that the configured bucket exists.
// @Tags health
// @Produce json
// @Success 200 {object} Report "Bucket exists"
// @Failure 503 {object} Report "Bucket missing"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /health [get]
func (h *Handler) HandleHealthCheck(c *fiber.Ctx) error {
	return h.respond(c, h.service.Check)
}

// HandleFix creates the bucket in the configured region when it is missing.
// @Summary Create Bucket
// @Description Creates the configured bucket when missing. Requires the API key.
// @Tags health
// @Produce json
// @Success 200 {object} Report "Bucket exists"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /health/fix [post]
func (h *Handler) HandleFix(c *fiber.Ctx) error {
	logger.WithRayID(h.service.logger, c).Info("Attempting to fix missing bucket")
	return h.respond(c, h.service.Fix)
}

func (h *Handler) respond(c *fiber.Ctx, check func(context.Context) (*Report, error)) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := check(c.Context())
	if err != nil {
		l.Error("Health check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if !report.Exists {
		l.Warn("Bucket missing", zap.String("bucket", report.Bucket))
		return c.Status(fiber.StatusServiceUnavailable).JSON(report)
	}
	return c.JSON(report)
}
