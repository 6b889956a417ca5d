package library

import (
	"library-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the library feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the library routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/library")
	group.Post("/sync", h.HandleSync)
	group.Get("/status", h.HandleStatus)
}

// HandleSync runs a full sync pass and returns the outcome summary.
// Pass ?dry_run=true to plan without writing.
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	dryRun := c.QueryBool("dry_run")

	result, err := h.service.Run(c.Context(), dryRun)
	if err != nil {
		l.Error("Sync run failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(result)
}

// HandleStatus returns the outcome of the most recent run.
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	result := h.service.LastResult()
	if result == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no sync run yet",
		})
	}
	return c.JSON(result)
}
