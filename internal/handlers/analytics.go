package handlers

import (
	"github.com/gofiber/fiber/v2"

	"taskdash/internal/services"
)

// AnalyticsHandler serves the dashboard and productivity rollups
type AnalyticsHandler struct {
	analytics *services.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analytics *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// Dashboard returns the cross-entity dashboard snapshot
func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	data, err := h.analytics.Dashboard(c.Context())
	if err != nil {
		return serverError(c, "dashboard analytics", err)
	}
	return c.JSON(data)
}

// Productivity returns per-day completion metrics for the requested period
func (h *AnalyticsHandler) Productivity(c *fiber.Ctx) error {
	days := c.QueryInt("period", 7)
	if days <= 0 {
		days = 7
	}

	data, err := h.analytics.Productivity(c.Context(), days)
	if err != nil {
		return serverError(c, "productivity analytics", err)
	}
	return c.JSON(data)
}

// Register mounts the analytics routes
func (h *AnalyticsHandler) Register(router fiber.Router) {
	r := router.Group("/analytics")
	r.Get("/dashboard", h.Dashboard)
	r.Get("/productivity", h.Productivity)
}
