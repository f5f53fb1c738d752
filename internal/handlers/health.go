package handlers

import (
	"github.com/gofiber/fiber/v2"

	"taskdash/internal/database"
)

// HealthHandler reports process and database liveness
type HealthHandler struct {
	db *database.MongoDB
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *database.MongoDB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check pings the database and reports server status
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	if err := h.db.Ping(c.Context()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"message": "Database unavailable",
		})
	}
	return c.JSON(fiber.Map{"message": "Server is running!"})
}

// Register mounts the health route
func (h *HealthHandler) Register(router fiber.Router) {
	router.Get("/health", h.Check)
}
