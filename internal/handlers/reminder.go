package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"taskdash/internal/services"
	"taskdash/internal/validation"
)

// ReminderHandler handles REST endpoints for reminders
type ReminderHandler struct {
	store     *services.ReminderStore
	analytics *services.AnalyticsService
}

// NewReminderHandler creates a new reminder handler
func NewReminderHandler(store *services.ReminderStore, analytics *services.AnalyticsService) *ReminderHandler {
	return &ReminderHandler{store: store, analytics: analytics}
}

// List returns reminders filtered by status, category and calendar day
func (h *ReminderHandler) List(c *fiber.Ctx) error {
	filters := services.ReminderFilters{
		Status:     c.Query("status"),
		Category:   c.Query("category"),
		Date:       parseDateParam(c.Query("date")),
		Pagination: pagination(c),
	}

	reminders, total, err := h.store.List(c.Context(), filters)
	if err != nil {
		return serverError(c, "list reminders", err)
	}

	return c.JSON(fiber.Map{
		"reminders":   reminders,
		"totalPages":  filters.TotalPages(total),
		"currentPage": filters.CurrentPage(),
		"total":       total,
	})
}

// Get returns a single reminder
func (h *ReminderHandler) Get(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "Reminder")
	}

	reminder, err := h.store.GetByID(c.Context(), id)
	if err != nil {
		return fail(c, "Reminder", "get reminder", err)
	}
	return c.JSON(reminder)
}

// Create inserts a new reminder
func (h *ReminderHandler) Create(c *fiber.Ctx) error {
	var in validation.ReminderCreateInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if errs := validation.Validate(in); errs != nil {
		return validationFailed(c, errs)
	}

	reminder, err := h.store.Create(c.Context(), in)
	if err != nil {
		return serverError(c, "create reminder", err)
	}
	h.analytics.Invalidate()
	return c.Status(fiber.StatusCreated).JSON(reminder)
}

// Update applies a partial update to a reminder
func (h *ReminderHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "Reminder")
	}

	var in validation.ReminderUpdateInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if errs := validation.Validate(in); errs != nil {
		return validationFailed(c, errs)
	}

	reminder, err := h.store.Update(c.Context(), id, in)
	if err != nil {
		return fail(c, "Reminder", "update reminder", err)
	}
	h.analytics.Invalidate()
	return c.JSON(reminder)
}

// Delete removes a reminder
func (h *ReminderHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "Reminder")
	}

	if err := h.store.Delete(c.Context(), id); err != nil {
		return fail(c, "Reminder", "delete reminder", err)
	}
	h.analytics.Invalidate()
	return c.JSON(fiber.Map{"message": "Reminder deleted successfully"})
}

// Upcoming returns the next week's pending reminders
func (h *ReminderHandler) Upcoming(c *fiber.Ctx) error {
	reminders, err := h.store.Upcoming(c.Context(), time.Now())
	if err != nil {
		return serverError(c, "upcoming reminders", err)
	}
	return c.JSON(reminders)
}

// Stats returns the reminder aggregate summary
func (h *ReminderHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.store.Stats(c.Context())
	if err != nil {
		return serverError(c, "reminder stats", err)
	}
	return c.JSON(stats)
}

// Register mounts the reminder routes
func (h *ReminderHandler) Register(router fiber.Router) {
	r := router.Group("/reminders")
	r.Get("/", h.List)
	r.Get("/stats", h.Stats)
	r.Get("/upcoming", h.Upcoming)
	r.Get("/:id", h.Get)
	r.Post("/", h.Create)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}
