package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"taskdash/internal/services"
	"taskdash/internal/validation"
)

// MeetingHandler handles REST endpoints for meetings
type MeetingHandler struct {
	store     *services.MeetingStore
	analytics *services.AnalyticsService
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(store *services.MeetingStore, analytics *services.AnalyticsService) *MeetingHandler {
	return &MeetingHandler{store: store, analytics: analytics}
}

// List returns meetings filtered by status, organizer and calendar day
func (h *MeetingHandler) List(c *fiber.Ctx) error {
	filters := services.MeetingFilters{
		Status:     c.Query("status"),
		Organizer:  c.Query("organizer"),
		Date:       parseDateParam(c.Query("date")),
		Pagination: pagination(c),
	}

	meetings, total, err := h.store.List(c.Context(), filters)
	if err != nil {
		return serverError(c, "list meetings", err)
	}

	return c.JSON(fiber.Map{
		"meetings":    meetings,
		"totalPages":  filters.TotalPages(total),
		"currentPage": filters.CurrentPage(),
		"total":       total,
	})
}

// Get returns a single meeting
func (h *MeetingHandler) Get(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "Meeting")
	}

	meeting, err := h.store.GetByID(c.Context(), id)
	if err != nil {
		return fail(c, "Meeting", "get meeting", err)
	}
	return c.JSON(meeting)
}

// Create inserts a new meeting
func (h *MeetingHandler) Create(c *fiber.Ctx) error {
	var in validation.MeetingCreateInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if errs := validation.Validate(in); errs != nil {
		return validationFailed(c, errs)
	}

	meeting, err := h.store.Create(c.Context(), in)
	if err != nil {
		return serverError(c, "create meeting", err)
	}
	h.analytics.Invalidate()
	return c.Status(fiber.StatusCreated).JSON(meeting)
}

// Update applies a partial update to a meeting
func (h *MeetingHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "Meeting")
	}

	var in validation.MeetingUpdateInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if errs := validation.Validate(in); errs != nil {
		return validationFailed(c, errs)
	}

	meeting, err := h.store.Update(c.Context(), id, in)
	if err != nil {
		return fail(c, "Meeting", "update meeting", err)
	}
	h.analytics.Invalidate()
	return c.JSON(meeting)
}

// Delete removes a meeting
func (h *MeetingHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "Meeting")
	}

	if err := h.store.Delete(c.Context(), id); err != nil {
		return fail(c, "Meeting", "delete meeting", err)
	}
	h.analytics.Invalidate()
	return c.JSON(fiber.Map{"message": "Meeting deleted successfully"})
}

// Today returns today's scheduled and ongoing meetings
func (h *MeetingHandler) Today(c *fiber.Ctx) error {
	meetings, err := h.store.Today(c.Context(), time.Now())
	if err != nil {
		return serverError(c, "today's meetings", err)
	}
	return c.JSON(meetings)
}

// Upcoming returns the next week's meetings
func (h *MeetingHandler) Upcoming(c *fiber.Ctx) error {
	meetings, err := h.store.Upcoming(c.Context(), time.Now())
	if err != nil {
		return serverError(c, "upcoming meetings", err)
	}
	return c.JSON(meetings)
}

// Stats returns the meeting aggregate summary
func (h *MeetingHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.store.Stats(c.Context())
	if err != nil {
		return serverError(c, "meeting stats", err)
	}
	return c.JSON(stats)
}

// Register mounts the meeting routes
func (h *MeetingHandler) Register(router fiber.Router) {
	r := router.Group("/meetings")
	r.Get("/", h.List)
	r.Get("/stats", h.Stats)
	r.Get("/today", h.Today)
	r.Get("/upcoming", h.Upcoming)
	r.Get("/:id", h.Get)
	r.Post("/", h.Create)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}
