package handlers

import (
	"github.com/gofiber/fiber/v2"

	"taskdash/internal/services"
	"taskdash/internal/validation"
)

// GoalHandler handles REST endpoints for goals
type GoalHandler struct {
	store     *services.GoalStore
	analytics *services.AnalyticsService
}

// NewGoalHandler creates a new goal handler
func NewGoalHandler(store *services.GoalStore, analytics *services.AnalyticsService) *GoalHandler {
	return &GoalHandler{store: store, analytics: analytics}
}

// List returns goals with derived progress and overdue flags
func (h *GoalHandler) List(c *fiber.Ctx) error {
	filters := services.GoalFilters{
		Status:     c.Query("status"),
		Category:   c.Query("category"),
		Pagination: pagination(c),
	}

	goals, total, err := h.store.List(c.Context(), filters)
	if err != nil {
		return serverError(c, "list goals", err)
	}

	return c.JSON(fiber.Map{
		"goals":       goals,
		"totalPages":  filters.TotalPages(total),
		"currentPage": filters.CurrentPage(),
		"total":       total,
	})
}

// Get returns a single goal
func (h *GoalHandler) Get(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "Goal")
	}

	goal, err := h.store.GetByID(c.Context(), id)
	if err != nil {
		return fail(c, "Goal", "get goal", err)
	}
	return c.JSON(goal)
}

// Create inserts a new goal
func (h *GoalHandler) Create(c *fiber.Ctx) error {
	var in validation.GoalCreateInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if errs := validation.Validate(in); errs != nil {
		return validationFailed(c, errs)
	}

	goal, err := h.store.Create(c.Context(), in)
	if err != nil {
		return serverError(c, "create goal", err)
	}
	h.analytics.Invalidate()
	return c.Status(fiber.StatusCreated).JSON(goal)
}

// Update applies a partial update to a goal
func (h *GoalHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "Goal")
	}

	var in validation.GoalUpdateInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if errs := validation.Validate(in); errs != nil {
		return validationFailed(c, errs)
	}

	goal, err := h.store.Update(c.Context(), id, in)
	if err != nil {
		return fail(c, "Goal", "update goal", err)
	}
	h.analytics.Invalidate()
	return c.JSON(goal)
}

// UpdateProgress sets the goal's current value, completing it when the
// target is reached.
func (h *GoalHandler) UpdateProgress(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "Goal")
	}

	var in validation.GoalProgressInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if errs := validation.Validate(in); errs != nil {
		return validationFailed(c, errs)
	}

	goal, err := h.store.UpdateProgress(c.Context(), id, *in.CurrentValue)
	if err != nil {
		return fail(c, "Goal", "update goal progress", err)
	}
	h.analytics.Invalidate()
	return c.JSON(goal)
}

// Delete removes a goal
func (h *GoalHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "Goal")
	}

	if err := h.store.Delete(c.Context(), id); err != nil {
		return fail(c, "Goal", "delete goal", err)
	}
	h.analytics.Invalidate()
	return c.JSON(fiber.Map{"message": "Goal deleted successfully"})
}

// Stats returns the goal aggregate summary
func (h *GoalHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.store.Stats(c.Context())
	if err != nil {
		return serverError(c, "goal stats", err)
	}
	return c.JSON(stats)
}

// Register mounts the goal routes
func (h *GoalHandler) Register(router fiber.Router) {
	r := router.Group("/goals")
	r.Get("/", h.List)
	r.Get("/stats", h.Stats)
	r.Get("/:id", h.Get)
	r.Post("/", h.Create)
	r.Put("/:id", h.Update)
	r.Put("/:id/progress", h.UpdateProgress)
	r.Delete("/:id", h.Delete)
}
