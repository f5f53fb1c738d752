package handlers

import (
	"github.com/gofiber/fiber/v2"

	"taskdash/internal/services"
	"taskdash/internal/validation"
)

// TaskHandler handles REST endpoints for tasks
type TaskHandler struct {
	store     *services.TaskStore
	analytics *services.AnalyticsService
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(store *services.TaskStore, analytics *services.AnalyticsService) *TaskHandler {
	return &TaskHandler{store: store, analytics: analytics}
}

// List returns tasks with optional status/priority/project filters
func (h *TaskHandler) List(c *fiber.Ctx) error {
	filters := services.TaskFilters{
		Status:     c.Query("status"),
		Priority:   c.Query("priority"),
		Project:    c.Query("project"),
		Pagination: pagination(c),
	}

	tasks, total, err := h.store.List(c.Context(), filters)
	if err != nil {
		return serverError(c, "list tasks", err)
	}

	return c.JSON(fiber.Map{
		"tasks":       tasks,
		"totalPages":  filters.TotalPages(total),
		"currentPage": filters.CurrentPage(),
		"total":       total,
	})
}

// Get returns a single task
func (h *TaskHandler) Get(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "Task")
	}

	task, err := h.store.GetByID(c.Context(), id)
	if err != nil {
		return fail(c, "Task", "get task", err)
	}
	return c.JSON(task)
}

// Create inserts a new task
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var in validation.TaskCreateInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if errs := validation.Validate(in); errs != nil {
		return validationFailed(c, errs)
	}

	task, err := h.store.Create(c.Context(), in)
	if err != nil {
		return serverError(c, "create task", err)
	}
	h.analytics.Invalidate()
	return c.Status(fiber.StatusCreated).JSON(task)
}

// Update applies a partial update to a task
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "Task")
	}

	var in validation.TaskUpdateInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if errs := validation.Validate(in); errs != nil {
		return validationFailed(c, errs)
	}

	task, err := h.store.Update(c.Context(), id, in)
	if err != nil {
		return fail(c, "Task", "update task", err)
	}
	h.analytics.Invalidate()
	return c.JSON(task)
}

// Delete removes a task
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "Task")
	}

	if err := h.store.Delete(c.Context(), id); err != nil {
		return fail(c, "Task", "delete task", err)
	}
	h.analytics.Invalidate()
	return c.JSON(fiber.Map{"message": "Task deleted successfully"})
}

// Stats returns the task aggregate summary
func (h *TaskHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.store.Stats(c.Context())
	if err != nil {
		return serverError(c, "task stats", err)
	}
	return c.JSON(stats)
}

// Register mounts the task routes
func (h *TaskHandler) Register(router fiber.Router) {
	r := router.Group("/tasks")
	r.Get("/", h.List)
	r.Get("/stats", h.Stats)
	r.Get("/:id", h.Get)
	r.Post("/", h.Create)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}
