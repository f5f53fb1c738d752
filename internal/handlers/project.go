package handlers

import (
	"github.com/gofiber/fiber/v2"

	"taskdash/internal/models"
	"taskdash/internal/services"
	"taskdash/internal/validation"
)

// ProjectHandler handles REST endpoints for projects and their milestones
type ProjectHandler struct {
	store     *services.ProjectStore
	analytics *services.AnalyticsService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(store *services.ProjectStore, analytics *services.AnalyticsService) *ProjectHandler {
	return &ProjectHandler{store: store, analytics: analytics}
}

// List returns projects with optional status/priority filters
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	filters := services.ProjectFilters{
		Status:     c.Query("status"),
		Priority:   c.Query("priority"),
		Pagination: pagination(c),
	}

	projects, total, err := h.store.List(c.Context(), filters)
	if err != nil {
		return serverError(c, "list projects", err)
	}

	return c.JSON(fiber.Map{
		"projects":    projects,
		"totalPages":  filters.TotalPages(total),
		"currentPage": filters.CurrentPage(),
		"total":       total,
	})
}

// Get returns a single project with its tasks and derived health
func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "Project")
	}

	detail, err := h.store.GetWithTasks(c.Context(), id)
	if err != nil {
		return fail(c, "Project", "get project", err)
	}
	return c.JSON(detail)
}

// Create inserts a new project
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var in validation.ProjectCreateInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if errs := validation.Validate(in); errs != nil {
		return validationFailed(c, errs)
	}

	project, err := h.store.Create(c.Context(), in)
	if err != nil {
		return serverError(c, "create project", err)
	}
	h.analytics.Invalidate()
	return c.Status(fiber.StatusCreated).JSON(project)
}

// Update applies a partial update to a project
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "Project")
	}

	var in validation.ProjectUpdateInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if errs := validation.Validate(in); errs != nil {
		return validationFailed(c, errs)
	}

	project, err := h.store.Update(c.Context(), id, in)
	if err != nil {
		return fail(c, "Project", "update project", err)
	}
	h.analytics.Invalidate()
	return c.JSON(project)
}

// Delete removes a project and cascades to its tasks
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "Project")
	}

	if err := h.store.Delete(c.Context(), id); err != nil {
		return fail(c, "Project", "delete project", err)
	}
	h.analytics.Invalidate()
	return c.JSON(fiber.Map{"message": "Project deleted successfully"})
}

// RecalculateProgress sets the project's progress from its tasks' mean
func (h *ProjectHandler) RecalculateProgress(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "Project")
	}

	project, hasTasks, err := h.store.RecalculateProgress(c.Context(), id)
	if err != nil {
		return fail(c, "Project", "recalculate progress", err)
	}
	if !hasTasks {
		return c.JSON(fiber.Map{"message": "No tasks found for this project"})
	}
	h.analytics.Invalidate()
	return c.JSON(project)
}

// AddMilestone appends a milestone to a project
func (h *ProjectHandler) AddMilestone(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "Project")
	}

	var in validation.MilestoneCreateInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if errs := validation.Validate(in); errs != nil {
		return validationFailed(c, errs)
	}

	project, err := h.store.AddMilestone(c.Context(), id, in)
	if err != nil {
		return fail(c, "Project", "add milestone", err)
	}
	return c.JSON(project)
}

// UpdateMilestone changes one milestone's status
func (h *ProjectHandler) UpdateMilestone(c *fiber.Ctx) error {
	projectID, ok := parseID(c, "projectId")
	if !ok {
		return invalidID(c, "Project")
	}
	milestoneID, ok := parseID(c, "milestoneId")
	if !ok {
		return notFound(c, "Milestone")
	}

	var in validation.MilestoneStatusInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if errs := validation.Validate(in); errs != nil {
		return validationFailed(c, errs)
	}

	project, err := h.store.UpdateMilestoneStatus(c.Context(), projectID, milestoneID, models.MilestoneStatus(in.Status))
	if err != nil {
		return fail(c, "Milestone", "update milestone", err)
	}
	return c.JSON(project)
}

// Stats returns the project aggregate summary
func (h *ProjectHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.store.Stats(c.Context())
	if err != nil {
		return serverError(c, "project stats", err)
	}
	return c.JSON(stats)
}

// Register mounts the project routes
func (h *ProjectHandler) Register(router fiber.Router) {
	r := router.Group("/projects")
	r.Get("/", h.List)
	r.Get("/stats", h.Stats)
	r.Get("/:id", h.Get)
	r.Post("/", h.Create)
	r.Put("/:id", h.Update)
	r.Put("/:id/progress", h.RecalculateProgress)
	r.Post("/:id/milestones", h.AddMilestone)
	r.Put("/:projectId/milestones/:milestoneId", h.UpdateMilestone)
	r.Delete("/:id", h.Delete)
}
