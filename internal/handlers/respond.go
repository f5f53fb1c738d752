package handlers

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskdash/internal/services"
	"taskdash/internal/validation"
)

// Shared response helpers. Error bodies keep the wire format the dashboard
// frontend expects: {"message": ...} for not-found and storage failures,
// {"errors": [...]} for field-level validation failures.

func parseID(c *fiber.Ctx, param string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Params(param))
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

func invalidID(c *fiber.Ctx, entity string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": entity + " not found"})
}

func notFound(c *fiber.Ctx, entity string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": entity + " not found"})
}

func validationFailed(c *fiber.Ctx, errs []validation.FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
}

func serverError(c *fiber.Ctx, op string, err error) error {
	slog.Error("request failed", "op", op, "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
}

// fail maps a store error to the right response for the entity
func fail(c *fiber.Ctx, entity, op string, err error) error {
	if errors.Is(err, services.ErrNotFound) {
		return notFound(c, entity)
	}
	return serverError(c, op, err)
}

// parseDateParam parses an optional date query parameter. Unparseable
// values impose no constraint, like any other absent filter.
func parseDateParam(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

func pagination(c *fiber.Ctx) services.Pagination {
	return services.Pagination{
		Page:  c.QueryInt("page", 1),
		Limit: c.QueryInt("limit", 10),
	}
}
