package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"taskdash/internal/services"
)

func TestParseDateParam(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{"empty", "", false},
		{"date only", "2024-03-15", true},
		{"rfc3339", "2024-03-15T10:30:00Z", true},
		{"garbage", "not-a-date", false},
		{"partial", "2024-03", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseDateParam(tt.raw)
			if (got != nil) != tt.want {
				t.Errorf("parseDateParam(%q) = %v, want parsed=%v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestPaginationFromQuery(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		p := pagination(c)
		return c.JSON(fiber.Map{"page": p.CurrentPage(), "pages": p.TotalPages(25)})
	})

	tests := []struct {
		name      string
		query     string
		wantPage  float64
		wantPages float64
	}{
		{"defaults", "", 1, 3},
		{"explicit", "?page=3&limit=5", 3, 5},
		{"negative page", "?page=-2&limit=5", 1, 5},
		{"zero limit", "?page=2&limit=0", 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", "/"+tt.query, nil))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()

			var body map[string]float64
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body["page"] != tt.wantPage {
				t.Errorf("page = %v, want %v", body["page"], tt.wantPage)
			}
			if body["pages"] != tt.wantPages {
				t.Errorf("pages = %v, want %v", body["pages"], tt.wantPages)
			}
		})
	}
}

func TestFailErrorMapping(t *testing.T) {
	app := fiber.New()
	app.Get("/missing", func(c *fiber.Ctx) error {
		return fail(c, "Task", "get task", services.ErrNotFound)
	})
	app.Get("/broken", func(c *fiber.Ctx) error {
		return fail(c, "Task", "get task", errors.New("connection reset"))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	var body map[string]string
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["message"] != "Task not found" {
		t.Errorf("message = %q, want %q", body["message"], "Task not found")
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/broken", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}
}
