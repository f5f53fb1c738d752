package services

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTaskFiltersQuery(t *testing.T) {
	projectID := primitive.NewObjectID()

	tests := []struct {
		name    string
		filters TaskFilters
		want    bson.M
	}{
		{"no filters match all", TaskFilters{}, bson.M{}},
		{"status only", TaskFilters{Status: "completed"}, bson.M{"status": "completed"}},
		{
			"status and priority",
			TaskFilters{Status: "new", Priority: "high"},
			bson.M{"status": "new", "priority": "high"},
		},
		{
			"project id",
			TaskFilters{Project: projectID.Hex()},
			bson.M{"project": projectID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filters.query()
			if len(got) != len(tt.want) {
				t.Fatalf("query() = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("query()[%q] = %v, want %v", k, got[k], v)
				}
			}
		})
	}
}

func TestMeetingFiltersQuery(t *testing.T) {
	t.Run("organizer is case-insensitive substring", func(t *testing.T) {
		q := MeetingFilters{Organizer: "john"}.query()
		rgx, ok := q["organizer"].(primitive.Regex)
		if !ok {
			t.Fatalf("organizer filter = %T, want primitive.Regex", q["organizer"])
		}
		if rgx.Pattern != "john" {
			t.Errorf("pattern = %q, want %q", rgx.Pattern, "john")
		}
		if rgx.Options != "i" {
			t.Errorf("options = %q, want %q", rgx.Options, "i")
		}
	})

	t.Run("organizer with regex metacharacters is escaped", func(t *testing.T) {
		q := MeetingFilters{Organizer: "j.doe (ops)"}.query()
		rgx := q["organizer"].(primitive.Regex)
		if rgx.Pattern == "j.doe (ops)" {
			t.Error("expected metacharacters to be escaped")
		}
	})

	t.Run("date expands to half-open day interval", func(t *testing.T) {
		day := time.Date(2024, 2, 10, 9, 15, 0, 0, time.UTC)
		q := MeetingFilters{Date: &day}.query()

		rng, ok := q["meetingDate"].(bson.M)
		if !ok {
			t.Fatalf("meetingDate filter = %T, want bson.M", q["meetingDate"])
		}
		start := rng["$gte"].(time.Time)
		end := rng["$lt"].(time.Time)
		if !start.Equal(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("start = %v", start)
		}
		if !end.Equal(time.Date(2024, 2, 11, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("end = %v", end)
		}
	})

	t.Run("empty filters match all", func(t *testing.T) {
		if q := (MeetingFilters{}).query(); len(q) != 0 {
			t.Errorf("query() = %v, want empty", q)
		}
	})
}

func TestReminderFiltersQuery(t *testing.T) {
	day := time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)
	q := ReminderFilters{Status: "pending", Category: "work", Date: &day}.query()

	if q["status"] != "pending" {
		t.Errorf("status = %v", q["status"])
	}
	if q["category"] != "work" {
		t.Errorf("category = %v", q["category"])
	}
	rng, ok := q["reminderDate"].(bson.M)
	if !ok {
		t.Fatalf("reminderDate filter = %T, want bson.M", q["reminderDate"])
	}
	if rng["$gte"].(time.Time).Day() != 1 {
		t.Errorf("unexpected range start %v", rng["$gte"])
	}
}

func TestGoalAndProjectFiltersQuery(t *testing.T) {
	q := GoalFilters{Status: "active", Category: "health"}.query()
	if q["status"] != "active" || q["category"] != "health" {
		t.Errorf("goal query = %v", q)
	}

	q = ProjectFilters{Status: "on-hold", Priority: "low"}.query()
	if q["status"] != "on-hold" || q["priority"] != "low" {
		t.Errorf("project query = %v", q)
	}

	if q := (GoalFilters{}).query(); len(q) != 0 {
		t.Errorf("empty goal query = %v", q)
	}
}
