package validation

import (
	"encoding/json"
	"testing"
	"time"
)

func hasFieldError(errs []FieldError, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}

func TestTaskCreateInput(t *testing.T) {
	progress := 150

	tests := []struct {
		name      string
		input     TaskCreateInput
		wantField string
	}{
		{
			"missing title",
			TaskCreateInput{AssignedBy: "alice", AssignedTo: "bob"},
			"title",
		},
		{
			"missing assignedBy",
			TaskCreateInput{Title: "write docs", AssignedTo: "bob"},
			"assignedBy",
		},
		{
			"invalid status",
			TaskCreateInput{Title: "write docs", AssignedBy: "alice", AssignedTo: "bob", Status: "done"},
			"status",
		},
		{
			"progress out of range",
			TaskCreateInput{Title: "write docs", AssignedBy: "alice", AssignedTo: "bob", Progress: &progress},
			"progress",
		},
		{
			"bad project id",
			TaskCreateInput{Title: "write docs", AssignedBy: "alice", AssignedTo: "bob", Project: "not-an-id"},
			"project",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(tt.input)
			if !hasFieldError(errs, tt.wantField) {
				t.Errorf("expected violation on %q, got %v", tt.wantField, errs)
			}
		})
	}

	valid := TaskCreateInput{Title: "write docs", AssignedBy: "alice", AssignedTo: "bob", Status: "inprogress", Priority: "high"}
	if errs := Validate(valid); errs != nil {
		t.Errorf("expected valid input, got %v", errs)
	}
}

func TestMeetingTimeValidation(t *testing.T) {
	duration := 60
	base := MeetingCreateInput{
		Title:     "standup",
		Organizer: "alice",
		Duration:  &duration,
		MeetingDate: Date{
			Time: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), Set: true, Valid: true,
		},
	}

	tests := []struct {
		name      string
		start     string
		end       string
		wantValid bool
	}{
		{"valid times", "09:00", "10:30", true},
		{"single digit hour", "9:00", "10:00", true},
		{"hour out of range", "24:00", "25:00", false},
		{"minutes out of range", "09:60", "10:00", false},
		{"not a time", "morning", "10:00", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			in.StartTime = tt.start
			in.EndTime = tt.end
			errs := Validate(in)
			if tt.wantValid && errs != nil {
				t.Errorf("expected valid input, got %v", errs)
			}
			if !tt.wantValid && len(errs) == 0 {
				t.Error("expected violations, got none")
			}
		})
	}
}

func TestMeetingParticipants(t *testing.T) {
	duration := 30
	in := MeetingCreateInput{
		Title:       "kickoff",
		Organizer:   "alice",
		StartTime:   "09:00",
		EndTime:     "09:30",
		Duration:    &duration,
		MeetingDate: Date{Time: time.Now(), Set: true, Valid: true},
		Participants: []ParticipantInput{
			{Name: "bob", Email: "bob@example.com", Status: "accepted"},
			{Name: "", Email: "not-an-email", Status: "perhaps"},
		},
	}

	errs := Validate(in)
	if !hasFieldError(errs, "participants[1].name") {
		t.Errorf("expected violation on participants[1].name, got %v", errs)
	}
	if !hasFieldError(errs, "participants[1].email") {
		t.Errorf("expected violation on participants[1].email, got %v", errs)
	}
	if !hasFieldError(errs, "participants[1].status") {
		t.Errorf("expected violation on participants[1].status, got %v", errs)
	}
}

func TestReminderRecurringType(t *testing.T) {
	base := ReminderCreateInput{
		Title:        "pay rent",
		ReminderTime: "08:00",
		ReminderDate: Date{Time: time.Now(), Set: true, Valid: true},
	}

	in := base
	in.IsRecurring = true
	errs := Validate(in)
	if !hasFieldError(errs, "recurringType") {
		t.Errorf("expected recurringType violation for recurring reminder, got %v", errs)
	}

	in.RecurringType = "monthly"
	if errs := Validate(in); errs != nil {
		t.Errorf("expected valid recurring reminder, got %v", errs)
	}

	// Non-recurring reminders don't need a recurring type
	if errs := Validate(base); errs != nil {
		t.Errorf("expected valid one-off reminder, got %v", errs)
	}
}

func TestReminderUpdateRecurringType(t *testing.T) {
	recurring := true
	in := ReminderUpdateInput{IsRecurring: &recurring}
	errs := Validate(in)
	if !hasFieldError(errs, "recurringType") {
		t.Errorf("expected recurringType violation, got %v", errs)
	}

	rt := "weekly"
	in.RecurringType = &rt
	if errs := Validate(in); errs != nil {
		t.Errorf("expected valid update, got %v", errs)
	}
}

func TestGoalCreateInput(t *testing.T) {
	target := 12.0
	in := GoalCreateInput{
		Title:       "Read 12 books",
		TargetValue: &target,
		StartDate:   Date{Time: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Set: true, Valid: true},
		TargetDate:  Date{Time: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), Set: true, Valid: true},
	}
	if errs := Validate(in); errs != nil {
		t.Errorf("expected valid goal, got %v", errs)
	}

	in.TargetValue = nil
	if errs := Validate(in); !hasFieldError(errs, "targetValue") {
		t.Errorf("expected targetValue violation, got %v", errs)
	}

	// Zero targets are allowed: progress derivation guards the division
	zero := 0.0
	in.TargetValue = &zero
	if errs := Validate(in); errs != nil {
		t.Errorf("expected zero target to be valid, got %v", errs)
	}
}

func TestDateUnmarshal(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantSet   bool
		wantValid bool
	}{
		{"rfc3339", `"2024-02-10T15:04:05Z"`, true, true},
		{"bare date", `"2024-02-10"`, true, true},
		{"no timezone", `"2024-02-10T15:04:05"`, true, true},
		{"null", `null`, false, false},
		{"empty string", `""`, false, false},
		{"garbage", `"next tuesday"`, true, false},
		{"wrong type", `42`, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			if err := json.Unmarshal([]byte(tt.raw), &d); err != nil {
				t.Fatalf("unmarshal returned error: %v", err)
			}
			if d.Set != tt.wantSet || d.Valid != tt.wantValid {
				t.Errorf("got Set=%v Valid=%v, want Set=%v Valid=%v", d.Set, d.Valid, tt.wantSet, tt.wantValid)
			}
		})
	}
}

func TestDateValidationRules(t *testing.T) {
	// datereq on project startDate
	in := ProjectCreateInput{Name: "Apollo", ProjectManager: "alice"}
	errs := Validate(in)
	if !hasFieldError(errs, "startDate") {
		t.Errorf("expected startDate violation, got %v", errs)
	}

	// dateopt: invalid-but-present optional date must be rejected
	in.StartDate = Date{Time: time.Now(), Set: true, Valid: true}
	in.ExpectedEndDate = Date{Set: true, Valid: false}
	errs = Validate(in)
	if !hasFieldError(errs, "expectedEndDate") {
		t.Errorf("expected expectedEndDate violation, got %v", errs)
	}
}
