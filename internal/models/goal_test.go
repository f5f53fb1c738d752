package models

import (
	"testing"
	"time"
)

func TestGoalProgress(t *testing.T) {
	tests := []struct {
		name         string
		currentValue float64
		targetValue  float64
		want         int
	}{
		{"zero target", 5, 0, 0},
		{"zero current", 0, 12, 0},
		{"halfway", 6, 12, 50},
		{"rounds up", 1, 3, 33},
		{"rounds half away from zero", 1, 8, 13},
		{"exactly complete", 12, 12, 100},
		{"overshoot clamps to 100", 20, 12, 100},
		{"fractional values", 2.5, 10, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GoalProgress(tt.currentValue, tt.targetValue)
			if got != tt.want {
				t.Errorf("GoalProgress(%v, %v) = %d, want %d", tt.currentValue, tt.targetValue, got, tt.want)
			}
		})
	}
}

func TestGoalIsOverdue(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -1)
	future := now.AddDate(0, 0, 1)

	tests := []struct {
		name       string
		status     GoalStatus
		targetDate time.Time
		want       bool
	}{
		{"active past target", GoalStatusActive, past, true},
		{"active before target", GoalStatusActive, future, false},
		{"completed past target never overdue", GoalStatusCompleted, past, false},
		{"paused past target", GoalStatusPaused, past, true},
		{"target exactly now", GoalStatusActive, now, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GoalIsOverdue(tt.status, tt.targetDate, now)
			if got != tt.want {
				t.Errorf("GoalIsOverdue(%q, %v) = %v, want %v", tt.status, tt.targetDate, got, tt.want)
			}
		})
	}
}

func TestGoalToResponse(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	goal := Goal{
		Title:        "Read 12 books",
		TargetValue:  12,
		CurrentValue: 3,
		Status:       GoalStatusActive,
		TargetDate:   now.AddDate(0, 6, 0),
	}

	resp := goal.ToResponse(now)
	if resp.Progress != 25 {
		t.Errorf("expected progress 25, got %d", resp.Progress)
	}
	if resp.IsOverdue {
		t.Error("expected goal not to be overdue")
	}

	goal.CurrentValue = 12
	goal.Status = GoalStatusCompleted
	goal.TargetDate = now.AddDate(0, -1, 0)

	resp = goal.ToResponse(now)
	if resp.Progress != 100 {
		t.Errorf("expected progress 100, got %d", resp.Progress)
	}
	if resp.IsOverdue {
		t.Error("completed goal must never be overdue")
	}
}
