package models

import (
	"testing"
	"time"
)

func TestProjectHealth(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	// Roughly halfway through the timeline; expected progress ~50%
	mid := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		progress        float64
		expectedEndDate *time.Time
		now             time.Time
		want            HealthStatus
	}{
		{"no expected end date", 50, nil, mid, HealthUnknown},
		{"on track", 50, &end, mid, HealthGood},
		{"slightly ahead", 90, &end, mid, HealthGood},
		{"lagging", 40, &end, mid, HealthWarning},
		{"far behind", 10, &end, mid, HealthCritical},
		{"before start everything is good", 0, &end, start, HealthGood},
		{"zero-length timeline", 50, &start, mid, HealthUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProjectHealth(tt.progress, start, tt.expectedEndDate, tt.now)
			if got != tt.want {
				t.Errorf("ProjectHealth(%v, ...) = %q, want %q", tt.progress, got, tt.want)
			}
		})
	}
}

func TestProjectHealthDoesNotPanicOnDegenerateTimeline(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sameDay := start

	got := ProjectHealth(0, start, &sameDay, start.AddDate(0, 1, 0))
	if got != HealthUnknown {
		t.Errorf("expected unknown health for zero-length timeline, got %q", got)
	}

	inverted := start.AddDate(0, -1, 0)
	got = ProjectHealth(0, start, &inverted, start)
	if got != HealthUnknown {
		t.Errorf("expected unknown health for inverted timeline, got %q", got)
	}
}
