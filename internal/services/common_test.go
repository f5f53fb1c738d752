package services

import (
	"testing"
	"time"
)

func TestPaginationNormalization(t *testing.T) {
	tests := []struct {
		name     string
		p        Pagination
		wantSkip int64
		wantTake int64
		wantPage int
	}{
		{"defaults", Pagination{}, 0, 10, 1},
		{"first page", Pagination{Page: 1, Limit: 10}, 0, 10, 1},
		{"third page", Pagination{Page: 3, Limit: 10}, 20, 10, 3},
		{"custom limit", Pagination{Page: 2, Limit: 25}, 25, 25, 2},
		{"zero limit falls back", Pagination{Page: 2, Limit: 0}, 10, 10, 2},
		{"negative values fall back", Pagination{Page: -1, Limit: -5}, 0, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Skip(); got != tt.wantSkip {
				t.Errorf("Skip() = %d, want %d", got, tt.wantSkip)
			}
			if got := tt.p.Take(); got != tt.wantTake {
				t.Errorf("Take() = %d, want %d", got, tt.wantTake)
			}
			if got := tt.p.CurrentPage(); got != tt.wantPage {
				t.Errorf("CurrentPage() = %d, want %d", got, tt.wantPage)
			}
		})
	}
}

func TestPaginationTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		total int64
		want  int
	}{
		{"empty", 10, 0, 0},
		{"exact fit", 10, 20, 2},
		{"partial last page", 10, 25, 3},
		{"single record", 10, 1, 1},
		{"default limit", 0, 25, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pagination{Limit: tt.limit}
			if got := p.TotalPages(tt.total); got != tt.want {
				t.Errorf("TotalPages(%d) = %d, want %d", tt.total, got, tt.want)
			}
		})
	}
}

func TestDayRange(t *testing.T) {
	day := time.Date(2024, 2, 10, 15, 30, 45, 0, time.UTC)
	start, end := dayRange(day)

	wantStart := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, 2, 11, 0, 0, 0, 0, time.UTC)

	if !start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", start, wantStart)
	}
	if !end.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", end, wantEnd)
	}

	// A meeting at 00:00 belongs to the day, one at 00:00 next day does not
	if wantStart.Before(start) || wantStart.After(end) {
		t.Error("start of day must be inside the interval")
	}
	if end.Sub(start) != 24*time.Hour {
		t.Errorf("interval length = %v, want 24h", end.Sub(start))
	}
}
