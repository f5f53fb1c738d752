package models

import "testing"

func TestAverageProgress(t *testing.T) {
	tests := []struct {
		name       string
		progresses []int
		want       float64
	}{
		{"empty", nil, 0},
		{"single", []int{40}, 40},
		{"two values", []int{50, 100}, 75},
		{"three values", []int{0, 50, 100}, 50},
		{"non-integral mean", []int{1, 2}, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AverageProgress(tt.progresses)
			if got != tt.want {
				t.Errorf("AverageProgress(%v) = %v, want %v", tt.progresses, got, tt.want)
			}
		})
	}
}
