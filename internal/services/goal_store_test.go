package services

import (
	"testing"

	"taskdash/internal/models"
	"taskdash/internal/validation"
)

func TestBuildGoalMilestones(t *testing.T) {
	target := 6.0
	achieved := date("2024-06-01")

	milestones := buildGoalMilestones([]validation.GoalMilestoneInput{
		{Title: "half", TargetValue: &target, IsAchieved: true, AchievedDate: achieved},
		{Title: "start"},
	})

	if len(milestones) != 2 {
		t.Fatalf("milestones = %d, want 2", len(milestones))
	}
	if !milestones[0].IsAchieved {
		t.Error("isAchieved not carried")
	}
	if milestones[0].AchievedDate == nil || !milestones[0].AchievedDate.Equal(achieved.Time) {
		t.Errorf("achievedDate = %v, want %v", milestones[0].AchievedDate, achieved.Time)
	}
	if milestones[0].TargetValue != 6 {
		t.Errorf("targetValue = %v, want 6", milestones[0].TargetValue)
	}
	if milestones[1].IsAchieved || milestones[1].AchievedDate != nil {
		t.Errorf("unachieved milestone carries achievement state: %+v", milestones[1])
	}
}

func TestCompletionTransition(t *testing.T) {
	tests := []struct {
		name    string
		current models.GoalStatus
		next    models.GoalStatus
		want    bool
	}{
		{"active to completed", models.GoalStatusActive, models.GoalStatusCompleted, true},
		{"paused to completed", models.GoalStatusPaused, models.GoalStatusCompleted, true},
		{"already completed", models.GoalStatusCompleted, models.GoalStatusCompleted, false},
		{"completed to paused", models.GoalStatusCompleted, models.GoalStatusPaused, false},
		{"active to paused", models.GoalStatusActive, models.GoalStatusPaused, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := completionTransition(tt.current, tt.next); got != tt.want {
				t.Errorf("completionTransition(%s, %s) = %v, want %v", tt.current, tt.next, got, tt.want)
			}
		})
	}
}
