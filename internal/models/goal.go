package models

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GoalStatus represents the lifecycle state of a goal
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusPaused    GoalStatus = "paused"
	GoalStatusCancelled GoalStatus = "cancelled"
)

// GoalCategory classifies what area of life a goal belongs to
type GoalCategory string

const (
	GoalCategoryPersonal  GoalCategory = "personal"
	GoalCategoryWork      GoalCategory = "work"
	GoalCategoryHealth    GoalCategory = "health"
	GoalCategoryLearning  GoalCategory = "learning"
	GoalCategoryFinancial GoalCategory = "financial"
	GoalCategoryOther     GoalCategory = "other"
)

// Goal represents a measurable target. Progress is never persisted; it is
// derived from CurrentValue/TargetValue at read time.
type Goal struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title         string             `bson:"title" json:"title"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	TargetValue   float64            `bson:"targetValue" json:"targetValue"`
	CurrentValue  float64            `bson:"currentValue" json:"currentValue"`
	Unit          string             `bson:"unit" json:"unit"`
	Category      GoalCategory       `bson:"category" json:"category"`
	Priority      Priority           `bson:"priority" json:"priority"`
	Status        GoalStatus         `bson:"status" json:"status"`
	StartDate     time.Time          `bson:"startDate" json:"startDate"`
	TargetDate    time.Time          `bson:"targetDate" json:"targetDate"`
	CompletedDate *time.Time         `bson:"completedDate,omitempty" json:"completedDate,omitempty"`
	Color         string             `bson:"color" json:"color"`
	Tags          []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	Milestones    []GoalMilestone    `bson:"milestones,omitempty" json:"milestones,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// GoalMilestone is an intermediate checkpoint towards a goal
type GoalMilestone struct {
	Title        string     `bson:"title" json:"title"`
	TargetValue  float64    `bson:"targetValue" json:"targetValue"`
	AchievedDate *time.Time `bson:"achievedDate,omitempty" json:"achievedDate,omitempty"`
	IsAchieved   bool       `bson:"isAchieved" json:"isAchieved"`
}

// GoalProgress computes the completion percentage of a goal, clamped to
// [0,100]. A zero target yields 0 rather than an error.
func GoalProgress(currentValue, targetValue float64) int {
	if targetValue == 0 {
		return 0
	}
	ratio := currentValue / targetValue
	if ratio > 1 {
		ratio = 1
	}
	return int(math.Round(ratio * 100))
}

// GoalIsOverdue reports whether a goal has passed its target date.
// Completed goals are never overdue.
func GoalIsOverdue(status GoalStatus, targetDate, now time.Time) bool {
	if status == GoalStatusCompleted {
		return false
	}
	return now.After(targetDate)
}

// GoalResponse is a goal with its derived fields attached for API output
type GoalResponse struct {
	Goal
	Progress  int  `json:"progress"`
	IsOverdue bool `json:"isOverdue"`
}

// ToResponse attaches the derived progress and overdue flag
func (g Goal) ToResponse(now time.Time) GoalResponse {
	return GoalResponse{
		Goal:      g,
		Progress:  GoalProgress(g.CurrentValue, g.TargetValue),
		IsOverdue: GoalIsOverdue(g.Status, g.TargetDate, now),
	}
}
