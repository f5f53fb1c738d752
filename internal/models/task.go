package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TaskStatus represents the workflow state of a task
type TaskStatus string

const (
	TaskStatusNew        TaskStatus = "new"
	TaskStatusInProgress TaskStatus = "inprogress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusClosed     TaskStatus = "closed"
)

// Priority is shared by tasks, projects, meetings, reminders and goals
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Task represents an assignable unit of work, optionally linked to a project
type Task struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	Title       string              `bson:"title" json:"title"`
	Description string              `bson:"description,omitempty" json:"description,omitempty"`
	Status      TaskStatus          `bson:"status" json:"status"`
	Priority    Priority            `bson:"priority" json:"priority"`
	AssignedBy  string              `bson:"assignedBy" json:"assignedBy"`
	AssignedTo  string              `bson:"assignedTo" json:"assignedTo"`
	Progress    int                 `bson:"progress" json:"progress"`
	DueDate     *time.Time          `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	Project     *primitive.ObjectID `bson:"project,omitempty" json:"project,omitempty"`
	Tags        []string            `bson:"tags,omitempty" json:"tags,omitempty"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// AverageProgress returns the arithmetic mean of a set of progress values.
// An empty set averages to 0.
func AverageProgress(progresses []int) float64 {
	if len(progresses) == 0 {
		return 0
	}
	total := 0
	for _, p := range progresses {
		total += p
	}
	return float64(total) / float64(len(progresses))
}
