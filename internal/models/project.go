package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProjectStatus represents the lifecycle state of a project
type ProjectStatus string

const (
	ProjectStatusPlanning  ProjectStatus = "planning"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on-hold"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusCancelled ProjectStatus = "cancelled"
)

// HealthStatus is derived from progress against the expected timeline
type HealthStatus string

const (
	HealthGood     HealthStatus = "good"
	HealthWarning  HealthStatus = "warning"
	HealthCritical HealthStatus = "critical"
	HealthUnknown  HealthStatus = "unknown"
)

// MilestoneStatus represents the state of a project milestone
type MilestoneStatus string

const (
	MilestoneStatusPending   MilestoneStatus = "pending"
	MilestoneStatusCompleted MilestoneStatus = "completed"
	MilestoneStatusOverdue   MilestoneStatus = "overdue"
)

// Project represents a managed project with budget, team and milestones
type Project struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name            string             `bson:"name" json:"name"`
	Description     string             `bson:"description,omitempty" json:"description,omitempty"`
	Status          ProjectStatus      `bson:"status" json:"status"`
	Progress        int                `bson:"progress" json:"progress"`
	Priority        Priority           `bson:"priority" json:"priority"`
	StartDate       time.Time          `bson:"startDate" json:"startDate"`
	EndDate         *time.Time         `bson:"endDate,omitempty" json:"endDate,omitempty"`
	ExpectedEndDate *time.Time         `bson:"expectedEndDate,omitempty" json:"expectedEndDate,omitempty"`
	Budget          Budget             `bson:"budget" json:"budget"`
	TeamMembers     []TeamMember       `bson:"teamMembers,omitempty" json:"teamMembers,omitempty"`
	ProjectManager  string             `bson:"projectManager" json:"projectManager"`
	Client          *Client            `bson:"client,omitempty" json:"client,omitempty"`
	Milestones      []Milestone        `bson:"milestones" json:"milestones"`
	Tags            []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	Documents       []Document         `bson:"documents,omitempty" json:"documents,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Budget tracks allocated vs spent amounts
type Budget struct {
	Allocated float64 `bson:"allocated" json:"allocated"`
	Spent     float64 `bson:"spent" json:"spent"`
}

// TeamMember is a person assigned to a project
type TeamMember struct {
	Name       string    `bson:"name" json:"name"`
	Role       string    `bson:"role,omitempty" json:"role,omitempty"`
	Email      string    `bson:"email,omitempty" json:"email,omitempty"`
	JoinedDate time.Time `bson:"joinedDate" json:"joinedDate"`
}

// Client identifies the customer a project is delivered for
type Client struct {
	Name    string `bson:"name,omitempty" json:"name,omitempty"`
	Email   string `bson:"email,omitempty" json:"email,omitempty"`
	Company string `bson:"company,omitempty" json:"company,omitempty"`
}

// Milestone is an embedded project checkpoint
type Milestone struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title         string             `bson:"title" json:"title"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	DueDate       *time.Time         `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	Status        MilestoneStatus    `bson:"status" json:"status"`
	CompletedDate *time.Time         `bson:"completedDate,omitempty" json:"completedDate,omitempty"`
}

// Document is an attachment reference stored on a project
type Document struct {
	Name       string    `bson:"name" json:"name"`
	URL        string    `bson:"url" json:"url"`
	UploadDate time.Time `bson:"uploadDate" json:"uploadDate"`
}

// ProjectHealth derives a health rating by comparing actual progress to the
// progress expected from elapsed time. Without an expected end date there is
// no baseline, so the rating is unknown. A zero-length timeline
// (expectedEndDate == startDate) is also treated as unknown rather than
// dividing by zero.
func ProjectHealth(progress float64, startDate time.Time, expectedEndDate *time.Time, now time.Time) HealthStatus {
	if expectedEndDate == nil {
		return HealthUnknown
	}
	totalTime := expectedEndDate.Sub(startDate)
	if totalTime <= 0 {
		return HealthUnknown
	}
	elapsed := now.Sub(startDate)
	expectedProgress := float64(elapsed) / float64(totalTime) * 100

	switch {
	case progress >= expectedProgress*0.9:
		return HealthGood
	case progress >= expectedProgress*0.7:
		return HealthWarning
	default:
		return HealthCritical
	}
}
