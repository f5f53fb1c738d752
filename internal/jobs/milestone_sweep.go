package jobs

import (
	"context"
	"log/slog"
	"time"

	"taskdash/internal/services"
)

// MilestoneSweepJob flags pending milestones whose due date has passed
type MilestoneSweepJob struct {
	projects *services.ProjectStore
	timeout  time.Duration
}

// NewMilestoneSweepJob creates the overdue milestone sweep
func NewMilestoneSweepJob(projects *services.ProjectStore) *MilestoneSweepJob {
	return &MilestoneSweepJob{projects: projects, timeout: 2 * time.Minute}
}

// Run marks overdue milestones across all projects
func (j *MilestoneSweepJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	updated, err := j.projects.MarkOverdueMilestones(ctx, time.Now())
	if err != nil {
		slog.Error("Milestone sweep failed", "error", err)
		return
	}
	if updated > 0 {
		slog.Info("Marked overdue milestones", "projects", updated)
	}
}
