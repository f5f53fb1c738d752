package jobs

import (
	"log/slog"

	"github.com/go-co-op/gocron/v2"
)

// Scheduler wraps the cron runner for background maintenance jobs
type Scheduler struct {
	cron gocron.Scheduler
}

// NewScheduler creates a stopped scheduler
func NewScheduler() (*Scheduler, error) {
	cron, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	return &Scheduler{cron: cron}, nil
}

// Daily registers a job that runs once a day at the given hour
func (s *Scheduler) Daily(name string, hour int, task func()) error {
	_, err := s.cron.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(uint(hour), 0, 0))),
		gocron.NewTask(task),
		gocron.WithName(name),
	)
	if err != nil {
		return err
	}
	slog.Info("Scheduled daily job", "job", name, "hour", hour)
	return nil
}

// Start begins running registered jobs
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop shuts the scheduler down, waiting for running jobs
func (s *Scheduler) Stop() {
	if err := s.cron.Shutdown(); err != nil {
		slog.Error("Scheduler shutdown failed", "error", err)
	}
}
