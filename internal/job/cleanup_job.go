package job

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"community-board-api/internal/service"
)

// cleanupTimeout bounds a single cleanup run.
const cleanupTimeout = 5 * time.Minute

// Scheduler runs periodic maintenance jobs
type Scheduler struct {
	cron          *cron.Cron
	notifications service.NotificationService
	logger        *zap.Logger
}

// NewScheduler creates a scheduler with the notification cleanup job
// registered on the given cron schedule
func NewScheduler(notifications service.NotificationService, schedule string, logger *zap.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:          cron.New(),
		notifications: notifications,
		logger:        logger,
	}

	if _, err := s.cron.AddFunc(schedule, s.runCleanup); err != nil {
		return nil, fmt.Errorf("failed to register cleanup job: %w", err)
	}

	return s, nil
}

// Start begins running registered jobs in their own goroutine
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Job scheduler started")
}

// Stop stops the scheduler and waits for running jobs to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Job scheduler stopped")
}

func (s *Scheduler) runCleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
	defer cancel()

	deleted, err := s.notifications.CleanupOld(ctx)
	if err != nil {
		s.logger.Error("Notification cleanup failed", zap.Error(err))
		return
	}

	s.logger.Info("Notification cleanup finished", zap.Int64("deleted", deleted))
}
