package jobs

import (
	"context"
	"time"

	rcron "github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"campustasks/internal/core/ports"
)

const (
	reminderSpec = "0 9 * * *"
	overdueSpec  = "0 18 * * *"
)

// Scheduler runs the daily notification sweeps. Each sweep receives a
// context derived from the one passed to Start, so cancelling it stops
// in-flight work.
type Scheduler struct {
	notifications ports.NotificationService
	cron          *rcron.Cron
	cancel        context.CancelFunc
}

func NewScheduler(notifications ports.NotificationService) *Scheduler {
	return &Scheduler{notifications: notifications}
}

func (s *Scheduler) Start(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.cron = rcron.New()

	if _, err := s.cron.AddFunc(reminderSpec, func() {
		zap.L().Info("running reminder sweep")
		s.notifications.RunReminderSweep(runCtx)
	}); err != nil {
		cancel()
		return err
	}

	if _, err := s.cron.AddFunc(overdueSpec, func() {
		zap.L().Info("running overdue sweep")
		s.notifications.RunOverdueSweep(runCtx)
	}); err != nil {
		cancel()
		return err
	}

	s.cron.Start()
	zap.L().Info("job scheduler started",
		zap.String("reminder_spec", reminderSpec),
		zap.String("overdue_spec", overdueSpec))
	return nil
}

// Stop cancels running sweeps and waits briefly for them to return.
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	if s.cron != nil {
		stopCtx := s.cron.Stop()
		select {
		case <-stopCtx.Done():
		case <-time.After(5 * time.Second):
			zap.L().Warn("job scheduler stop timed out")
		}
	}
	zap.L().Info("job scheduler stopped")
}
