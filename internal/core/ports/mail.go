package ports

import (
	"context"

	"campustasks/internal/core/domain"
)

type Mailer interface {
	Send(to, subject, htmlBody, textBody string) error
}

// NotificationService sends best-effort email notifications. Sweep methods
// iterate all active users; one user's failure never aborts the sweep.
type NotificationService interface {
	SendTaskReminder(user domain.User, task domain.Task) error
	SendOverdueAlert(user domain.User, task domain.Task) error
	SendDailySummary(user domain.User, overdue, today, upcoming []domain.Task) error
	SendWeeklySummary(user domain.User, tasks []domain.Task) error
	RunReminderSweep(ctx context.Context)
	RunOverdueSweep(ctx context.Context)
}
