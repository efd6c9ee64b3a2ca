package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"campustasks/internal/core/domain"
	"campustasks/internal/core/ports"
)

// NotificationService sends best-effort email. Delivery failures are logged
// and swallowed; they never fail the triggering request or sweep.
type NotificationService struct {
	userRepository ports.UserRepository
	taskRepository ports.TaskRepository
	mailer         ports.Mailer
	now            func() time.Time
}

var _ ports.NotificationService = (*NotificationService)(nil)

func NewNotificationService(userRepository ports.UserRepository, taskRepository ports.TaskRepository, mailer ports.Mailer) *NotificationService {
	return &NotificationService{
		userRepository: userRepository,
		taskRepository: taskRepository,
		mailer:         mailer,
		now:            time.Now,
	}
}

func (s *NotificationService) SendTaskReminder(user domain.User, task domain.Task) error {
	if !user.Preferences.Notifications.Email {
		return nil
	}

	hoursLeft := int(math.Ceil(time.Until(task.Deadline).Hours()))
	subject := fmt.Sprintf("Reminder: %s - Due in %d hours", task.Title, hoursLeft)

	var html strings.Builder
	html.WriteString(fmt.Sprintf("<h2>Task Reminder</h2><p>Hello %s,</p><p>This is a reminder about your upcoming task:</p>", user.Name))
	html.WriteString(taskCardHTML(task))
	html.WriteString("<p>Don't forget to complete this task on time!</p>")

	text := fmt.Sprintf("Task Reminder\n\nHello %s,\n\nUpcoming task: %s\nCategory: %s\nPriority: %s\nDeadline: %s\nTime remaining: %d hours\n",
		user.Name, task.Title, task.Category, task.Priority, task.Deadline.Format(time.RFC1123), hoursLeft)

	return s.mailer.Send(user.Email, subject, html.String(), text)
}

func (s *NotificationService) SendOverdueAlert(user domain.User, task domain.Task) error {
	if !user.Preferences.Notifications.Email {
		return nil
	}

	overdueHours := int(math.Ceil(time.Since(task.Deadline).Hours()))
	subject := fmt.Sprintf("URGENT: Overdue Task - %s", task.Title)

	var html strings.Builder
	html.WriteString(fmt.Sprintf("<h2>Overdue Task Alert</h2><p>Hello %s,</p><p><strong>This task is overdue by %d hours!</strong></p>", user.Name, overdueHours))
	html.WriteString(taskCardHTML(task))

	text := fmt.Sprintf("Overdue Task Alert\n\nHello %s,\n\nTask %q is overdue by %d hours.\nDeadline was: %s\n",
		user.Name, task.Title, overdueHours, task.Deadline.Format(time.RFC1123))

	return s.mailer.Send(user.Email, subject, html.String(), text)
}

func (s *NotificationService) SendDailySummary(user domain.User, overdue, today, upcoming []domain.Task) error {
	if !user.Preferences.Notifications.Email {
		return nil
	}

	subject := fmt.Sprintf("Daily Summary - %s", s.now().Format("Jan 2, 2006"))

	var html strings.Builder
	html.WriteString(fmt.Sprintf("<h2>Daily Summary</h2><p>Hello %s,</p>", user.Name))
	html.WriteString(taskListHTML("Overdue Tasks", overdue))
	html.WriteString(taskListHTML("Today's Tasks", today))
	html.WriteString(taskListHTML("Upcoming Tasks", upcoming))
	html.WriteString("<p>Have a productive day!</p>")

	return s.mailer.Send(user.Email, subject, html.String(), "")
}

func (s *NotificationService) SendWeeklySummary(user domain.User, tasks []domain.Task) error {
	if !user.Preferences.Notifications.Email {
		return nil
	}

	var completed, pending []domain.Task
	for _, task := range tasks {
		if task.Status == domain.TaskStatusCompleted {
			completed = append(completed, task)
		} else {
			pending = append(pending, task)
		}
	}

	subject := fmt.Sprintf("Weekly Summary - Week of %s", s.now().Format("Jan 2, 2006"))

	var html strings.Builder
	html.WriteString(fmt.Sprintf("<h2>Weekly Summary</h2><p>Hello %s,</p>", user.Name))
	html.WriteString(taskListHTML(fmt.Sprintf("Completed Tasks (%d)", len(completed)), completed))
	html.WriteString(taskListHTML(fmt.Sprintf("Pending Tasks (%d)", len(pending)), pending))
	html.WriteString("<p>Great work this week!</p>")

	return s.mailer.Send(user.Email, subject, html.String(), "")
}

// RunReminderSweep mails each active user about tasks due within their
// reminder lead window. One user's failure is logged and skipped.
func (s *NotificationService) RunReminderSweep(ctx context.Context) {
	users, err := s.userRepository.ListActive(ctx)
	if err != nil {
		zap.L().Error("reminder sweep aborted", zap.Error(err))
		return
	}

	for _, user := range users {
		if ctx.Err() != nil {
			zap.L().Info("reminder sweep cancelled")
			return
		}
		if err := s.remindUser(ctx, user); err != nil {
			zap.L().Warn("reminder sweep user failed", zap.Uint64("user_id", user.ID), zap.Error(err))
		}
	}
}

// RunOverdueSweep mails each active user about their overdue tasks.
func (s *NotificationService) RunOverdueSweep(ctx context.Context) {
	users, err := s.userRepository.ListActive(ctx)
	if err != nil {
		zap.L().Error("overdue sweep aborted", zap.Error(err))
		return
	}

	for _, user := range users {
		if ctx.Err() != nil {
			zap.L().Info("overdue sweep cancelled")
			return
		}
		if err := s.alertUser(ctx, user); err != nil {
			zap.L().Warn("overdue sweep user failed", zap.Uint64("user_id", user.ID), zap.Error(err))
		}
	}
}

func (s *NotificationService) remindUser(ctx context.Context, user domain.User) error {
	leadMins := user.Preferences.Notifications.ReminderMins
	if leadMins <= 0 {
		leadMins = 30
	}
	now := s.now()
	threshold := now.Add(time.Duration(leadMins) * time.Minute)

	tasks, err := s.taskRepository.List(ctx, user.ID, domain.TaskFilter{
		DeadlineFrom: &now,
		DeadlineTo:   &threshold,
	})
	if err != nil {
		return err
	}

	for _, task := range tasks {
		if task.Status == domain.TaskStatusCompleted || task.Status == domain.TaskStatusCancelled {
			continue
		}
		if err := s.SendTaskReminder(user, task); err != nil {
			zap.L().Warn("reminder mail failed", zap.Uint64("task_id", task.ID), zap.Error(err))
		}
	}
	return nil
}

func (s *NotificationService) alertUser(ctx context.Context, user domain.User) error {
	now := s.now()
	tasks, err := s.taskRepository.List(ctx, user.ID, domain.TaskFilter{DeadlineTo: &now})
	if err != nil {
		return err
	}

	for _, task := range tasks {
		if !task.IsOverdue(now) || task.Status == domain.TaskStatusCancelled {
			continue
		}
		if err := s.SendOverdueAlert(user, task); err != nil {
			zap.L().Warn("overdue mail failed", zap.Uint64("task_id", task.ID), zap.Error(err))
		}
	}
	return nil
}

func taskCardHTML(task domain.Task) string {
	var b strings.Builder
	b.WriteString("<div><h3>" + task.Title + "</h3>")
	b.WriteString(fmt.Sprintf("<p><strong>Category:</strong> %s</p>", task.Category))
	b.WriteString(fmt.Sprintf("<p><strong>Priority:</strong> %s</p>", task.Priority))
	b.WriteString(fmt.Sprintf("<p><strong>Deadline:</strong> %s</p>", task.Deadline.Format(time.RFC1123)))
	if task.Description != nil {
		b.WriteString(fmt.Sprintf("<p><strong>Description:</strong> %s</p>", *task.Description))
	}
	if task.Location != nil {
		b.WriteString(fmt.Sprintf("<p><strong>Location:</strong> %s</p>", *task.Location))
	}
	b.WriteString("</div>")
	return b.String()
}

func taskListHTML(heading string, tasks []domain.Task) string {
	if len(tasks) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<div><h3>" + heading + "</h3><ul>")
	for _, task := range tasks {
		b.WriteString(fmt.Sprintf("<li>%s - due %s</li>", task.Title, task.Deadline.Format("Jan 2 15:04")))
	}
	b.WriteString("</ul></div>")
	return b.String()
}
