package service

import (
	"context"
	"time"

	"campustasks/internal/app/planner"
	"campustasks/internal/core/domain"
	"campustasks/internal/core/ports"
)

type ScheduleService struct {
	scheduleRepository ports.ScheduleRepository
	taskRepository     ports.TaskRepository
	gateway            ports.ReasoningGateway
	now                func() time.Time
}

var _ ports.ScheduleService = (*ScheduleService)(nil)

func NewScheduleService(scheduleRepository ports.ScheduleRepository, taskRepository ports.TaskRepository, gateway ports.ReasoningGateway) *ScheduleService {
	return &ScheduleService{
		scheduleRepository: scheduleRepository,
		taskRepository:     taskRepository,
		gateway:            gateway,
		now:                time.Now,
	}
}

func (s *ScheduleService) Create(ctx context.Context, userID uint64, input domain.CreateScheduleInput) (domain.ScheduleEntry, error) {
	return s.scheduleRepository.Create(ctx, userID, input)
}

func (s *ScheduleService) Update(ctx context.Context, userID, entryID uint64, input domain.UpdateScheduleInput) (domain.ScheduleEntry, error) {
	return s.scheduleRepository.Update(ctx, userID, entryID, input)
}

func (s *ScheduleService) Delete(ctx context.Context, userID, entryID uint64) error {
	return s.scheduleRepository.Delete(ctx, userID, entryID)
}

func (s *ScheduleService) List(ctx context.Context, userID uint64, filter domain.ScheduleFilter) ([]domain.ScheduleEntry, error) {
	return s.scheduleRepository.List(ctx, userID, filter)
}

func (s *ScheduleService) ImportTimetable(ctx context.Context, userID uint64, inputs []domain.CreateScheduleInput) (int, error) {
	for i := range inputs {
		inputs[i].Type = domain.ScheduleTypeTimetable
	}
	return s.scheduleRepository.BulkInsert(ctx, userID, inputs)
}

func (s *ScheduleService) Conflicts(ctx context.Context, userID uint64, from, to time.Time) ([]domain.Conflict, error) {
	entries, err := s.scheduleRepository.List(ctx, userID, domain.ScheduleFilter{From: &from, To: &to})
	if err != nil {
		return nil, err
	}
	return planner.Conflicts(entries), nil
}

func (s *ScheduleService) AvailableSlots(ctx context.Context, userID uint64, from, to time.Time, minDuration time.Duration) ([]domain.Slot, error) {
	entries, err := s.scheduleRepository.List(ctx, userID, domain.ScheduleFilter{From: &from, To: &to})
	if err != nil {
		return nil, err
	}
	return planner.AvailableSlots(entries, from, to, minDuration), nil
}

// OptimizedDaily asks the reasoning service for a day plan over the user's
// open tasks and committed entries, and falls back to the greedy planner when
// the remote call fails.
func (s *ScheduleService) OptimizedDaily(ctx context.Context, user domain.User, day time.Time) (domain.Plan, []domain.Task, []domain.ScheduleEntry, error) {
	startOfDay := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	tasks, err := s.openTasksBetween(ctx, user.ID, startOfDay, endOfDay)
	if err != nil {
		return domain.Plan{}, nil, nil, err
	}
	entries, err := s.scheduleRepository.List(ctx, user.ID, domain.ScheduleFilter{From: &startOfDay, To: &endOfDay})
	if err != nil {
		return domain.Plan{}, nil, nil, err
	}

	assignments, err := s.gateway.OptimizeSchedule(ctx, tasks, entries, user.Preferences)
	if err != nil {
		plan := planner.PlanDay(tasks, entries, user.Preferences, startOfDay, s.now())
		return plan, tasks, entries, nil
	}
	return domain.Plan{Assignments: assignments}, tasks, entries, nil
}

func (s *ScheduleService) openTasksBetween(ctx context.Context, userID uint64, from, to time.Time) ([]domain.Task, error) {
	tasks, err := s.taskRepository.List(ctx, userID, domain.TaskFilter{
		DeadlineFrom: &from,
		DeadlineTo:   &to,
	})
	if err != nil {
		return nil, err
	}

	open := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.Status == domain.TaskStatusCompleted || task.Status == domain.TaskStatusCancelled {
			continue
		}
		open = append(open, task)
	}
	return open, nil
}
