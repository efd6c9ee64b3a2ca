package service

import (
	"context"
	"fmt"
	"time"

	"campustasks/internal/app/planner"
	"campustasks/internal/core/domain"
	"campustasks/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
	assistant      ports.AssistantService
	now            func() time.Time
}

var _ ports.TaskService = (*TaskService)(nil)

func NewTaskService(taskRepository ports.TaskRepository, assistant ports.AssistantService) *TaskService {
	return &TaskService{
		taskRepository: taskRepository,
		assistant:      assistant,
		now:            time.Now,
	}
}

func (s *TaskService) Create(ctx context.Context, userID uint64, input domain.CreateTaskInput) (domain.Task, error) {
	if input.Priority == "" {
		input.Priority = domain.PriorityMedium
	}
	if input.Difficulty == "" {
		input.Difficulty = domain.DifficultyMedium
	}

	if err := s.validateDependencies(ctx, userID, 0, input.Dependencies); err != nil {
		return domain.Task{}, err
	}

	task, err := s.taskRepository.Create(ctx, userID, input)
	if err != nil {
		return domain.Task{}, err
	}
	return s.scored(task), nil
}

func (s *TaskService) CreateFromText(ctx context.Context, user domain.User, text string) (domain.Task, domain.ParsedTask, error) {
	parsed, err := s.assistant.ParseText(ctx, user, text)
	if err != nil {
		return domain.Task{}, domain.ParsedTask{}, err
	}

	deadline := s.now().Add(7 * 24 * time.Hour)
	if parsed.Deadline != nil {
		deadline = *parsed.Deadline
	}

	input := domain.CreateTaskInput{
		Title:             parsed.Title,
		Category:          parsed.Category,
		Priority:          parsed.Priority,
		Difficulty:        parsed.Difficulty,
		EstimatedDuration: parsed.EstimatedDuration,
		Deadline:          deadline,
		Tags:              parsed.Tags,
		Subject:           parsed.Subject,
		Location:          parsed.Location,
		AIGenerated:       true,
	}
	if parsed.Description != "" {
		description := parsed.Description
		input.Description = &description
	}

	task, err := s.Create(ctx, user.ID, input)
	if err != nil {
		return domain.Task{}, domain.ParsedTask{}, err
	}
	return task, parsed, nil
}

func (s *TaskService) Get(ctx context.Context, userID, taskID uint64) (domain.Task, error) {
	task, err := s.taskRepository.GetByID(ctx, userID, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	return s.scored(task), nil
}

func (s *TaskService) Update(ctx context.Context, userID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	current, err := s.taskRepository.GetByID(ctx, userID, taskID)
	if err != nil {
		return domain.Task{}, err
	}

	if input.Status != nil && !current.Status.CanTransitionTo(*input.Status) {
		return domain.Task{}, fmt.Errorf("%w: %s to %s", domain.ErrInvalidStatusTransition, current.Status, *input.Status)
	}
	if input.Progress != nil {
		clamped := clampProgress(*input.Progress)
		input.Progress = &clamped
	}
	if input.DependenciesSet {
		if err := s.validateDependencies(ctx, userID, taskID, input.Dependencies); err != nil {
			return domain.Task{}, err
		}
	}

	task, err := s.taskRepository.Update(ctx, userID, taskID, input)
	if err != nil {
		return domain.Task{}, err
	}
	return s.scored(task), nil
}

func (s *TaskService) Delete(ctx context.Context, userID, taskID uint64) error {
	return s.taskRepository.Delete(ctx, userID, taskID)
}

func (s *TaskService) List(ctx context.Context, userID uint64, filter domain.TaskFilter) ([]domain.Task, error) {
	tasks, err := s.taskRepository.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	now := s.now()
	for i := range tasks {
		tasks[i].UrgencyScore = planner.UrgencyScore(tasks[i], now)
	}
	return tasks, nil
}

func (s *TaskService) Start(ctx context.Context, userID, taskID uint64) (domain.Task, error) {
	status := domain.TaskStatusInProgress
	return s.Update(ctx, userID, taskID, domain.UpdateTaskInput{Status: &status})
}

func (s *TaskService) Complete(ctx context.Context, userID, taskID uint64, actualDuration *int) (domain.Task, error) {
	status := domain.TaskStatusCompleted
	return s.Update(ctx, userID, taskID, domain.UpdateTaskInput{
		Status:         &status,
		ActualDuration: actualDuration,
	})
}

func (s *TaskService) Analytics(ctx context.Context, userID uint64, since time.Time) (domain.TaskAnalytics, error) {
	tasks, err := s.taskRepository.List(ctx, userID, domain.TaskFilter{})
	if err != nil {
		return domain.TaskAnalytics{}, err
	}

	now := s.now()
	analytics := domain.TaskAnalytics{
		Categories: make(map[domain.TaskCategory]int),
		Priorities: make(map[domain.TaskPriority]int),
	}

	completedMins := 0
	completedWithDuration := 0
	for _, task := range tasks {
		if task.CreatedAt.Before(since) {
			continue
		}
		analytics.Total++
		analytics.Categories[task.Category]++
		analytics.Priorities[task.Priority]++

		switch task.Status {
		case domain.TaskStatusCompleted:
			analytics.Completed++
			if task.ActualDuration != nil {
				completedMins += *task.ActualDuration
				completedWithDuration++
			}
		case domain.TaskStatusInProgress:
			analytics.InProgress++
		case domain.TaskStatusPending:
			analytics.Pending++
		}
		if task.IsOverdue(now) {
			analytics.Overdue++
		}
	}
	if completedWithDuration > 0 {
		analytics.AverageCompletionMins = float64(completedMins) / float64(completedWithDuration)
	}
	return analytics, nil
}

func (s *TaskService) UpcomingDeadlines(ctx context.Context, userID uint64, within time.Duration) ([]domain.Task, error) {
	now := s.now()
	until := now.Add(within)
	tasks, err := s.List(ctx, userID, domain.TaskFilter{
		DeadlineFrom: &now,
		DeadlineTo:   &until,
		SortBy:       domain.SortByDeadline,
	})
	if err != nil {
		return nil, err
	}

	upcoming := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.Status == domain.TaskStatusCompleted {
			continue
		}
		upcoming = append(upcoming, task)
	}
	return upcoming, nil
}

// validateDependencies checks that every referenced task exists, belongs to
// the same owner and that the resulting dependency graph stays acyclic.
// taskID is zero for freshly created tasks, which cannot close a cycle.
func (s *TaskService) validateDependencies(ctx context.Context, userID, taskID uint64, deps []uint64) error {
	if len(deps) == 0 {
		return nil
	}

	for _, dep := range deps {
		if dep == taskID {
			return domain.ErrTaskDependencyCycle
		}
		if _, err := s.taskRepository.GetByID(ctx, userID, dep); err != nil {
			return err
		}
	}

	if taskID == 0 {
		return nil
	}

	edges, err := s.taskRepository.ListDependencyEdges(ctx, userID)
	if err != nil {
		return err
	}
	edges[taskID] = deps

	visited := make(map[uint64]bool)
	var stack []uint64
	stack = append(stack, deps...)
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node == taskID {
			return domain.ErrTaskDependencyCycle
		}
		if visited[node] {
			continue
		}
		visited[node] = true
		stack = append(stack, edges[node]...)
	}
	return nil
}

func (s *TaskService) scored(task domain.Task) domain.Task {
	task.UrgencyScore = planner.UrgencyScore(task, s.now())
	return task
}

func clampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
