package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"campustasks/internal/app/planner"
	"campustasks/internal/core/domain"
	"campustasks/internal/core/ports"
)

const (
	fallbackTitleLimit  = 100
	fallbackDurationMin = 60
	fallbackTagLimit    = 5
)

// AssistantService fronts the reasoning gateway and degrades every capability
// that has a local equivalent: heuristic parsing for free text, the greedy
// planner for scheduling, empty lists for recommendations. Chat has no
// fallback and surfaces the error.
type AssistantService struct {
	gateway            ports.ReasoningGateway
	taskRepository     ports.TaskRepository
	scheduleRepository ports.ScheduleRepository
	now                func() time.Time
}

var _ ports.AssistantService = (*AssistantService)(nil)

func NewAssistantService(gateway ports.ReasoningGateway, taskRepository ports.TaskRepository, scheduleRepository ports.ScheduleRepository) *AssistantService {
	return &AssistantService{
		gateway:            gateway,
		taskRepository:     taskRepository,
		scheduleRepository: scheduleRepository,
		now:                time.Now,
	}
}

func (s *AssistantService) ParseText(ctx context.Context, user domain.User, text string) (domain.ParsedTask, error) {
	parsed, err := s.gateway.ParseTaskInput(ctx, text, user.Context())
	if err != nil {
		zap.L().Warn("task parsing degraded to local heuristic", zap.Error(err))
		return FallbackParse(text), nil
	}
	return parsed, nil
}

func (s *AssistantService) OptimizeSchedule(ctx context.Context, user domain.User, from, to time.Time, tasks []domain.Task) (domain.Plan, []domain.Task, []domain.ScheduleEntry, error) {
	if tasks == nil {
		all, err := s.taskRepository.List(ctx, user.ID, domain.TaskFilter{
			DeadlineFrom: &from,
			DeadlineTo:   &to,
		})
		if err != nil {
			return domain.Plan{}, nil, nil, err
		}
		for _, task := range all {
			if task.Status == domain.TaskStatusCompleted || task.Status == domain.TaskStatusCancelled {
				continue
			}
			tasks = append(tasks, task)
		}
	}

	entries, err := s.scheduleRepository.List(ctx, user.ID, domain.ScheduleFilter{From: &from, To: &to})
	if err != nil {
		return domain.Plan{}, nil, nil, err
	}

	assignments, err := s.gateway.OptimizeSchedule(ctx, tasks, entries, user.Preferences)
	if err != nil {
		zap.L().Warn("schedule optimization degraded to greedy planner", zap.Error(err))
		plan := planner.PlanDay(tasks, entries, user.Preferences, from, s.now())
		return plan, tasks, entries, nil
	}
	return domain.Plan{Assignments: assignments}, tasks, entries, nil
}

func (s *AssistantService) Recommendations(ctx context.Context, user domain.User, from, to time.Time) ([]domain.Recommendation, error) {
	tasks, err := s.taskRepository.List(ctx, user.ID, domain.TaskFilter{
		DeadlineFrom: &from,
		DeadlineTo:   &to,
	})
	if err != nil {
		return nil, err
	}
	entries, err := s.scheduleRepository.List(ctx, user.ID, domain.ScheduleFilter{From: &from, To: &to})
	if err != nil {
		return nil, err
	}

	recommendations, err := s.gateway.Recommendations(ctx, tasks, entries)
	if err != nil {
		zap.L().Warn("recommendations unavailable", zap.Error(err))
		return []domain.Recommendation{}, nil
	}
	return recommendations, nil
}

func (s *AssistantService) PrioritySuggestions(ctx context.Context, userID uint64) ([]domain.Task, error) {
	tasks, err := s.taskRepository.List(ctx, userID, domain.TaskFilter{})
	if err != nil {
		return nil, err
	}

	now := s.now()
	open := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.Status == domain.TaskStatusCompleted {
			continue
		}
		task.UrgencyScore = planner.UrgencyScore(task, now)
		open = append(open, task)
	}
	sort.SliceStable(open, func(i, j int) bool { return open[i].UrgencyScore > open[j].UrgencyScore })
	return open, nil
}

func (s *AssistantService) BreakdownTask(ctx context.Context, userID, taskID uint64) (domain.Task, []domain.SubtaskSuggestion, error) {
	task, err := s.taskRepository.GetByID(ctx, userID, taskID)
	if err != nil {
		return domain.Task{}, nil, err
	}

	subtasks, err := s.gateway.BreakdownTask(ctx, task)
	if err != nil {
		return domain.Task{}, nil, err
	}
	return task, subtasks, nil
}

func (s *AssistantService) AnalyzeAnnouncements(ctx context.Context, announcements []string) (domain.AnnouncementAnalysis, error) {
	analysis, err := s.gateway.AnalyzeAnnouncements(ctx, announcements)
	if err != nil {
		zap.L().Warn("announcement analysis unavailable", zap.Error(err))
		return domain.EmptyAnnouncementAnalysis(), nil
	}
	return analysis, nil
}

func (s *AssistantService) StudyStrategies(ctx context.Context, subject string, examDate time.Time, difficulty domain.TaskDifficulty) (domain.StudyStrategy, error) {
	return s.gateway.StudyStrategy(ctx, subject, examDate, difficulty)
}

func (s *AssistantService) Chat(ctx context.Context, user domain.User, message, extraContext string) (string, error) {
	return s.gateway.Chat(ctx, message, extraContext, user.Context())
}

// FallbackParse is the local heuristic used when the reasoning service cannot
// parse free text: conservative defaults, the input kept as description, and
// long words promoted to tags.
func FallbackParse(text string) domain.ParsedTask {
	title := strings.TrimSpace(text)
	if runes := []rune(title); len(runes) > fallbackTitleLimit {
		title = string(runes[:fallbackTitleLimit])
	}
	if title == "" {
		title = "Untitled Task"
	}

	var tags []string
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,!?;:\"'")
		if len(word) <= 3 {
			continue
		}
		tags = append(tags, word)
		if len(tags) == fallbackTagLimit {
			break
		}
	}

	return domain.ParsedTask{
		Title:             title,
		Description:       text,
		Category:          domain.CategoryOther,
		Priority:          domain.PriorityMedium,
		Difficulty:        domain.DifficultyMedium,
		EstimatedDuration: fallbackDurationMin,
		Tags:              tags,
	}
}
