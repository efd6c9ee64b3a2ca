package ports

import (
	"context"
	"time"

	"campustasks/internal/core/domain"
)

// ReasoningGateway is the outbound contract against the hosted language model.
// Every call may fail; degradation to local fallbacks is the caller's job.
type ReasoningGateway interface {
	ParseTaskInput(ctx context.Context, text string, userCtx domain.UserContext) (domain.ParsedTask, error)
	OptimizeSchedule(ctx context.Context, tasks []domain.Task, entries []domain.ScheduleEntry, prefs domain.Preferences) ([]domain.PlannedTask, error)
	Recommendations(ctx context.Context, tasks []domain.Task, entries []domain.ScheduleEntry) ([]domain.Recommendation, error)
	BreakdownTask(ctx context.Context, task domain.Task) ([]domain.SubtaskSuggestion, error)
	AnalyzeAnnouncements(ctx context.Context, announcements []string) (domain.AnnouncementAnalysis, error)
	StudyStrategy(ctx context.Context, subject string, examDate time.Time, difficulty domain.TaskDifficulty) (domain.StudyStrategy, error)
	Chat(ctx context.Context, message, extraContext string, userCtx domain.UserContext) (string, error)
}

// AssistantService wraps the gateway with the local fallbacks: heuristic text
// parsing, the greedy day planner, and empty recommendation lists.
type AssistantService interface {
	ParseText(ctx context.Context, user domain.User, text string) (domain.ParsedTask, error)
	OptimizeSchedule(ctx context.Context, user domain.User, from, to time.Time, tasks []domain.Task) (domain.Plan, []domain.Task, []domain.ScheduleEntry, error)
	Recommendations(ctx context.Context, user domain.User, from, to time.Time) ([]domain.Recommendation, error)
	PrioritySuggestions(ctx context.Context, userID uint64) ([]domain.Task, error)
	BreakdownTask(ctx context.Context, userID, taskID uint64) (domain.Task, []domain.SubtaskSuggestion, error)
	AnalyzeAnnouncements(ctx context.Context, announcements []string) (domain.AnnouncementAnalysis, error)
	StudyStrategies(ctx context.Context, subject string, examDate time.Time, difficulty domain.TaskDifficulty) (domain.StudyStrategy, error)
	Chat(ctx context.Context, user domain.User, message, extraContext string) (string, error)
}
