package ports

import (
	"context"
	"time"

	"campustasks/internal/core/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, userID uint64, input domain.CreateTaskInput) (domain.Task, error)
	GetByID(ctx context.Context, userID, taskID uint64) (domain.Task, error)
	Update(ctx context.Context, userID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error)
	Delete(ctx context.Context, userID, taskID uint64) error
	List(ctx context.Context, userID uint64, filter domain.TaskFilter) ([]domain.Task, error)
	// ListDependencyEdges returns every (task, dependency) pair owned by the
	// user, used for cycle detection before a dependency write.
	ListDependencyEdges(ctx context.Context, userID uint64) (map[uint64][]uint64, error)
}

type TaskService interface {
	Create(ctx context.Context, userID uint64, input domain.CreateTaskInput) (domain.Task, error)
	CreateFromText(ctx context.Context, user domain.User, text string) (domain.Task, domain.ParsedTask, error)
	Get(ctx context.Context, userID, taskID uint64) (domain.Task, error)
	Update(ctx context.Context, userID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error)
	Delete(ctx context.Context, userID, taskID uint64) error
	List(ctx context.Context, userID uint64, filter domain.TaskFilter) ([]domain.Task, error)
	Start(ctx context.Context, userID, taskID uint64) (domain.Task, error)
	Complete(ctx context.Context, userID, taskID uint64, actualDuration *int) (domain.Task, error)
	Analytics(ctx context.Context, userID uint64, since time.Time) (domain.TaskAnalytics, error)
	UpcomingDeadlines(ctx context.Context, userID uint64, within time.Duration) ([]domain.Task, error)
}
