package ports

import (
	"context"
	"time"

	"campustasks/internal/core/domain"
)

type ScheduleRepository interface {
	Create(ctx context.Context, userID uint64, input domain.CreateScheduleInput) (domain.ScheduleEntry, error)
	GetByID(ctx context.Context, userID, entryID uint64) (domain.ScheduleEntry, error)
	Update(ctx context.Context, userID, entryID uint64, input domain.UpdateScheduleInput) (domain.ScheduleEntry, error)
	Delete(ctx context.Context, userID, entryID uint64) error
	// List returns active entries ordered by start time.
	List(ctx context.Context, userID uint64, filter domain.ScheduleFilter) ([]domain.ScheduleEntry, error)
	BulkInsert(ctx context.Context, userID uint64, inputs []domain.CreateScheduleInput) (int, error)
}

type ScheduleService interface {
	Create(ctx context.Context, userID uint64, input domain.CreateScheduleInput) (domain.ScheduleEntry, error)
	Update(ctx context.Context, userID, entryID uint64, input domain.UpdateScheduleInput) (domain.ScheduleEntry, error)
	Delete(ctx context.Context, userID, entryID uint64) error
	List(ctx context.Context, userID uint64, filter domain.ScheduleFilter) ([]domain.ScheduleEntry, error)
	ImportTimetable(ctx context.Context, userID uint64, inputs []domain.CreateScheduleInput) (int, error)
	Conflicts(ctx context.Context, userID uint64, from, to time.Time) ([]domain.Conflict, error)
	AvailableSlots(ctx context.Context, userID uint64, from, to time.Time, minDuration time.Duration) ([]domain.Slot, error)
	OptimizedDaily(ctx context.Context, user domain.User, day time.Time) (domain.Plan, []domain.Task, []domain.ScheduleEntry, error)
}
