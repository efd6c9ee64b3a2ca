package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"campustasks/internal/core/domain"
	"campustasks/internal/core/ports"
)

const scheduleColumns = `
  s.id, s.user_id, s.type, s.title, s.description, s.subject, s.instructor, s.location,
  s.start_time, s.end_time, s.day_of_week, s.is_recurring, s.recurring_pattern,
  s.recurring_end_date, s.color, s.is_active, s.metadata, s.created_at, s.updated_at`

type ScheduleRepository struct {
	db *sqlx.DB
}

type scheduleRow struct {
	ID               uint64         `db:"id"`
	UserID           uint64         `db:"user_id"`
	Type             string         `db:"type"`
	Title            string         `db:"title"`
	Description      sql.NullString `db:"description"`
	Subject          sql.NullString `db:"subject"`
	Instructor       sql.NullString `db:"instructor"`
	Location         sql.NullString `db:"location"`
	StartTime        time.Time      `db:"start_time"`
	EndTime          time.Time      `db:"end_time"`
	DayOfWeek        sql.NullInt64  `db:"day_of_week"`
	IsRecurring      bool           `db:"is_recurring"`
	RecurringPattern string         `db:"recurring_pattern"`
	RecurringEndDate sql.NullTime   `db:"recurring_end_date"`
	Color            string         `db:"color"`
	IsActive         bool           `db:"is_active"`
	Metadata         []byte         `db:"metadata"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

var _ ports.ScheduleRepository = (*ScheduleRepository)(nil)

func NewScheduleRepository(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

func (r *ScheduleRepository) Create(ctx context.Context, userID uint64, input domain.CreateScheduleInput) (domain.ScheduleEntry, error) {
	id, err := r.insert(ctx, r.db, userID, input)
	if err != nil {
		return domain.ScheduleEntry{}, err
	}
	return r.GetByID(ctx, userID, id)
}

func (r *ScheduleRepository) GetByID(ctx context.Context, userID, entryID uint64) (domain.ScheduleEntry, error) {
	var row scheduleRow
	query := fmt.Sprintf("SELECT %s FROM schedule_entries s WHERE s.id = ? AND s.user_id = ?", scheduleColumns)
	if err := r.db.GetContext(ctx, &row, query, entryID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ScheduleEntry{}, domain.ErrScheduleNotFound
		}
		return domain.ScheduleEntry{}, err
	}
	return mapScheduleRow(row), nil
}

func (r *ScheduleRepository) Update(ctx context.Context, userID, entryID uint64, input domain.UpdateScheduleInput) (domain.ScheduleEntry, error) {
	sets := make([]string, 0, 8)
	args := make([]interface{}, 0, 8)

	if input.Type != nil {
		sets = append(sets, "type = ?")
		args = append(args, *input.Type)
	}
	if input.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *input.Title)
	}
	if input.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *input.Description)
	}
	if input.Subject != nil {
		sets = append(sets, "subject = ?")
		args = append(args, *input.Subject)
	}
	if input.Instructor != nil {
		sets = append(sets, "instructor = ?")
		args = append(args, *input.Instructor)
	}
	if input.Location != nil {
		sets = append(sets, "location = ?")
		args = append(args, *input.Location)
	}
	if input.StartTime != nil {
		sets = append(sets, "start_time = ?")
		args = append(args, *input.StartTime)
	}
	if input.EndTime != nil {
		sets = append(sets, "end_time = ?")
		args = append(args, *input.EndTime)
	}
	if input.Color != nil {
		sets = append(sets, "color = ?")
		args = append(args, *input.Color)
	}
	if input.IsActive != nil {
		sets = append(sets, "is_active = ?")
		args = append(args, *input.IsActive)
	}

	if len(sets) > 0 {
		query := fmt.Sprintf("UPDATE schedule_entries SET %s WHERE id = ? AND user_id = ?", strings.Join(sets, ", "))
		args = append(args, entryID, userID)
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return domain.ScheduleEntry{}, err
		}
	}

	return r.GetByID(ctx, userID, entryID)
}

func (r *ScheduleRepository) Delete(ctx context.Context, userID, entryID uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM schedule_entries WHERE id = ? AND user_id = ?", entryID, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrScheduleNotFound
	}
	return nil
}

func (r *ScheduleRepository) List(ctx context.Context, userID uint64, filter domain.ScheduleFilter) ([]domain.ScheduleEntry, error) {
	where := []string{"s.user_id = ?", "s.is_active = 1"}
	args := []interface{}{userID}

	if filter.Type != "" {
		where = append(where, "s.type = ?")
		args = append(args, filter.Type)
	}
	if filter.From != nil {
		where = append(where, "s.start_time >= ?")
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		where = append(where, "s.end_time <= ?")
		args = append(args, *filter.To)
	}

	query := fmt.Sprintf("SELECT %s FROM schedule_entries s WHERE %s ORDER BY s.start_time ASC",
		scheduleColumns, strings.Join(where, " AND "))

	var rows []scheduleRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	entries := make([]domain.ScheduleEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, mapScheduleRow(row))
	}
	return entries, nil
}

func (r *ScheduleRepository) BulkInsert(ctx context.Context, userID uint64, inputs []domain.CreateScheduleInput) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	for _, input := range inputs {
		if _, err := r.insert(ctx, tx, userID, input); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(inputs), nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func (r *ScheduleRepository) insert(ctx context.Context, ex execer, userID uint64, input domain.CreateScheduleInput) (uint64, error) {
	metadata, err := json.Marshal(input.Metadata)
	if err != nil {
		return 0, err
	}

	color := input.Color
	if color == "" {
		color = domain.DefaultScheduleColor
	}
	pattern := input.RecurringPattern
	if pattern == "" {
		pattern = domain.RecurringWeekly
	}

	res, err := ex.ExecContext(ctx, `
INSERT INTO schedule_entries (user_id, type, title, description, subject, instructor, location,
                              start_time, end_time, day_of_week, is_recurring, recurring_pattern,
                              recurring_end_date, color, metadata)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		userID, input.Type, input.Title, input.Description, input.Subject, input.Instructor, input.Location,
		input.StartTime, input.EndTime, input.DayOfWeek, input.IsRecurring, pattern,
		input.RecurringEndDate, color, metadata,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func mapScheduleRow(row scheduleRow) domain.ScheduleEntry {
	entry := domain.ScheduleEntry{
		ID:               row.ID,
		UserID:           row.UserID,
		Type:             domain.ScheduleType(row.Type),
		Title:            row.Title,
		StartTime:        row.StartTime,
		EndTime:          row.EndTime,
		IsRecurring:      row.IsRecurring,
		RecurringPattern: domain.RecurringPattern(row.RecurringPattern),
		Color:            row.Color,
		IsActive:         row.IsActive,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		entry.Description = &value
	}
	if row.Subject.Valid {
		value := row.Subject.String
		entry.Subject = &value
	}
	if row.Instructor.Valid {
		value := row.Instructor.String
		entry.Instructor = &value
	}
	if row.Location.Valid {
		value := row.Location.String
		entry.Location = &value
	}
	if row.DayOfWeek.Valid {
		value := int(row.DayOfWeek.Int64)
		entry.DayOfWeek = &value
	}
	if row.RecurringEndDate.Valid {
		value := row.RecurringEndDate.Time
		entry.RecurringEndDate = &value
	}
	if len(row.Metadata) > 0 {
		_ = json.Unmarshal(row.Metadata, &entry.Metadata)
	}

	return entry
}
