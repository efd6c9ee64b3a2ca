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

const taskColumns = `
  t.id, t.user_id, t.title, t.description, t.category, t.priority, t.difficulty,
  t.estimated_duration, t.actual_duration, t.deadline, t.start_time, t.end_time,
  t.status, t.progress, t.tags, t.location, t.subject, t.instructor,
  t.ai_generated, t.notes, t.attachments, t.created_at, t.updated_at`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID                uint64         `db:"id"`
	UserID            uint64         `db:"user_id"`
	Title             string         `db:"title"`
	Description       sql.NullString `db:"description"`
	Category          string         `db:"category"`
	Priority          string         `db:"priority"`
	Difficulty        string         `db:"difficulty"`
	EstimatedDuration int            `db:"estimated_duration"`
	ActualDuration    sql.NullInt64  `db:"actual_duration"`
	Deadline          time.Time      `db:"deadline"`
	StartTime         sql.NullTime   `db:"start_time"`
	EndTime           sql.NullTime   `db:"end_time"`
	Status            string         `db:"status"`
	Progress          int            `db:"progress"`
	Tags              []byte         `db:"tags"`
	Location          sql.NullString `db:"location"`
	Subject           sql.NullString `db:"subject"`
	Instructor        sql.NullString `db:"instructor"`
	AIGenerated       bool           `db:"ai_generated"`
	Notes             []byte         `db:"notes"`
	Attachments       []byte         `db:"attachments"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, userID uint64, input domain.CreateTaskInput) (domain.Task, error) {
	tags, err := json.Marshal(input.Tags)
	if err != nil {
		return domain.Task{}, err
	}

	res, err := r.db.ExecContext(ctx, `
INSERT INTO tasks (user_id, title, description, category, priority, difficulty,
                   estimated_duration, deadline, tags, location, subject, instructor,
                   ai_generated, notes, attachments)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, JSON_ARRAY(), JSON_ARRAY())`,
		userID, input.Title, input.Description, input.Category, input.Priority, input.Difficulty,
		input.EstimatedDuration, input.Deadline, tags, input.Location, input.Subject, input.Instructor,
		input.AIGenerated,
	)
	if err != nil {
		return domain.Task{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}
	taskID := uint64(id)

	if err := r.replaceDependencies(ctx, taskID, input.Dependencies); err != nil {
		return domain.Task{}, err
	}

	return r.GetByID(ctx, userID, taskID)
}

func (r *TaskRepository) GetByID(ctx context.Context, userID, taskID uint64) (domain.Task, error) {
	var row taskRow
	query := fmt.Sprintf("SELECT %s FROM tasks t WHERE t.id = ? AND t.user_id = ?", taskColumns)
	if err := r.db.GetContext(ctx, &row, query, taskID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	task := mapTaskRow(row)
	deps, err := r.dependenciesOf(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	task.Dependencies = deps
	return task, nil
}

func (r *TaskRepository) Update(ctx context.Context, userID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	sets := make([]string, 0, 12)
	args := make([]interface{}, 0, 12)

	if input.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *input.Title)
	}
	if input.DescriptionSet {
		sets = append(sets, "description = ?")
		args = append(args, input.Description)
	}
	if input.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, *input.Category)
	}
	if input.Priority != nil {
		sets = append(sets, "priority = ?")
		args = append(args, *input.Priority)
	}
	if input.Difficulty != nil {
		sets = append(sets, "difficulty = ?")
		args = append(args, *input.Difficulty)
	}
	if input.EstimatedDuration != nil {
		sets = append(sets, "estimated_duration = ?")
		args = append(args, *input.EstimatedDuration)
	}
	if input.ActualDuration != nil {
		sets = append(sets, "actual_duration = ?")
		args = append(args, *input.ActualDuration)
	}
	if input.Deadline != nil {
		sets = append(sets, "deadline = ?")
		args = append(args, *input.Deadline)
	}
	if input.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *input.Status)
		switch *input.Status {
		case domain.TaskStatusInProgress:
			sets = append(sets, "start_time = ?")
			args = append(args, time.Now())
		case domain.TaskStatusCompleted:
			sets = append(sets, "end_time = ?", "progress = 100")
			args = append(args, time.Now())
		}
	}
	if input.Progress != nil {
		sets = append(sets, "progress = ?")
		args = append(args, *input.Progress)
	}
	if input.TagsSet {
		tags, err := json.Marshal(input.Tags)
		if err != nil {
			return domain.Task{}, err
		}
		sets = append(sets, "tags = ?")
		args = append(args, tags)
	}
	if input.LocationSet {
		sets = append(sets, "location = ?")
		args = append(args, input.Location)
	}
	if input.SubjectSet {
		sets = append(sets, "subject = ?")
		args = append(args, input.Subject)
	}
	if input.InstructorSet {
		sets = append(sets, "instructor = ?")
		args = append(args, input.Instructor)
	}

	if len(sets) > 0 {
		query := fmt.Sprintf("UPDATE tasks SET %s WHERE id = ? AND user_id = ?", strings.Join(sets, ", "))
		args = append(args, taskID, userID)

		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return domain.Task{}, err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return domain.Task{}, err
		}
		if affected == 0 {
			// Distinguish a no-op update from a missing row.
			if _, err := r.GetByID(ctx, userID, taskID); err != nil {
				return domain.Task{}, err
			}
		}
	}

	if input.DependenciesSet {
		if _, err := r.GetByID(ctx, userID, taskID); err != nil {
			return domain.Task{}, err
		}
		if err := r.replaceDependencies(ctx, taskID, input.Dependencies); err != nil {
			return domain.Task{}, err
		}
	}

	return r.GetByID(ctx, userID, taskID)
}

func (r *TaskRepository) Delete(ctx context.Context, userID, taskID uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ? AND user_id = ?", taskID, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) List(ctx context.Context, userID uint64, filter domain.TaskFilter) ([]domain.Task, error) {
	where := []string{"t.user_id = ?"}
	args := []interface{}{userID}

	if filter.Status != "" {
		where = append(where, "t.status = ?")
		args = append(args, filter.Status)
	}
	if filter.Category != "" {
		where = append(where, "t.category = ?")
		args = append(args, filter.Category)
	}
	if filter.Priority != "" {
		where = append(where, "t.priority = ?")
		args = append(args, filter.Priority)
	}
	if filter.DeadlineFrom != nil {
		where = append(where, "t.deadline >= ?")
		args = append(args, *filter.DeadlineFrom)
	}
	if filter.DeadlineTo != nil {
		where = append(where, "t.deadline <= ?")
		args = append(args, *filter.DeadlineTo)
	}

	order := "t.deadline ASC"
	switch filter.SortBy {
	case domain.SortByPriority:
		order = "FIELD(t.priority, 'urgent', 'high', 'medium', 'low'), t.deadline ASC"
	case domain.SortByCreated:
		order = "t.created_at DESC"
	}

	query := fmt.Sprintf("SELECT %s FROM tasks t WHERE %s ORDER BY %s",
		taskColumns, strings.Join(where, " AND "), order)

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRow(row))
	}
	if err := r.attachDependencies(ctx, userID, tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) ListDependencyEdges(ctx context.Context, userID uint64) (map[uint64][]uint64, error) {
	type edge struct {
		TaskID    uint64 `db:"task_id"`
		DependsOn uint64 `db:"depends_on_task_id"`
	}

	var edges []edge
	err := r.db.SelectContext(ctx, &edges, `
SELECT d.task_id, d.depends_on_task_id
FROM task_dependencies d
JOIN tasks t ON t.id = d.task_id
WHERE t.user_id = ?`, userID)
	if err != nil {
		return nil, err
	}

	result := make(map[uint64][]uint64, len(edges))
	for _, e := range edges {
		result[e.TaskID] = append(result[e.TaskID], e.DependsOn)
	}
	return result, nil
}

func (r *TaskRepository) replaceDependencies(ctx context.Context, taskID uint64, deps []uint64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM task_dependencies WHERE task_id = ?", taskID); err != nil {
		return err
	}
	for _, dep := range deps {
		_, err := r.db.ExecContext(ctx,
			"INSERT INTO task_dependencies (task_id, depends_on_task_id) VALUES (?, ?)", taskID, dep)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *TaskRepository) dependenciesOf(ctx context.Context, taskID uint64) ([]uint64, error) {
	var deps []uint64
	err := r.db.SelectContext(ctx, &deps,
		"SELECT depends_on_task_id FROM task_dependencies WHERE task_id = ? ORDER BY depends_on_task_id", taskID)
	if err != nil {
		return nil, err
	}
	return deps, nil
}

func (r *TaskRepository) attachDependencies(ctx context.Context, userID uint64, tasks []domain.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	edges, err := r.ListDependencyEdges(ctx, userID)
	if err != nil {
		return err
	}
	for i := range tasks {
		tasks[i].Dependencies = edges[tasks[i].ID]
	}
	return nil
}

func mapTaskRow(row taskRow) domain.Task {
	task := domain.Task{
		ID:                row.ID,
		UserID:            row.UserID,
		Title:             row.Title,
		Category:          domain.TaskCategory(row.Category),
		Priority:          domain.TaskPriority(row.Priority),
		Difficulty:        domain.TaskDifficulty(row.Difficulty),
		EstimatedDuration: row.EstimatedDuration,
		Deadline:          row.Deadline,
		Status:            domain.TaskStatus(row.Status),
		Progress:          row.Progress,
		AIGenerated:       row.AIGenerated,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}
	if row.ActualDuration.Valid {
		value := int(row.ActualDuration.Int64)
		task.ActualDuration = &value
	}
	if row.StartTime.Valid {
		value := row.StartTime.Time
		task.StartTime = &value
	}
	if row.EndTime.Valid {
		value := row.EndTime.Time
		task.EndTime = &value
	}
	if row.Location.Valid {
		value := row.Location.String
		task.Location = &value
	}
	if row.Subject.Valid {
		value := row.Subject.String
		task.Subject = &value
	}
	if row.Instructor.Valid {
		value := row.Instructor.String
		task.Instructor = &value
	}

	if len(row.Tags) > 0 {
		_ = json.Unmarshal(row.Tags, &task.Tags)
	}
	if len(row.Notes) > 0 {
		_ = json.Unmarshal(row.Notes, &task.Notes)
	}
	if len(row.Attachments) > 0 {
		_ = json.Unmarshal(row.Attachments, &task.Attachments)
	}

	return task
}
