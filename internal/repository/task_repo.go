package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"task_tracker/internal/model"

	"github.com/jackc/pgx/v5"
)

// TaskRepository defines operations for task data
type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) error
	FindByID(ctx context.Context, id int64) (*model.Task, error)
	FindAll(ctx context.Context, filters model.TaskFilters) ([]model.Task, error)
	Update(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type taskRepository struct {
	db DBTX
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db DBTX) TaskRepository {
	return &taskRepository{db: db}
}

// Create inserts a new task and fills in the generated id and created_at.
func (r *taskRepository) Create(ctx context.Context, t *model.Task) error {
	sql := `INSERT INTO tasks (title, status, user_id) VALUES ($1, $2, $3) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, sql, t.Title, t.Status, t.UserID).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// FindByID retrieves a task by its ID
func (r *taskRepository) FindByID(ctx context.Context, id int64) (*model.Task, error) {
	t := &model.Task{}
	sql := `SELECT id, title, status, user_id, created_at FROM tasks WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(&t.ID, &t.Title, &t.Status, &t.UserID, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find task by ID: %w", err)
	}
	return t, nil
}

// FindAll retrieves tasks matching the optional filters
func (r *taskRepository) FindAll(ctx context.Context, filters model.TaskFilters) ([]model.Task, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT id, title, status, user_id, created_at FROM tasks`)

	args := []interface{}{}
	argCount := 1
	var conditions []string

	if filters.OwnerID != nil {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", argCount))
		args = append(args, *filters.OwnerID)
		argCount++
	}
	if filters.Title != nil && *filters.Title != "" {
		conditions = append(conditions, fmt.Sprintf(`title ILIKE $%d ESCAPE '\'`, argCount))
		args = append(args, "%"+escapeLike(*filters.Title)+"%")
		argCount++
	}
	if filters.Status != nil && *filters.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argCount))
		args = append(args, *filters.Status)
		argCount++
	}
	if filters.CreatedOn != nil {
		conditions = append(conditions, fmt.Sprintf("(created_at AT TIME ZONE 'UTC')::date = $%d::date", argCount))
		args = append(args, filters.CreatedOn.UTC().Format("2006-01-02"))
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY created_at, id")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Status, &t.UserID, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}
	return tasks, nil
}

// Update writes the mutable fields of a task. Owner and created_at are never
// touched. A missing row is reported as ErrNotFound.
func (r *taskRepository) Update(ctx context.Context, t *model.Task) error {
	sql := `UPDATE tasks SET title = $1, status = $2 WHERE id = $3
            RETURNING user_id, created_at`
	err := r.db.QueryRow(ctx, sql, t.Title, t.Status, t.ID).Scan(&t.UserID, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("task %d: %w", t.ID, ErrNotFound)
		}
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}

// Delete removes a task and reports whether a row was deleted.
func (r *taskRepository) Delete(ctx context.Context, id int64) (bool, error) {
	sql := `DELETE FROM tasks WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, sql, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete task: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
