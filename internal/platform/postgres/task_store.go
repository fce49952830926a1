package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/taskwell/taskwell-api/internal/domain"
	"github.com/taskwell/taskwell-api/internal/platform/logger"
	"github.com/taskwell/taskwell-api/internal/store"
)

// TaskStore implements store.TaskStore using a PostgreSQL database.
// Every owner-scoped query matches on both id and user_id, so a task
// belonging to another owner is indistinguishable from a missing one.
type TaskStore struct {
	db store.DBTX
}

// NewTaskStore creates a PostgreSQL implementation of store.TaskStore.
func NewTaskStore(db store.DBTX) *TaskStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	return &TaskStore{db: db}
}

var _ store.TaskStore = (*TaskStore)(nil)

// Create implements store.TaskStore.Create.
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContext(ctx)

	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO tasks (title, description, status, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		task.Title,
		task.Description,
		task.Status,
		task.UserID,
		task.CreatedAt,
		task.UpdatedAt,
	).Scan(&task.ID)
	if err != nil {
		log.Error("failed to insert task", "error", err, "user_id", task.UserID)
		return MapError(err)
	}

	return nil
}

// ListByOwner implements store.TaskStore.ListByOwner.
func (s *TaskStore) ListByOwner(ctx context.Context, userID int64) ([]*domain.Task, error) {
	log := logger.FromContext(ctx)

	query := `
		SELECT id, title, description, status, user_id, created_at, updated_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to query tasks", "error", err, "user_id", userID)
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			log.Error("failed to scan task row", "error", err, "user_id", userID)
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating task rows", "error", err, "user_id", userID)
		return nil, MapError(err)
	}

	return tasks, nil
}

// GetForOwner implements store.TaskStore.GetForOwner.
func (s *TaskStore) GetForOwner(ctx context.Context, id, userID int64) (*domain.Task, error) {
	query := `
		SELECT id, title, description, status, user_id, created_at, updated_at
		FROM tasks
		WHERE id = $1 AND user_id = $2
	`

	task, err := scanTask(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, store.ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

// UpdateForOwner implements store.TaskStore.UpdateForOwner. The partial
// update runs as a single statement: COALESCE keeps columns whose
// update field is nil, and updated_at always advances.
func (s *TaskStore) UpdateForOwner(
	ctx context.Context,
	id, userID int64,
	update domain.TaskUpdate,
) (*domain.Task, error) {
	log := logger.FromContext(ctx)

	if err := update.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE tasks
		SET title       = COALESCE($1, title),
		    description = COALESCE($2, description),
		    status      = COALESCE($3, status),
		    updated_at  = $4
		WHERE id = $5 AND user_id = $6
		RETURNING id, title, description, status, user_id, created_at, updated_at
	`

	task, err := scanTask(s.db.QueryRowContext(ctx, query,
		update.Title,
		update.Description,
		update.Status,
		time.Now().UTC(),
		id,
		userID,
	))
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to update task", "error", err, "task_id", id, "user_id", userID)
		return nil, err
	}

	return task, nil
}

// DeleteForOwner implements store.TaskStore.DeleteForOwner.
func (s *TaskStore) DeleteForOwner(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	query := `DELETE FROM tasks WHERE id = $1 AND user_id = $2`

	result, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		log.Error("failed to delete task", "error", err, "task_id", id, "user_id", userID)
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrTaskNotFound)
}

// WithTx implements store.TaskStore.WithTx.
func (s *TaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return &TaskStore{db: tx}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var task domain.Task
	var description sql.NullString
	err := row.Scan(
		&task.ID,
		&task.Title,
		&description,
		&task.Status,
		&task.UserID,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, MapError(err)
	}
	task.Description = description.String
	return &task, nil
}
