package store

import (
	"context"
	"database/sql"

	"github.com/taskwell/taskwell-api/internal/domain"
)

// TaskStore defines the interface for task data persistence. Every
// owner-scoped method matches on both the task id and the owner id, so
// cross-tenant access is impossible by construction: a task owned by
// someone else behaves exactly like a task that does not exist.
type TaskStore interface {
	// Create saves a new task and assigns its ID.
	Create(ctx context.Context, task *domain.Task) error

	// ListByOwner returns all tasks owned by userID, newest-created first.
	ListByOwner(ctx context.Context, userID int64) ([]*domain.Task, error)

	// GetForOwner retrieves one task by id if owned by userID.
	// Returns ErrTaskNotFound otherwise.
	GetForOwner(ctx context.Context, id, userID int64) (*domain.Task, error)

	// UpdateForOwner applies a partial update to the task identified by
	// (id, userID): nil fields are left untouched and updated_at is
	// refreshed. Returns the updated task, or ErrTaskNotFound.
	UpdateForOwner(ctx context.Context, id, userID int64, update domain.TaskUpdate) (*domain.Task, error)

	// DeleteForOwner removes the task identified by (id, userID).
	// Returns ErrTaskNotFound if no such row exists.
	DeleteForOwner(ctx context.Context, id, userID int64) error

	// WithTx returns a TaskStore bound to the given transaction.
	WithTx(tx *sql.Tx) TaskStore
}
