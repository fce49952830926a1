package domain

import (
	"strings"
	"time"
)

// Task is a per-user work item. Every read and mutation is scoped by
// both the task id and the owning user id, so a task can never be
// observed outside its owner's tenancy.
type Task struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`

	// Status is client-supplied and not constrained to an enumeration
	// beyond being non-empty.
	Status string `json:"status"`

	// UserID is the owning user. Immutable after creation.
	UserID int64 `json:"user_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewTask creates a Task owned by userID with both timestamps set to
// the current instant.
func NewTask(userID int64, title, description, status string) (*Task, error) {
	now := time.Now().UTC()

	task := &Task{
		Title:       strings.TrimSpace(title),
		Description: description,
		Status:      strings.TrimSpace(status),
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks the task's required fields.
func (t *Task) Validate() error {
	if t.Title == "" {
		return ErrEmptyTitle
	}
	if t.Status == "" {
		return ErrEmptyStatus
	}
	if t.UserID == 0 {
		return ErrMissingOwner
	}
	return nil
}

// TaskUpdate carries a partial update: nil fields are left untouched.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *string
}

// Validate rejects updates that would blank out a required field. An
// update with no fields set is valid and acts as a timestamp refresh.
func (u TaskUpdate) Validate() error {
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		return ErrEmptyTitle
	}
	if u.Status != nil && strings.TrimSpace(*u.Status) == "" {
		return ErrEmptyStatus
	}
	return nil
}
