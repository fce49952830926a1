package api

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/taskwell/taskwell-api/internal/domain"
	"github.com/taskwell/taskwell-api/internal/store"
)

// fakeUserStore is an in-memory store.UserStore for handler tests.
type fakeUserStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*domain.User

	// forcedErr, when set, is returned by every method.
	forcedErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{nextID: 1, users: make(map[int64]*domain.User)}
}

func (s *fakeUserStore) Create(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return s.forcedErr
	}
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return store.ErrEmailExists
		}
	}
	user.ID = s.nextID
	s.nextID++
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *fakeUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return nil, s.forcedErr
	}
	user, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *fakeUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return nil, s.forcedErr
	}
	email = domain.NormalizeEmail(email)
	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (s *fakeUserStore) WithTx(tx *sql.Tx) store.UserStore { return s }

// fakeTaskStore is an in-memory store.TaskStore for handler tests.
type fakeTaskStore struct {
	mu     sync.Mutex
	nextID int64
	tasks  map[int64]*domain.Task

	forcedErr error
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{nextID: 1, tasks: make(map[int64]*domain.Task)}
}

func (s *fakeTaskStore) Create(ctx context.Context, task *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return s.forcedErr
	}
	task.ID = s.nextID
	s.nextID++
	copied := *task
	s.tasks[task.ID] = &copied
	return nil
}

func (s *fakeTaskStore) ListByOwner(ctx context.Context, userID int64) ([]*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return nil, s.forcedErr
	}
	owned := make([]*domain.Task, 0)
	for _, task := range s.tasks {
		if task.UserID == userID {
			copied := *task
			owned = append(owned, &copied)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		if !owned[i].CreatedAt.Equal(owned[j].CreatedAt) {
			return owned[i].CreatedAt.After(owned[j].CreatedAt)
		}
		return owned[i].ID > owned[j].ID
	})
	return owned, nil
}

func (s *fakeTaskStore) GetForOwner(ctx context.Context, id, userID int64) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return nil, s.forcedErr
	}
	task, ok := s.tasks[id]
	if !ok || task.UserID != userID {
		return nil, store.ErrTaskNotFound
	}
	copied := *task
	return &copied, nil
}

func (s *fakeTaskStore) UpdateForOwner(
	ctx context.Context,
	id, userID int64,
	update domain.TaskUpdate,
) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return nil, s.forcedErr
	}
	task, ok := s.tasks[id]
	if !ok || task.UserID != userID {
		return nil, store.ErrTaskNotFound
	}
	if update.Title != nil {
		task.Title = *update.Title
	}
	if update.Description != nil {
		task.Description = *update.Description
	}
	if update.Status != nil {
		task.Status = *update.Status
	}
	task.UpdatedAt = time.Now().UTC()
	copied := *task
	return &copied, nil
}

func (s *fakeTaskStore) DeleteForOwner(ctx context.Context, id, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return s.forcedErr
	}
	task, ok := s.tasks[id]
	if !ok || task.UserID != userID {
		return store.ErrTaskNotFound
	}
	delete(s.tasks, id)
	return nil
}

func (s *fakeTaskStore) WithTx(tx *sql.Tx) store.TaskStore { return s }
