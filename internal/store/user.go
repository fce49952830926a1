package store

import (
	"context"
	"database/sql"

	"github.com/taskwell/taskwell-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user and assigns its ID. The user must already
	// carry a hashed password; plaintext never reaches the store.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail retrieves a user by their normalized email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// WithTx returns a UserStore bound to the given transaction, so
	// multiple operations can run atomically under a caller-managed tx.
	WithTx(tx *sql.Tx) UserStore
}
