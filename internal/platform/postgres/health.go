package postgres

import (
	"context"
	"time"

	"github.com/taskwell/taskwell-api/internal/store"
)

// healthCheckTimeout bounds the liveness probe so a wedged database
// cannot stall the health endpoint.
const healthCheckTimeout = 2 * time.Second

// HealthChecker reports database connectivity.
type HealthChecker struct {
	db store.DBTX
}

// NewHealthChecker creates a HealthChecker over the given connection.
func NewHealthChecker(db store.DBTX) *HealthChecker {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	return &HealthChecker{db: db}
}

// Check runs a trivial query against the database and returns an error
// when the database is unreachable.
func (h *HealthChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	var one int
	return h.db.QueryRowContext(ctx, "SELECT 1").Scan(&one)
}
