package repositories

import (
	"context"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	// Ping returns an error if the store cannot serve requests.
	Ping(ctx context.Context) error
}
