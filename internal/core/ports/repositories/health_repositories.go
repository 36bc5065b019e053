package repositories

import "context"

// HealthChecker verifies the datastore is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
