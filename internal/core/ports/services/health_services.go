package services

import "context"

// HealthService reports whether the application's dependencies are reachable.
type HealthService interface {
	Check(ctx context.Context) error
}
