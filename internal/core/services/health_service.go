package services

import (
	"context"
	"fmt"

	portsrepo "github.com/SscSPs/ops_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ops_backend/internal/core/ports/services"
)

type healthService struct {
	BaseService
	checker portsrepo.HealthChecker
}

// NewHealthService creates a health service probing the given checker.
func NewHealthService(checker portsrepo.HealthChecker) portssvc.HealthService {
	return &healthService{checker: checker}
}

func (s *healthService) Check(ctx context.Context) error {
	if s.checker == nil {
		return nil
	}
	if err := s.checker.Ping(ctx); err != nil {
		s.LogError(ctx, err, "Database health check failed")
		return fmt.Errorf("database unreachable: %w", err)
	}
	return nil
}
