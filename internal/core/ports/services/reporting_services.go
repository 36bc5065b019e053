package services

import (
	"context"

	"github.com/SscSPs/ops_backend/internal/core/domain"
)

// ReportingService defines operations for generating ledger reports asynchronously
type ReportingService interface {
	// GenerateReports starts a report job and returns its id without waiting for the tasks.
	GenerateReports(ctx context.Context) (string, error)

	// GetJobStatus returns a snapshot of the job. It returns apperrors.ErrNotFound for unknown ids.
	GetJobStatus(ctx context.Context, jobID string) (*domain.ReportJob, error)
}
