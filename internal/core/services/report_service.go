package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/SscSPs/ops_backend/internal/apperrors"
	"github.com/SscSPs/ops_backend/internal/core/domain"
	portssvc "github.com/SscSPs/ops_backend/internal/core/ports/services"
	"github.com/SscSPs/ops_backend/internal/metrics"
	"github.com/SscSPs/ops_backend/internal/reports"
	"github.com/SscSPs/ops_backend/internal/worker"
)

// TaskSubmitter hands a task to background execution without waiting for it.
type TaskSubmitter interface {
	Submit(task worker.Task) error
}

// reportService fans a report request out into one background task per report kind.
// Each task writes its own outcome to the job store; nothing waits on them.
type reportService struct {
	BaseService
	store      *JobStatusStore
	submitter  TaskSubmitter
	processors map[domain.ReportTask]reports.Processor
	outputDir  string
	metrics    *metrics.Collector
	newJobID   func() string
}

// ReportServiceOption is a functional option for configuring the reporting service
type ReportServiceOption func(*reportService)

// WithReportMetrics records job and task outcomes.
func WithReportMetrics(collector *metrics.Collector) ReportServiceOption {
	return func(s *reportService) {
		s.metrics = collector
	}
}

// WithJobStatusStore replaces the store the service creates for itself.
func WithJobStatusStore(store *JobStatusStore) ReportServiceOption {
	return func(s *reportService) {
		s.store = store
	}
}

// NewReportService creates a new reporting service with the provided options
func NewReportService(submitter TaskSubmitter, processors map[domain.ReportTask]reports.Processor, outputDir string, options ...ReportServiceOption) portssvc.ReportingService {
	svc := &reportService{
		store:      NewJobStatusStore(),
		submitter:  submitter,
		processors: processors,
		outputDir:  outputDir,
		newJobID:   uuid.NewString,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.ReportingService = (*reportService)(nil)

// GenerateReports registers a job and dispatches its tasks. It returns as soon as the
// tasks are queued. A task that cannot be queued is recorded as failed.
func (s *reportService) GenerateReports(ctx context.Context) (string, error) {
	if err := reports.EnsureOutputDir(s.outputDir); err != nil {
		s.LogError(ctx, err, "Failed to prepare report output directory")
		return "", apperrors.NewAppError(http.StatusInternalServerError, "Failed to start report generation", err)
	}

	jobID := s.newJobID()
	if _, err := s.store.Create(jobID); err != nil {
		s.LogError(ctx, err, "Failed to register report job", slog.String("job_id", jobID))
		return "", err
	}
	s.metrics.RecordJobStarted()

	// Tasks outlive the request; they keep its logger for correlation.
	logger := s.GetLogger(ctx).With(slog.String("job_id", jobID))

	for _, task := range domain.ReportTasks {
		task := task // per-iteration copy; the module targets go 1.21 loop semantics
		processor, ok := s.processors[task]
		if !ok {
			s.recordFailure(logger.With(slog.String("task", string(task))), jobID, task, fmt.Errorf("no processor registered for %s", task))
			continue
		}

		err := s.submitter.Submit(worker.Task{
			Name: jobID + "/" + string(task),
			Run: func(taskCtx context.Context) {
				s.runTask(taskCtx, logger, jobID, task, processor)
			},
		})
		if err != nil {
			s.recordFailure(logger.With(slog.String("task", string(task))), jobID, task, fmt.Errorf("failed to dispatch task: %w", err))
		}
	}

	logger.Info("Report job dispatched")
	return jobID, nil
}

// GetJobStatus returns a snapshot of the job.
func (s *reportService) GetJobStatus(ctx context.Context, jobID string) (*domain.ReportJob, error) {
	job, ok := s.store.Get(jobID)
	if !ok {
		s.LogDebug(ctx, "Report job not found", slog.String("job_id", jobID))
		return nil, apperrors.NotFound(fmt.Sprintf("Job %s not found", jobID))
	}
	return &job, nil
}

// runTask records every status under task, the key the processor was dispatched for.
func (s *reportService) runTask(ctx context.Context, logger *slog.Logger, jobID string, task domain.ReportTask, processor reports.Processor) {
	logger = logger.With(slog.String("task", string(task)))

	defer func() {
		if r := recover(); r != nil {
			s.recordFailure(logger, jobID, task, fmt.Errorf("panic: %v", r))
		}
	}()

	if err := s.store.MarkProcessing(jobID, task); err != nil {
		logger.Error("Failed to mark report task processing", slog.String("error", err.Error()))
	}

	result, err := processor.Process(ctx)
	if err != nil {
		s.recordFailure(logger, jobID, task, err)
		return
	}

	s.metrics.RecordTaskFinished(string(task), result.Duration.Seconds())
	logger.Info("Report task finished",
		slog.String("output", result.OutputPath),
		slog.Int("lines", result.Lines),
		slog.Float64("duration_seconds", result.Duration.Seconds()),
	)

	completed, err := s.store.Complete(jobID, task, result.Duration)
	if err != nil {
		logger.Error("Failed to record report task result", slog.String("error", err.Error()))
		return
	}
	s.onJobCompleted(logger, completed)
}

func (s *reportService) recordFailure(logger *slog.Logger, jobID string, task domain.ReportTask, cause error) {
	s.metrics.RecordTaskFailed(string(task))
	logger.Error("Report task failed", slog.String("error", cause.Error()))

	completed, err := s.store.Fail(jobID, task, cause)
	if err != nil {
		logger.Error("Failed to record report task failure", slog.String("error", err.Error()))
		return
	}
	s.onJobCompleted(logger, completed)
}

func (s *reportService) onJobCompleted(logger *slog.Logger, job *domain.ReportJob) {
	if job == nil {
		return
	}
	seconds := job.TotalDuration.Seconds()
	s.metrics.RecordJobCompleted(seconds)
	logger.Info("Report job completed", slog.String("total_duration", fmt.Sprintf("%.2fs", seconds)))
}
