package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/SscSPs/ops_backend/internal/apperrors"
	"github.com/SscSPs/ops_backend/internal/core/domain"
)

// JobStatusStore holds the status of every report job for the lifetime of the process.
// It is not a persistence layer: jobs are never evicted and do not survive a restart.
type JobStatusStore struct {
	mu      sync.RWMutex
	jobs    map[string]*domain.ReportJob
	nowFunc func() time.Time
}

// NewJobStatusStore creates an empty store.
func NewJobStatusStore() *JobStatusStore {
	return &JobStatusStore{
		jobs:    make(map[string]*domain.ReportJob),
		nowFunc: time.Now,
	}
}

// Create registers a job with every task queued and the start time set to now.
func (s *JobStatusStore) Create(jobID string) (domain.ReportJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[jobID]; exists {
		return domain.ReportJob{}, apperrors.Conflict(fmt.Sprintf("job %s already exists", jobID))
	}

	job := &domain.ReportJob{
		JobID: jobID,
		Status: domain.ReportTaskStatuses{
			Accounts: domain.TaskStatusQueued,
			Yearly:   domain.TaskStatusQueued,
			FS:       domain.TaskStatusQueued,
		},
		StartTime: s.nowFunc().UTC(),
	}
	s.jobs[jobID] = job
	return copyJob(job), nil
}

// MarkProcessing records that a task has started.
func (s *JobStatusStore) MarkProcessing(jobID string, task domain.ReportTask) error {
	_, err := s.update(jobID, task, domain.TaskStatusProcessing)
	return err
}

// Complete records a successful task. The returned job is non-nil only when this
// update made the whole job complete.
func (s *JobStatusStore) Complete(jobID string, task domain.ReportTask, took time.Duration) (*domain.ReportJob, error) {
	return s.update(jobID, task, domain.FinishedStatus(took))
}

// Fail records a failed task. The returned job is non-nil only when this update
// made the whole job complete.
func (s *JobStatusStore) Fail(jobID string, task domain.ReportTask, cause error) (*domain.ReportJob, error) {
	return s.update(jobID, task, domain.ErrorStatus(cause))
}

// update sets the task status and re-evaluates completion under the same lock, so
// that of several concurrent final updates exactly one stamps the end time.
// Updates to a task that already finished or failed are ignored.
func (s *JobStatusStore) update(jobID string, task domain.ReportTask, status string) (*domain.ReportJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[jobID]
	if !ok {
		return nil, apperrors.NotFound(fmt.Sprintf("job %s not found", jobID))
	}
	current, ok := job.Status.Get(task)
	if !ok {
		return nil, apperrors.InvalidInput(fmt.Sprintf("unknown report task %q", task))
	}
	// A terminal status is final.
	if domain.IsTerminalStatus(current) {
		return nil, nil
	}
	job.Status.Set(task, status)

	if job.IsComplete() || !job.Status.AllTerminal() {
		return nil, nil
	}

	end := s.nowFunc().UTC()
	total := end.Sub(job.StartTime)
	job.EndTime = &end
	job.TotalDuration = &total

	completed := copyJob(job)
	return &completed, nil
}

// Get returns a snapshot of the job.
func (s *JobStatusStore) Get(jobID string) (domain.ReportJob, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[jobID]
	if !ok {
		return domain.ReportJob{}, false
	}
	return copyJob(job), true
}

// Len returns the number of tracked jobs.
func (s *JobStatusStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.jobs)
}

func copyJob(job *domain.ReportJob) domain.ReportJob {
	c := *job
	if job.EndTime != nil {
		end := *job.EndTime
		c.EndTime = &end
	}
	if job.TotalDuration != nil {
		total := *job.TotalDuration
		c.TotalDuration = &total
	}
	return c
}
