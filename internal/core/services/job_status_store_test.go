package services_test

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SscSPs/ops_backend/internal/apperrors"
	"github.com/SscSPs/ops_backend/internal/core/domain"
	"github.com/SscSPs/ops_backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func permutations(tasks []domain.ReportTask) [][]domain.ReportTask {
	if len(tasks) <= 1 {
		return [][]domain.ReportTask{append([]domain.ReportTask(nil), tasks...)}
	}
	var out [][]domain.ReportTask
	for i, first := range tasks {
		rest := make([]domain.ReportTask, 0, len(tasks)-1)
		rest = append(rest, tasks[:i]...)
		rest = append(rest, tasks[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]domain.ReportTask{first}, p...))
		}
	}
	return out
}

func TestJobStatusStore_CreateQueuesEveryTask(t *testing.T) {
	store := services.NewJobStatusStore()

	job, err := store.Create("job-1")
	require.NoError(t, err)

	assert.Equal(t, "job-1", job.JobID)
	assert.Equal(t, domain.TaskStatusQueued, job.Status.Accounts)
	assert.Equal(t, domain.TaskStatusQueued, job.Status.Yearly)
	assert.Equal(t, domain.TaskStatusQueued, job.Status.FS)
	assert.False(t, job.StartTime.IsZero())
	assert.Nil(t, job.EndTime)
	assert.Nil(t, job.TotalDuration)

	_, err = store.Create("job-1")
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.Equal(t, 1, store.Len())
}

func TestJobStatusStore_UnknownJob(t *testing.T) {
	store := services.NewJobStatusStore()

	_, ok := store.Get("missing")
	assert.False(t, ok)

	err := store.MarkProcessing("missing", domain.ReportTaskAccounts)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = store.Complete("missing", domain.ReportTaskAccounts, time.Second)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestJobStatusStore_UnknownTask(t *testing.T) {
	store := services.NewJobStatusStore()
	_, err := store.Create("job")
	require.NoError(t, err)

	_, err = store.Complete("job", domain.ReportTask("balance"), time.Second)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestJobStatusStore_CompletesOnceForEveryOrdering(t *testing.T) {
	orders := permutations(domain.ReportTasks)
	require.Len(t, orders, 6)

	for _, order := range orders {
		t.Run(fmt.Sprint(order), func(t *testing.T) {
			store := services.NewJobStatusStore()
			_, err := store.Create("job")
			require.NoError(t, err)

			for i, task := range order {
				require.NoError(t, store.MarkProcessing("job", task))

				var completed *domain.ReportJob
				if i == 1 {
					completed, err = store.Fail("job", task, errors.New("boom"))
				} else {
					completed, err = store.Complete("job", task, 1500*time.Millisecond)
				}
				require.NoError(t, err)

				snapshot, _ := store.Get("job")
				if i < len(order)-1 {
					assert.Nil(t, completed, "job must not complete before its last task")
					assert.Nil(t, snapshot.EndTime)
					continue
				}
				require.NotNil(t, completed)
				require.NotNil(t, snapshot.EndTime)
				require.NotNil(t, snapshot.TotalDuration)
				assert.Equal(t, snapshot.EndTime.Sub(snapshot.StartTime), *snapshot.TotalDuration)
			}

			first, _ := store.Get("job")
			again, err := store.Complete("job", order[0], time.Second)
			require.NoError(t, err)
			assert.Nil(t, again, "re-evaluating a complete job must not stamp it again")

			second, _ := store.Get("job")
			assert.Equal(t, *first.EndTime, *second.EndTime)
			assert.Equal(t, *first.TotalDuration, *second.TotalDuration)
		})
	}
}

func TestJobStatusStore_StatusStrings(t *testing.T) {
	store := services.NewJobStatusStore()
	_, err := store.Create("job")
	require.NoError(t, err)

	_, err = store.Complete("job", domain.ReportTaskAccounts, 1234*time.Millisecond)
	require.NoError(t, err)
	_, err = store.Fail("job", domain.ReportTaskYearly, errors.New("ledger unreadable"))
	require.NoError(t, err)
	require.NoError(t, store.MarkProcessing("job", domain.ReportTaskFS))

	job, ok := store.Get("job")
	require.True(t, ok)
	assert.Equal(t, "finished in 1.23s", job.Status.Accounts)
	assert.Equal(t, "error: ledger unreadable", job.Status.Yearly)
	assert.Equal(t, domain.TaskStatusProcessing, job.Status.FS)
	assert.False(t, job.IsComplete())
}

func TestJobStatusStore_TerminalStatusIsFinal(t *testing.T) {
	store := services.NewJobStatusStore()
	_, err := store.Create("job")
	require.NoError(t, err)

	_, err = store.Fail("job", domain.ReportTaskAccounts, errors.New("ledger unreadable"))
	require.NoError(t, err)
	_, err = store.Complete("job", domain.ReportTaskYearly, time.Second)
	require.NoError(t, err)
	completed, err := store.Complete("job", domain.ReportTaskFS, 2*time.Second)
	require.NoError(t, err)
	require.NotNil(t, completed)

	// late updates arriving after the job completed
	require.NoError(t, store.MarkProcessing("job", domain.ReportTaskAccounts))
	again, err := store.Complete("job", domain.ReportTaskAccounts, time.Second)
	require.NoError(t, err)
	assert.Nil(t, again)
	_, err = store.Fail("job", domain.ReportTaskFS, errors.New("too late"))
	require.NoError(t, err)

	job, _ := store.Get("job")
	assert.Equal(t, "error: ledger unreadable", job.Status.Accounts)
	assert.Equal(t, "finished in 1.00s", job.Status.Yearly)
	assert.Equal(t, "finished in 2.00s", job.Status.FS)
	assert.True(t, job.Status.AllTerminal())
	assert.Equal(t, *completed.EndTime, *job.EndTime)
}

func TestJobStatusStore_ConcurrentCompletionsStampOnce(t *testing.T) {
	store := services.NewJobStatusStore()
	const jobs = 50

	for i := 0; i < jobs; i++ {
		_, err := store.Create(fmt.Sprintf("job-%d", i))
		require.NoError(t, err)
	}

	var stamped atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < jobs; i++ {
		for _, task := range domain.ReportTasks {
			wg.Add(1)
			go func(jobID string, task domain.ReportTask) {
				defer wg.Done()
				completed, err := store.Complete(jobID, task, time.Millisecond)
				assert.NoError(t, err)
				if completed != nil {
					stamped.Add(1)
				}
			}(fmt.Sprintf("job-%d", i), task)
		}
	}
	wg.Wait()

	assert.Equal(t, int64(jobs), stamped.Load())
	for i := 0; i < jobs; i++ {
		job, _ := store.Get(fmt.Sprintf("job-%d", i))
		assert.True(t, job.IsComplete())
	}
}

func TestJobStatusStore_GetReturnsCopy(t *testing.T) {
	store := services.NewJobStatusStore()
	_, err := store.Create("job")
	require.NoError(t, err)
	for _, task := range domain.ReportTasks {
		_, err := store.Complete("job", task, time.Millisecond)
		require.NoError(t, err)
	}

	job, _ := store.Get("job")
	original := *job.EndTime
	*job.EndTime = original.Add(time.Hour)
	job.Status.Accounts = "tampered"

	fresh, _ := store.Get("job")
	assert.Equal(t, original, *fresh.EndTime)
	assert.NotEqual(t, "tampered", fresh.Status.Accounts)
}
