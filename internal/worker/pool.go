// Package worker runs submitted tasks on a fixed set of goroutines.
//
// Tasks report their own outcome (the pool never collects results), so a
// submitter fires work and moves on. A task that panics is logged and the
// goroutine keeps serving the queue.
package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

var (
	// ErrPoolClosed is returned when submitting to a stopped pool.
	ErrPoolClosed = errors.New("worker pool is closed")
	// ErrPoolNotStarted is returned when submitting before Start.
	ErrPoolNotStarted = errors.New("worker pool not started")
	// ErrQueueFull is returned when every queue slot is taken.
	ErrQueueFull = errors.New("worker pool queue is full")
)

// Task is a unit of work executed by one pool goroutine.
type Task struct {
	// Name identifies the task in logs.
	Name string
	Run  func(ctx context.Context)
}

// Pool manages a fixed number of workers reading from a shared buffered queue.
type Pool struct {
	workers []*Worker
	taskCh  chan Task
	wg      sync.WaitGroup
	logger  *slog.Logger

	// mu guards started/stopped and the close of taskCh against in-flight sends.
	mu       sync.RWMutex
	started  bool
	stopped  bool
	stopOnce sync.Once
}

// NewPool creates a pool whose queue holds up to bufferSize pending tasks.
func NewPool(bufferSize int, logger *slog.Logger) *Pool {
	if bufferSize < 0 {
		bufferSize = 0
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pool{
		taskCh: make(chan Task, bufferSize),
		logger: logger,
	}
}

// Start launches workerCount goroutines. ctx is handed to every task; it is
// not cancelled by Stop, so running tasks finish on shutdown.
func (p *Pool) Start(ctx context.Context, workerCount int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return errors.New("pool already started")
	}
	if p.stopped {
		return ErrPoolClosed
	}
	if workerCount <= 0 {
		workerCount = 1
	}

	for i := 0; i < workerCount; i++ {
		w := newWorker(i, p.taskCh, p.logger)
		p.workers = append(p.workers, w)

		p.wg.Add(1)
		go func(w *Worker) {
			defer p.wg.Done()
			w.Run(ctx)
		}(w)
	}

	p.started = true
	p.logger.Info("Worker pool started", slog.Int("workers", workerCount), slog.Int("queue_size", cap(p.taskCh)))
	return nil
}

// Submit enqueues a task without waiting. It returns ErrQueueFull when the
// queue has no free slot.
func (p *Pool) Submit(task Task) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.started {
		return ErrPoolNotStarted
	}
	if p.stopped {
		return ErrPoolClosed
	}

	select {
	case p.taskCh <- task:
		return nil
	default:
		return ErrQueueFull
	}
}

// Stop stops accepting tasks, lets queued and running tasks finish and waits for the workers.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		p.mu.Lock()
		wasStarted := p.started
		p.stopped = true
		close(p.taskCh)
		p.mu.Unlock()

		if wasStarted {
			p.wg.Wait()
			p.logger.Info("Worker pool stopped")
		}
	})
}

// WorkerCount returns the number of started workers.
func (p *Pool) WorkerCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.workers)
}

// IsStarted reports whether Start has been called successfully.
func (p *Pool) IsStarted() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.started
}
