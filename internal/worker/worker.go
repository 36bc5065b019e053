package worker

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
)

// Worker executes tasks from the pool queue until it is closed.
type Worker struct {
	id     int
	taskCh <-chan Task
	logger *slog.Logger
}

func newWorker(id int, taskCh <-chan Task, logger *slog.Logger) *Worker {
	return &Worker{
		id:     id,
		taskCh: taskCh,
		logger: logger.With(slog.Int("worker_id", id)),
	}
}

// Run drains the task channel.
func (w *Worker) Run(ctx context.Context) {
	for task := range w.taskCh {
		w.execute(ctx, task)
	}
}

func (w *Worker) execute(ctx context.Context, task Task) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error("Task panicked",
				slog.String("task", task.Name),
				slog.String("panic", fmt.Sprint(r)),
				slog.String("stack", string(debug.Stack())))
		}
	}()

	if task.Run == nil {
		w.logger.Warn("Skipping task without a run function", slog.String("task", task.Name))
		return
	}
	task.Run(ctx)
}
