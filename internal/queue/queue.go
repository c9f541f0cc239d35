// Package queue is an in-process job queue. Producers hand off work without
// waiting for it; workers run jobs with their own retry policy, so a failed
// job never affects the request that enqueued it.
package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

var (
	ErrQueueFull    = errors.New("job queue is full")
	ErrUnknownJob   = errors.New("no handler registered for job")
	ErrQueueStopped = errors.New("job queue is stopped")
)

// Job is one unit of background work, routed to a handler by Key.
type Job struct {
	Key     string
	Payload any
}

// HandlerFunc processes a job payload. A non-nil error triggers a retry.
type HandlerFunc func(ctx context.Context, payload any) error

// Dispatcher is the producer side of the queue.
type Dispatcher interface {
	Dispatch(job Job) error
}

// Queue runs registered handlers on a fixed pool of workers fed by a bounded
// channel. Dispatch never blocks: when the buffer is full it fails fast and
// the caller decides what to do (typically log and move on).
type Queue struct {
	jobs     chan Job
	handlers map[string]HandlerFunc
	logger   *slog.Logger
	workers  int
	attempts int
	backoff  time.Duration

	mu      sync.Mutex
	stopped bool
	wg      sync.WaitGroup
}

func New(size, workers int, logger *slog.Logger) *Queue {
	if size <= 0 {
		size = 64
	}
	if workers <= 0 {
		workers = 1
	}
	return &Queue{
		jobs:     make(chan Job, size),
		handlers: make(map[string]HandlerFunc),
		logger:   logger,
		workers:  workers,
		attempts: 3,
		backoff:  time.Second,
	}
}

// Register binds a handler to a job key. Must be called before Start.
func (q *Queue) Register(key string, handler HandlerFunc) {
	q.handlers[key] = handler
}

// Dispatch enqueues a job without blocking. Safe for concurrent use once
// registration is done.
func (q *Queue) Dispatch(job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if _, ok := q.handlers[job.Key]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownJob, job.Key)
	}
	if q.stopped {
		return ErrQueueStopped
	}
	select {
	case q.jobs <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Start launches the worker pool. Workers exit when the context is canceled
// or the queue is stopped and drained.
func (q *Queue) Start(ctx context.Context) {
	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go func() {
			defer q.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case job, ok := <-q.jobs:
					if !ok {
						return
					}
					q.process(ctx, job)
				}
			}
		}()
	}
}

// Stop closes the queue for new jobs and waits for workers to finish what is
// already buffered.
func (q *Queue) Stop() {
	q.mu.Lock()
	if !q.stopped {
		q.stopped = true
		close(q.jobs)
	}
	q.mu.Unlock()
	q.wg.Wait()
}

func (q *Queue) process(ctx context.Context, job Job) {
	handler := q.handlers[job.Key]
	var err error
	for attempt := 1; attempt <= q.attempts; attempt++ {
		if err = handler(ctx, job.Payload); err == nil {
			q.logger.Info("job processed", "job", job.Key, "attempt", attempt)
			return
		}
		q.logger.Warn("job failed", "job", job.Key, "attempt", attempt, "error", err)
		if attempt < q.attempts {
			select {
			case <-ctx.Done():
				return
			case <-time.After(q.backoff * time.Duration(attempt)):
			}
		}
	}
	q.logger.Error("job dropped after retries", "job", job.Key, "attempts", q.attempts, "error", err)
}
