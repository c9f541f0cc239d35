package queue

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDispatchUnknownJob(t *testing.T) {
	q := New(4, 1, testLogger())

	err := q.Dispatch(Job{Key: "nope"})
	if !errors.Is(err, ErrUnknownJob) {
		t.Fatalf("got %v, want ErrUnknownJob", err)
	}
}

func TestDispatchFullQueue(t *testing.T) {
	q := New(1, 1, testLogger())
	q.Register("job", func(ctx context.Context, payload any) error { return nil })

	// Workers never started, so the buffer fills up.
	if err := q.Dispatch(Job{Key: "job"}); err != nil {
		t.Fatalf("first dispatch: %v", err)
	}
	err := q.Dispatch(Job{Key: "job"})
	if !errors.Is(err, ErrQueueFull) {
		t.Fatalf("got %v, want ErrQueueFull", err)
	}
}

func TestWorkerProcessesJobs(t *testing.T) {
	q := New(8, 2, testLogger())

	var processed atomic.Int32
	done := make(chan struct{}, 8)
	q.Register("count", func(ctx context.Context, payload any) error {
		processed.Add(1)
		done <- struct{}{}
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	q.Start(ctx)

	for i := 0; i < 5; i++ {
		if err := q.Dispatch(Job{Key: "count", Payload: i}); err != nil {
			t.Fatalf("dispatch %d: %v", i, err)
		}
	}

	for i := 0; i < 5; i++ {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for job %d", i)
		}
	}
	if got := processed.Load(); got != 5 {
		t.Fatalf("processed %d jobs, want 5", got)
	}
}

func TestWorkerRetriesFailedJob(t *testing.T) {
	q := New(4, 1, testLogger())
	q.backoff = time.Millisecond

	var attempts atomic.Int32
	done := make(chan struct{})
	q.Register("flaky", func(ctx context.Context, payload any) error {
		if attempts.Add(1) < 3 {
			return errors.New("transient")
		}
		close(done)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	q.Start(ctx)

	if err := q.Dispatch(Job{Key: "flaky"}); err != nil {
		t.Fatal(err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job was not retried to success")
	}
	if got := attempts.Load(); got != 3 {
		t.Fatalf("attempts = %d, want 3", got)
	}
}

func TestConcurrentDispatch(t *testing.T) {
	q := New(64, 4, testLogger())

	var processed atomic.Int32
	q.Register("count", func(ctx context.Context, payload any) error {
		processed.Add(1)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	q.Start(ctx)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 8; j++ {
				if err := q.Dispatch(Job{Key: "count"}); err != nil {
					t.Errorf("dispatch: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
	q.Stop()

	if got := processed.Load(); got != 64 {
		t.Fatalf("processed %d jobs, want 64", got)
	}
}

func TestStopDrainsBufferedJobs(t *testing.T) {
	q := New(8, 1, testLogger())

	var processed atomic.Int32
	q.Register("count", func(ctx context.Context, payload any) error {
		processed.Add(1)
		return nil
	})

	for i := 0; i < 4; i++ {
		if err := q.Dispatch(Job{Key: "count"}); err != nil {
			t.Fatal(err)
		}
	}

	q.Start(context.Background())
	q.Stop()

	if got := processed.Load(); got != 4 {
		t.Fatalf("processed %d jobs before stop, want 4", got)
	}
	if err := q.Dispatch(Job{Key: "count"}); !errors.Is(err, ErrQueueStopped) {
		t.Fatalf("dispatch after stop: got %v, want ErrQueueStopped", err)
	}
}
