package inmemory

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/money_forecast_app/internal/materialize"
	"github.com/google/uuid"
)

// ErrQueueClosed is returned when publishing to or starting a stopped queue.
var ErrQueueClosed = errors.New("queue is closed")

// Queue is a channel-backed materialization queue safe for concurrent use.
// Jobs do not survive a restart; the scheduler republishes anything still due.
type Queue struct {
	jobChan      chan *materialize.Job
	closeChan    chan struct{}
	wg           sync.WaitGroup
	mu           sync.RWMutex
	closed       bool
	workers      int
	retryBackoff time.Duration
	logger       *slog.Logger
}

// QueueOption configures a Queue.
type QueueOption func(*Queue)

// WithWorkers sets how many jobs are processed concurrently.
func WithWorkers(n int) QueueOption {
	return func(q *Queue) {
		if n > 0 {
			q.workers = n
		}
	}
}

// WithRetryBackoff sets the base delay before a failed job is retried.
// The delay grows linearly with the retry count.
func WithRetryBackoff(d time.Duration) QueueOption {
	return func(q *Queue) {
		q.retryBackoff = d
	}
}

// WithLogger sets the logger used for job failures.
func WithLogger(logger *slog.Logger) QueueOption {
	return func(q *Queue) {
		q.logger = logger
	}
}

// NewQueue creates a queue holding up to bufferSize pending jobs before Publish blocks.
func NewQueue(bufferSize int, options ...QueueOption) *Queue {
	q := &Queue{
		jobChan:      make(chan *materialize.Job, bufferSize),
		closeChan:    make(chan struct{}),
		workers:      1,
		retryBackoff: time.Second,
		logger:       slog.Default(),
	}
	for _, option := range options {
		option(q)
	}
	return q
}

// Publish implements materialize.Publisher.
func (q *Queue) Publish(ctx context.Context, job *materialize.Job) error {
	q.mu.RLock()
	closed := q.closed
	q.mu.RUnlock()
	if closed {
		return ErrQueueClosed
	}

	if job.JobID == "" {
		job.JobID = uuid.NewString()
	}
	if job.Status == "" {
		job.Status = materialize.JobStatusPending
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}
	if job.MaxRetries == 0 {
		job.MaxRetries = materialize.DefaultMaxRetries
	}

	select {
	case q.jobChan <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-q.closeChan:
		return ErrQueueClosed
	}
}

// Start implements materialize.Consumer.
func (q *Queue) Start(ctx context.Context, handler materialize.Handler) error {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return ErrQueueClosed
	}

	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.worker(ctx, handler)
	}
	return nil
}

func (q *Queue) worker(ctx context.Context, handler materialize.Handler) {
	defer q.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case <-q.closeChan:
			return
		case job := <-q.jobChan:
			if job == nil {
				return
			}
			q.processJob(ctx, job, handler)
		}
	}
}

// processJob executes a single job and schedules a retry on failure.
func (q *Queue) processJob(ctx context.Context, job *materialize.Job, handler materialize.Handler) {
	job.Status = materialize.JobStatusRunning
	now := time.Now()
	job.StartedAt = &now

	err := handler(ctx, job)

	completedAt := time.Now()
	job.CompletedAt = &completedAt

	if err == nil {
		job.Status = materialize.JobStatusCompleted
		job.Error = ""
		return
	}

	job.Error = err.Error()
	if job.RetryCount >= job.MaxRetries {
		job.Status = materialize.JobStatusFailed
		q.logger.Error("Materialization job failed",
			slog.String("job_id", job.JobID),
			slog.String("source_id", job.SourceID),
			slog.Int("retry_count", job.RetryCount),
			slog.String("error", err.Error()))
		return
	}

	job.RetryCount++
	job.Status = materialize.JobStatusRetrying
	backoff := time.Duration(job.RetryCount) * q.retryBackoff
	q.logger.Warn("Materialization job failed, retrying",
		slog.String("job_id", job.JobID),
		slog.Int("retry_count", job.RetryCount),
		slog.Duration("backoff", backoff),
		slog.String("error", err.Error()))

	time.AfterFunc(backoff, func() {
		job.Status = materialize.JobStatusPending
		job.StartedAt = nil
		job.CompletedAt = nil
		if err := q.Publish(ctx, job); err != nil {
			q.logger.Warn("Could not requeue materialization job",
				slog.String("job_id", job.JobID),
				slog.String("error", err.Error()))
		}
	})
}

// Stop implements materialize.Consumer. It waits for in-flight jobs or ctx.
func (q *Queue) Stop(ctx context.Context) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	close(q.closeChan)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close implements materialize.Publisher.
func (q *Queue) Close() error {
	return q.Stop(context.Background())
}

var (
	_ materialize.Publisher = (*Queue)(nil)
	_ materialize.Consumer  = (*Queue)(nil)
)
