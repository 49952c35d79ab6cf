// Package materialize carries "realize recurring item X on date Y" requests
// from the scheduler to the worker that writes ledger rows. The projection
// engine never talks to it.
package materialize

import (
	"context"
	"time"

	"github.com/SscSPs/money_forecast_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JobStatus represents the current status of a job.
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
	JobStatusRetrying  JobStatus = "retrying"
)

// DefaultMaxRetries is applied to jobs published without MaxRetries.
const DefaultMaxRetries = 3

// Job asks for one occurrence of a recurring item to be written to the ledger.
type Job struct {
	JobID       string            `json:"jobID"`
	AccountID   string            `json:"accountID"`
	SourceKind  domain.SourceKind `json:"sourceKind"`
	SourceID    string            `json:"sourceID"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	DueDate     time.Time         `json:"dueDate"`
	Amount      decimal.Decimal   `json:"amount"` // Signed from the account's point of view

	Status      JobStatus  `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	StartedAt   *time.Time `json:"startedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Error       string     `json:"error,omitempty"`
	RetryCount  int        `json:"retryCount"`
	MaxRetries  int        `json:"maxRetries"`
}

// JobFromTransaction builds a pending job for a projected occurrence.
func JobFromTransaction(accountID string, tx domain.GeneratedTransaction) *Job {
	return &Job{
		AccountID:   accountID,
		SourceKind:  tx.SourceKind,
		SourceID:    tx.SourceID,
		Title:       tx.Title,
		Description: tx.Description,
		DueDate:     tx.Date,
		Amount:      tx.Amount,
	}
}

// Publisher enqueues materialization jobs.
type Publisher interface {
	// Publish enqueues a job, assigning its ID and defaults when missing.
	Publish(ctx context.Context, job *Job) error

	// Close stops accepting jobs and releases resources.
	Close() error
}

// Consumer delivers published jobs to a handler.
type Consumer interface {
	// Start begins consuming jobs; handler is called for each job received.
	Start(ctx context.Context, handler Handler) error

	// Stop stops consuming jobs and waits for in-flight jobs to complete.
	Stop(ctx context.Context) error
}

// Handler processes one job. A returned error makes the job eligible for retry.
type Handler func(ctx context.Context, job *Job) error
