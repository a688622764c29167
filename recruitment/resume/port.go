package resume

import (
	"context"
	"time"

	"github.com/devhire/matchbox/pkg/kernel"
)

type Repository interface {
	// Create stores a parsed resume
	Create(ctx context.Context, resume *Resume) error

	// GetByID retrieves a resume by ID
	GetByID(ctx context.Context, id kernel.ResumeID) (*Resume, error)

	// GetByProfileID retrieves the latest resume for a profile
	GetByProfileID(ctx context.Context, profileID kernel.ProfileID) (*Resume, error)

	// ListByProfileID retrieves all resumes for a profile
	ListByProfileID(ctx context.Context, profileID kernel.ProfileID) ([]*Resume, error)

	// Delete removes a resume
	Delete(ctx context.Context, id kernel.ResumeID) error

	// List retrieves all resumes with pagination
	List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[Resume], error)
}

type ParseJobRepository interface {
	Create(ctx context.Context, job *ParseJob) error
	Update(ctx context.Context, job *ParseJob) error
	GetByID(ctx context.Context, jobID kernel.ParseJobID) (*ParseJob, error)
	ListByProfileID(ctx context.Context, profileID kernel.ProfileID, pagination kernel.PaginationOptions) (*kernel.Paginated[ParseJob], error)

	// For the retry mechanism
	GetFailedJobsForRetry(ctx context.Context, limit int) ([]*ParseJob, error)
}

// Queue defines the interface for parse job queue operations
type ParseQueue interface {
	// Enqueue adds a job to the queue
	Enqueue(ctx context.Context, jobID kernel.ParseJobID, payload any) error

	// Dequeue gets a job from the queue (blocking with timeout)
	Dequeue(ctx context.Context, timeout time.Duration) ([]byte, error)

	// EnqueueDelayed schedules a job for later processing (for retries)
	EnqueueDelayed(ctx context.Context, jobID kernel.ParseJobID, payload any, delay time.Duration) error

	// MoveDelayedToReady moves delayed jobs that are ready to the main queue
	MoveDelayedToReady(ctx context.Context) (int, error)

	// Size returns the number of jobs in the queue
	Size(ctx context.Context) (int64, error)
}
