package job

import (
	"context"

	"github.com/devhire/matchbox/pkg/kernel"
)

type Repository interface {
	// Create creates a new job
	Create(ctx context.Context, job *Job) error

	// Update updates an existing job
	Update(ctx context.Context, id kernel.JobID, job *Job) error

	// GetByID retrieves a job by ID
	GetByID(ctx context.Context, id kernel.JobID) (*Job, error)

	// Delete deletes a job by ID
	Delete(ctx context.Context, id kernel.JobID) error

	// List retrieves all jobs with pagination
	List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[Job], error)

	// ListByRecruiter retrieves jobs posted by a specific recruiter
	ListByRecruiter(ctx context.Context, recruiterID kernel.RecruiterID, pagination kernel.PaginationOptions) (*kernel.Paginated[Job], error)

	// ListPublished retrieves only published jobs
	ListPublished(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[Job], error)

	// AllPublished retrieves every published job, unpaginated, for batch
	// matching runs
	AllPublished(ctx context.Context) ([]Job, error)

	// Search searches jobs by title, location, and type
	Search(ctx context.Context, req SearchJobsRequest) (*kernel.Paginated[Job], error)

	// Exists checks if a job exists by ID
	Exists(ctx context.Context, id kernel.JobID) (bool, error)

	// CountByRecruiter counts the jobs posted by a recruiter
	CountByRecruiter(ctx context.Context, recruiterID kernel.RecruiterID) (int64, error)
}
