package application

import (
	"context"

	"github.com/devhire/matchbox/pkg/kernel"
)

type Repository interface {
	// Create stores a new application
	Create(ctx context.Context, app *Application) error

	// Update persists changes to an existing application
	Update(ctx context.Context, app *Application) error

	// GetByID retrieves an application by ID
	GetByID(ctx context.Context, id kernel.ApplicationID) (*Application, error)

	// GetByJobAndProfile retrieves the application a profile made to a job
	GetByJobAndProfile(ctx context.Context, jobID kernel.JobID, profileID kernel.ProfileID) (*Application, error)

	// Delete removes an application
	Delete(ctx context.Context, id kernel.ApplicationID) error

	// ListByJob retrieves applications for a job, best match first
	ListByJob(ctx context.Context, jobID kernel.JobID, pagination kernel.PaginationOptions) (*kernel.Paginated[Application], error)

	// ListByProfile retrieves a profile's applications, newest first
	ListByProfile(ctx context.Context, profileID kernel.ProfileID, pagination kernel.PaginationOptions) (*kernel.Paginated[Application], error)

	// CountByJob counts applications for a job
	CountByJob(ctx context.Context, jobID kernel.JobID) (int64, error)
}
