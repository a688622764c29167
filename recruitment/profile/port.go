package profile

import (
	"context"

	"github.com/devhire/matchbox/pkg/kernel"
)

type Repository interface {
	// Create creates a new profile
	Create(ctx context.Context, profile *Profile) error

	// Update updates an existing profile
	Update(ctx context.Context, id kernel.ProfileID, profile *Profile) error

	// GetByID retrieves a profile by ID
	GetByID(ctx context.Context, id kernel.ProfileID) (*Profile, error)

	// GetByUsername retrieves a profile by username
	GetByUsername(ctx context.Context, username string) (*Profile, error)

	// Delete deletes a profile by ID
	Delete(ctx context.Context, id kernel.ProfileID) error

	// List retrieves profiles with pagination
	List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[Profile], error)

	// Exists checks if a profile exists by ID
	Exists(ctx context.Context, id kernel.ProfileID) (bool, error)
}
