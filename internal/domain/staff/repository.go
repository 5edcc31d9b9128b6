package staff

import (
	"context"
)

// Repository is a read-only lookup into the externally owned staff store.
type Repository interface {
	// GetByID returns the staff member or ErrStaffNotFound.
	GetByID(ctx context.Context, id string) (Staff, error)

	// List returns all staff members ordered by name.
	List(ctx context.Context) ([]Staff, error)
}
