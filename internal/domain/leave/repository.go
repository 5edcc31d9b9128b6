package leave

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, rec Record) (Record, error)

	// ListByStaff returns all leave rows for a staff member, newest first.
	ListByStaff(ctx context.Context, staffID string) ([]Record, error)

	// ListByStaffMonth returns leave rows whose date falls in the YYYY-MM
	// month, ordered by date ascending.
	ListByStaffMonth(ctx context.Context, staffID, month string) ([]Record, error)
}

type Service interface {
	Add(ctx context.Context, req AddRequest) (Response, error)
	List(ctx context.Context, staffID string) ([]Response, error)
}
