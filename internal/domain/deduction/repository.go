package deduction

import (
	"context"
)

// Repository is the deduction ledger. The unique index on
// (staff_id, date, reason) makes Upsert and DeleteByKey idempotent.
type Repository interface {
	// Upsert inserts the row or, on conflict of the natural key, updates
	// its amount.
	Upsert(ctx context.Context, rec Record) (Record, error)

	// DeleteByKey removes the row for the key if it exists. Deleting an
	// absent row is not an error.
	DeleteByKey(ctx context.Context, staffID, date, reason string) error

	// ListByStaffMonth returns all rows for a staff member whose date falls
	// in the YYYY-MM month, ordered by date ascending.
	ListByStaffMonth(ctx context.Context, staffID, month string) ([]Record, error)

	// ListByStaff returns all rows for a staff member, newest first.
	ListByStaff(ctx context.Context, staffID string) ([]Record, error)
}

type Service interface {
	// Add authors a manual deduction entry.
	Add(ctx context.Context, req AddRequest) (Response, error)

	// List returns a staff member's deductions, optionally restricted to a
	// YYYY-MM month.
	List(ctx context.Context, staffID, month string) ([]Response, error)
}
