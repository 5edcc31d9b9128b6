package attendance

import (
	"context"
)

// Repository defines data access for attendance rows. Upsert is the only
// write path; the (staff_id, date) unique index makes it the atomic
// find-and-upsert the recorder relies on.
type Repository interface {
	// Upsert inserts or updates the row for (rec.StaffID, rec.Date).
	Upsert(ctx context.Context, rec Record) (Record, error)

	// GetByStaffAndDate returns the row for the staff member on the given
	// local date, or nil when none exists.
	GetByStaffAndDate(ctx context.Context, staffID, date string) (*Record, error)

	// ListByStaffMonth returns all rows for a staff member whose date falls
	// in the YYYY-MM month, ordered by date ascending.
	ListByStaffMonth(ctx context.Context, staffID, month string) ([]Record, error)

	// ListByDate returns all rows for the given date with staff names joined.
	ListByDate(ctx context.Context, date string) ([]Record, error)
}

// SettingsRepository holds the single configuration row.
type SettingsRepository interface {
	// Get returns the stored settings, or ErrSettingsNotFound when none
	// have been saved yet.
	Get(ctx context.Context) (Settings, error)

	// Save upserts the configuration row.
	Save(ctx context.Context, s Settings) (Settings, error)
}
