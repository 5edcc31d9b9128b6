package attendance

import (
	"context"
)

type Service interface {
	GetSettings(ctx context.Context) (SettingsResponse, error)
	SaveSettings(ctx context.Context, req SaveSettingsRequest) (SettingsResponse, error)

	// CheckIn records a check-in for the staff member using the server
	// clock, never a client-supplied time.
	CheckIn(ctx context.Context, req CheckInRequest) (RecordResponse, error)

	// CheckOut records a check-out for the staff member using the server
	// clock.
	CheckOut(ctx context.Context, req CheckOutRequest) (RecordResponse, error)

	// ManualAdd upserts an attendance row for an arbitrary date and
	// re-evaluates the absent-deduction ledger for that date.
	ManualAdd(ctx context.Context, req ManualAddRequest) (RecordResponse, error)

	// GetDaily returns all stored rows for one date.
	GetDaily(ctx context.Context, date string) ([]RecordResponse, error)

	// GetMonthly returns the gap-filled calendar for a staff member's month.
	GetMonthly(ctx context.Context, staffID, month string) (MonthlyResponse, error)
}
