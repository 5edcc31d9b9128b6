package deduction

import (
	"time"

	"github.com/shopspring/decimal"
)

// Canonical machine-managed reasons. Rows with these reasons are derived
// state, written and removed only by the attendance recorder. Any other
// reason marks a manual entry the engine must never touch.
const (
	ReasonLate   = "Late deduction"
	ReasonAbsent = "Absent deduction"
)

// IsMachineReason reports whether the reason belongs to the recorder.
func IsMachineReason(reason string) bool {
	return reason == ReasonLate || reason == ReasonAbsent
}

// Record is one monetary deduction. (StaffID, Date, Reason) is the
// idempotency key: repeated triggering conditions never create duplicates.
type Record struct {
	ID      string
	StaffID string
	Date    string // YYYY-MM-DD
	Amount  decimal.Decimal
	Reason  string

	CreatedAt time.Time
	UpdatedAt time.Time
}
