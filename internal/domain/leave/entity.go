package leave

import (
	"time"
)

// Record is one approved leave entry. A leave row for a date with no
// attendance row reconciles that day to the leave status.
type Record struct {
	ID      string
	StaffID string
	Date    string // YYYY-MM-DD, first day of the leave
	Days    int
	Type    string
	Reason  string

	CreatedAt time.Time
}
