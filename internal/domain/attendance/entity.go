package attendance

import (
	"strings"
	"time"
)

// Status is the reconciled state of a staff member's day.
type Status string

const (
	StatusPresent     Status = "present"
	StatusLate        Status = "late"
	StatusAbsent      Status = "absent"
	StatusLeave       Status = "leave"
	StatusOfficialOff Status = "official_off"
)

// ParseStatus normalizes a raw status string case-insensitively.
func ParseStatus(raw string) (Status, bool) {
	switch Status(strings.ToLower(strings.TrimSpace(raw))) {
	case StatusPresent:
		return StatusPresent, true
	case StatusLate:
		return StatusLate, true
	case StatusAbsent:
		return StatusAbsent, true
	case StatusLeave:
		return StatusLeave, true
	case StatusOfficialOff:
		return StatusOfficialOff, true
	}
	return "", false
}

// Record is one attendance row. There is at most one per (staff_id, date);
// all writes go through an upsert on that key.
type Record struct {
	ID       string
	StaffID  string
	Date     string // YYYY-MM-DD, local calendar day
	Status   Status
	CheckIn  string // HH:MM or ""
	CheckOut string // HH:MM or ""
	Notes    string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	StaffName *string
}

// DayEntry is one reconciled calendar day, stored or gap-filled.
type DayEntry struct {
	Date     string `json:"date"`
	Status   Status `json:"status"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}
