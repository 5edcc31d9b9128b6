package validator

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/caresuite/labops-backend-go/internal/pkg/calendar"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// UUID validation
func IsValidUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation: strict YYYY-MM-DD calendar date.
func IsValidDate(dateStr string) bool {
	_, _, _, err := calendar.ParseDateKey(dateStr)
	return err == nil
}

// Month validation: strict YYYY-MM.
func IsValidMonth(monthStr string) bool {
	_, _, err := calendar.ParseMonthKey(monthStr)
	return err == nil
}

// Clock time validation: strict 24h HH:MM (00-23 / 00-59).
func IsValidClockTime(clock string) bool {
	_, err := calendar.MinutesOfClock(clock)
	return err == nil
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
