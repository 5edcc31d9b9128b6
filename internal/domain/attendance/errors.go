package attendance

import "errors"

// Attendance domain errors
var (
	ErrRecordNotFound   = errors.New("attendance record not found")
	ErrInvalidStatus    = errors.New("invalid attendance status")
	ErrSettingsNotFound = errors.New("attendance settings not found")
)
