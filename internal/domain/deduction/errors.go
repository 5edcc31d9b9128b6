package deduction

import "errors"

// Deduction domain errors
var (
	ErrRecordNotFound = errors.New("deduction record not found")
	ErrReservedReason = errors.New("reason is reserved for automatic deductions")
)
