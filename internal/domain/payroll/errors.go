package payroll

import "errors"

// Payroll domain errors
var (
	ErrSalaryNotFound = errors.New("salary record not found")
)
