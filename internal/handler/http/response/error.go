package response

import (
	"errors"
	"net/http"

	"github.com/caresuite/labops-backend-go/internal/domain/attendance"
	"github.com/caresuite/labops-backend-go/internal/domain/deduction"
	"github.com/caresuite/labops-backend-go/internal/domain/leave"
	"github.com/caresuite/labops-backend-go/internal/domain/payroll"
	"github.com/caresuite/labops-backend-go/internal/domain/staff"
	"github.com/caresuite/labops-backend-go/internal/pkg/calendar"
	"github.com/caresuite/labops-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Malformed date/month/time input
	case errors.Is(err, calendar.ErrInvalidDate),
		errors.Is(err, calendar.ErrInvalidMonth),
		errors.Is(err, calendar.ErrInvalidClock):
		BadRequest(w, err.Error(), nil)

	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff member not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Invalid attendance status", nil)

	// Deduction domain errors
	case errors.Is(err, deduction.ErrRecordNotFound):
		NotFound(w, "Deduction record not found")
	case errors.Is(err, deduction.ErrReservedReason):
		BadRequest(w, "Reason is reserved for automatic deductions", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrRecordNotFound):
		NotFound(w, "Leave record not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrSalaryNotFound):
		NotFound(w, "Salary record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
