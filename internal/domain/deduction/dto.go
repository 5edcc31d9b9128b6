package deduction

import (
	"github.com/shopspring/decimal"

	"github.com/caresuite/labops-backend-go/internal/pkg/validator"
)

// AddRequest creates a manual deduction entry. The two machine-managed
// reasons are rejected here so operators cannot collide with derived rows.
type AddRequest struct {
	StaffID string          `json:"-"`
	Date    string          `json:"date"`
	Amount  decimal.Decimal `json:"amount"`
	Reason  string          `json:"reason"`
}

func (r *AddRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	} else if !validator.IsValidUUID(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id must be a valid UUID",
		})
	}

	if !validator.IsValidDate(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must not be negative",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Response struct {
	ID      string          `json:"id"`
	StaffID string          `json:"staff_id"`
	Date    string          `json:"date"`
	Amount  decimal.Decimal `json:"amount"`
	Reason  string          `json:"reason"`
}

func NewResponse(rec Record) Response {
	return Response{
		ID:      rec.ID,
		StaffID: rec.StaffID,
		Date:    rec.Date,
		Amount:  rec.Amount,
		Reason:  rec.Reason,
	}
}
