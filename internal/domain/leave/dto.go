package leave

import (
	"github.com/caresuite/labops-backend-go/internal/pkg/validator"
)

type AddRequest struct {
	StaffID string `json:"-"`
	Date    string `json:"date"`
	Days    int    `json:"days"`
	Type    string `json:"type"`
	Reason  string `json:"reason,omitempty"`
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

	if r.Days < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "days",
			Message: "days must be at least 1",
		})
	}

	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Response struct {
	ID      string `json:"id"`
	StaffID string `json:"staff_id"`
	Date    string `json:"date"`
	Days    int    `json:"days"`
	Type    string `json:"type"`
	Reason  string `json:"reason,omitempty"`
}

func NewResponse(rec Record) Response {
	return Response{
		ID:      rec.ID,
		StaffID: rec.StaffID,
		Date:    rec.Date,
		Days:    rec.Days,
		Type:    rec.Type,
		Reason:  rec.Reason,
	}
}
