package attendance

import (
	"github.com/shopspring/decimal"

	"github.com/caresuite/labops-backend-go/internal/pkg/validator"
)

// ========================================
// SETTINGS DTOs
// ========================================

// SaveSettingsRequest carries raw settings input. Out-of-range values are
// clamped by Settings.Sanitized, never rejected, so there is no Validate
// method here.
type SaveSettingsRequest struct {
	PaidAbsentDays    int             `json:"paid_absent_days"`
	AbsentDeduction   decimal.Decimal `json:"absent_deduction"`
	OfficialDaysOff   []int           `json:"official_days_off"`
	LateReliefMinutes int             `json:"late_relief_minutes"`
	LateDeduction     decimal.Decimal `json:"late_deduction"`
	EarlyOutDeduction decimal.Decimal `json:"early_out_deduction"`
	ClockInTime       string          `json:"clock_in_time"`
	ClockOutTime      string          `json:"clock_out_time"`
}

func (r SaveSettingsRequest) ToSettings() Settings {
	return Settings{
		PaidAbsentDays:    r.PaidAbsentDays,
		AbsentDeduction:   r.AbsentDeduction,
		OfficialDaysOff:   r.OfficialDaysOff,
		LateReliefMinutes: r.LateReliefMinutes,
		LateDeduction:     r.LateDeduction,
		EarlyOutDeduction: r.EarlyOutDeduction,
		ClockInTime:       r.ClockInTime,
		ClockOutTime:      r.ClockOutTime,
	}
}

type SettingsResponse struct {
	PaidAbsentDays    int             `json:"paid_absent_days"`
	AbsentDeduction   decimal.Decimal `json:"absent_deduction"`
	OfficialDaysOff   []int           `json:"official_days_off"`
	LateReliefMinutes int             `json:"late_relief_minutes"`
	LateDeduction     decimal.Decimal `json:"late_deduction"`
	EarlyOutDeduction decimal.Decimal `json:"early_out_deduction"`
	ClockInTime       string          `json:"clock_in_time"`
	ClockOutTime      string          `json:"clock_out_time"`
}

func NewSettingsResponse(s Settings) SettingsResponse {
	return SettingsResponse{
		PaidAbsentDays:    s.PaidAbsentDays,
		AbsentDeduction:   s.AbsentDeduction,
		OfficialDaysOff:   s.OfficialDaysOff,
		LateReliefMinutes: s.LateReliefMinutes,
		LateDeduction:     s.LateDeduction,
		EarlyOutDeduction: s.EarlyOutDeduction,
		ClockInTime:       s.ClockInTime,
		ClockOutTime:      s.ClockOutTime,
	}
}

// ========================================
// RECORDER DTOs
// ========================================

type CheckInRequest struct {
	StaffID string `json:"staff_id"`
}

func (r *CheckInRequest) Validate() error {
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

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	StaffID string `json:"staff_id"`
}

func (r *CheckOutRequest) Validate() error {
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

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ManualAddRequest struct {
	StaffID  string `json:"staff_id"`
	Date     string `json:"date"`   // YYYY-MM-DD
	Status   string `json:"status"` // optional, defaults to present
	CheckIn  string `json:"check_in,omitempty"`
	CheckOut string `json:"check_out,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

func (r *ManualAddRequest) Validate() error {
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

	if !validator.IsEmpty(r.Status) {
		if _, ok := ParseStatus(r.Status); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: present, late, absent, leave, official_off",
			})
		}
	}

	if r.CheckIn != "" && !validator.IsValidClockTime(r.CheckIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in",
			Message: "check_in must be in HH:MM format",
		})
	}

	if r.CheckOut != "" && !validator.IsValidClockTime(r.CheckOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_out",
			Message: "check_out must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	ID        string  `json:"id"`
	StaffID   string  `json:"staff_id"`
	StaffName *string `json:"staff_name,omitempty"`
	Date      string  `json:"date"`
	Status    Status  `json:"status"`
	CheckIn   string  `json:"check_in"`
	CheckOut  string  `json:"check_out"`
	Notes     string  `json:"notes,omitempty"`
}

func NewRecordResponse(rec Record) RecordResponse {
	return RecordResponse{
		ID:        rec.ID,
		StaffID:   rec.StaffID,
		StaffName: rec.StaffName,
		Date:      rec.Date,
		Status:    rec.Status,
		CheckIn:   rec.CheckIn,
		CheckOut:  rec.CheckOut,
		Notes:     rec.Notes,
	}
}

type MonthlyResponse struct {
	StaffID string     `json:"staff_id"`
	Month   string     `json:"month"`
	Days    []DayEntry `json:"days"`
}
