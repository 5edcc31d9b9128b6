package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/caresuite/labops-backend-go/internal/pkg/validator"
)

type SaveSalaryRequest struct {
	StaffID string          `json:"-"`
	Month   string          `json:"month"`
	Amount  decimal.Decimal `json:"amount"`
	Bonus   decimal.Decimal `json:"bonus"`
	Status  string          `json:"status,omitempty"`
}

func (r *SaveSalaryRequest) Validate() error {
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

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must not be negative",
		})
	}

	if r.Bonus.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "bonus",
			Message: "bonus must not be negative",
		})
	}

	if r.Status != "" && !validator.IsInSlice(r.Status, []string{string(SalaryStatusPending), string(SalaryStatusPaid)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: pending, paid",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SalaryResponse struct {
	ID      string          `json:"id"`
	StaffID string          `json:"staff_id"`
	Month   string          `json:"month"`
	Amount  decimal.Decimal `json:"amount"`
	Bonus   decimal.Decimal `json:"bonus"`
	Status  SalaryStatus    `json:"status"`
}

func NewSalaryResponse(rec SalaryRecord) SalaryResponse {
	return SalaryResponse{
		ID:      rec.ID,
		StaffID: rec.StaffID,
		Month:   rec.Month,
		Amount:  rec.Amount,
		Bonus:   rec.Bonus,
		Status:  rec.Status,
	}
}

type SummaryResponse struct {
	StaffID   string `json:"staff_id"`
	StaffName string `json:"staff_name"`
	Month     string `json:"month"`

	PresentDays     int `json:"present_days"`
	LateDays        int `json:"late_days"`
	AbsentDays      int `json:"absent_days"`
	LeaveDays       int `json:"leave_days"`
	OfficialOffDays int `json:"official_off_days"`
	PaidLeavesUsed  int `json:"paid_leaves_used"`
	UnpaidAbsents   int `json:"unpaid_absents"`

	BaseSalary            decimal.Decimal `json:"base_salary"`
	LateDeductionAmount   decimal.Decimal `json:"late_deduction_amount"`
	AbsentDeductionAmount decimal.Decimal `json:"absent_deduction_amount"`
	ManualDeductions      decimal.Decimal `json:"manual_deductions"`
	TotalDeductions       decimal.Decimal `json:"total_deductions"`
	NetSalary             decimal.Decimal `json:"net_salary"`
}

func NewSummaryResponse(s Summary) SummaryResponse {
	return SummaryResponse{
		StaffID:               s.StaffID,
		StaffName:             s.StaffName,
		Month:                 s.Month,
		PresentDays:           s.PresentDays,
		LateDays:              s.LateDays,
		AbsentDays:            s.AbsentDays,
		LeaveDays:             s.LeaveDays,
		OfficialOffDays:       s.OfficialOffDays,
		PaidLeavesUsed:        s.PaidLeavesUsed,
		UnpaidAbsents:         s.UnpaidAbsents,
		BaseSalary:            s.BaseSalary,
		LateDeductionAmount:   s.LateDeductionAmount,
		AbsentDeductionAmount: s.AbsentDeductionAmount,
		ManualDeductions:      s.ManualDeductions,
		TotalDeductions:       s.TotalDeductions,
		NetSalary:             s.NetSalary,
	}
}
