package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryStatus enum
type SalaryStatus string

const (
	SalaryStatusPending SalaryStatus = "pending"
	SalaryStatusPaid    SalaryStatus = "paid"
)

// SalaryRecord is the stored payout for one staff member and month,
// upserted per (staff_id, month).
type SalaryRecord struct {
	ID      string
	StaffID string
	Month   string // YYYY-MM
	Amount  decimal.Decimal
	Bonus   decimal.Decimal
	Status  SalaryStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Summary is the computed payroll breakdown for one staff member and month.
// It is derived on demand from the reconciled calendar, the deduction ledger
// and the current settings; nothing here is stored.
type Summary struct {
	StaffID   string
	StaffName string
	Month     string

	PresentDays     int
	LateDays        int
	AbsentDays      int
	LeaveDays       int
	OfficialOffDays int

	PaidLeavesUsed int
	UnpaidAbsents  int

	BaseSalary            decimal.Decimal
	LateDeductionAmount   decimal.Decimal
	AbsentDeductionAmount decimal.Decimal
	ManualDeductions      decimal.Decimal
	TotalDeductions       decimal.Decimal
	NetSalary             decimal.Decimal
}
