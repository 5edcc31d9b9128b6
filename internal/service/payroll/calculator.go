package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/caresuite/labops-backend-go/internal/domain/attendance"
	"github.com/caresuite/labops-backend-go/internal/domain/deduction"
	"github.com/caresuite/labops-backend-go/internal/domain/payroll"
)

// ComputeNetSalary derives the monthly summary from a reconciled calendar,
// the month's deduction ledger rows and the current settings. Pure function;
// identity fields on the returned summary are left for the caller to fill.
func ComputeNetSalary(days []attendance.DayEntry, deductions []deduction.Record, cfg attendance.Settings, baseSalary decimal.Decimal) payroll.Summary {
	s := payroll.Summary{BaseSalary: baseSalary}

	for _, day := range days {
		switch day.Status {
		case attendance.StatusPresent:
			s.PresentDays++
		case attendance.StatusLate:
			// Late still counts as a worked day.
			s.PresentDays++
			s.LateDays++
		case attendance.StatusAbsent:
			s.AbsentDays++
		case attendance.StatusLeave:
			s.LeaveDays++
		case attendance.StatusOfficialOff:
			s.OfficialOffDays++
		}
	}

	s.PaidLeavesUsed = s.AbsentDays
	if s.PaidLeavesUsed > cfg.PaidAbsentDays {
		s.PaidLeavesUsed = cfg.PaidAbsentDays
	}
	s.UnpaidAbsents = s.AbsentDays - cfg.PaidAbsentDays
	if s.UnpaidAbsents < 0 {
		s.UnpaidAbsents = 0
	}

	lateSum := decimal.Zero
	absentSum := decimal.Zero
	manualSum := decimal.Zero
	for _, row := range deductions {
		switch row.Reason {
		case deduction.ReasonLate:
			lateSum = lateSum.Add(row.Amount)
		case deduction.ReasonAbsent:
			absentSum = absentSum.Add(row.Amount)
		default:
			manualSum = manualSum.Add(row.Amount)
		}
	}

	s.LateDeductionAmount = lateSum
	if !lateSum.IsPositive() {
		s.LateDeductionAmount = cfg.LateDeduction.Mul(decimal.NewFromInt(int64(s.LateDays)))
	}

	// The ledger is trusted only when it agrees with what the current
	// settings would produce; otherwise stale rows from an earlier
	// configuration are discarded and the amount is recomputed.
	if s.UnpaidAbsents > 0 {
		expected := cfg.AbsentDeduction.Mul(decimal.NewFromInt(int64(s.UnpaidAbsents)))
		if absentSum.Equal(expected) {
			s.AbsentDeductionAmount = absentSum
		} else {
			s.AbsentDeductionAmount = expected
		}
	} else {
		s.AbsentDeductionAmount = decimal.Zero
	}

	s.ManualDeductions = manualSum
	s.TotalDeductions = manualSum.Add(s.LateDeductionAmount).Add(s.AbsentDeductionAmount)

	s.NetSalary = baseSalary.Sub(s.TotalDeductions)
	if s.NetSalary.IsNegative() {
		s.NetSalary = decimal.Zero
	}

	return s
}
