package payroll

import (
	"context"
)

type Repository interface {
	// UpsertSalary inserts or updates the row for (rec.StaffID, rec.Month).
	UpsertSalary(ctx context.Context, rec SalaryRecord) (SalaryRecord, error)

	// ListByStaff returns all salary rows for a staff member, newest month
	// first.
	ListByStaff(ctx context.Context, staffID string) ([]SalaryRecord, error)
}

type Service interface {
	// SaveSalary upserts the salary record and mirrors a salary-expense
	// line into the finance ledger (best effort).
	SaveSalary(ctx context.Context, req SaveSalaryRequest) (SalaryResponse, error)

	ListSalaries(ctx context.Context, staffID string) ([]SalaryResponse, error)

	// GetPayroll reconciles the month and computes the net-salary summary.
	GetPayroll(ctx context.Context, staffID, month string) (SummaryResponse, error)
}
