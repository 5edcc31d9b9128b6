package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caresuite/labops-backend-go/internal/domain/attendance"
	"github.com/caresuite/labops-backend-go/internal/domain/deduction"
	"github.com/caresuite/labops-backend-go/internal/domain/finance"
	"github.com/caresuite/labops-backend-go/internal/domain/leave"
	"github.com/caresuite/labops-backend-go/internal/domain/payroll"
	"github.com/caresuite/labops-backend-go/internal/domain/staff"
	"github.com/caresuite/labops-backend-go/internal/pkg/calendar"
	attendancesvc "github.com/caresuite/labops-backend-go/internal/service/attendance"
)

type PayrollServiceImpl struct {
	payroll.Repository
	attendanceRepo attendance.Repository
	settingsRepo   attendance.SettingsRepository
	deductionRepo  deduction.Repository
	leaveRepo      leave.Repository
	staffRepo      staff.Repository
	financeRepo    finance.Repository
	logger         *slog.Logger
}

func NewPayrollService(
	repo payroll.Repository,
	attendanceRepo attendance.Repository,
	settingsRepo attendance.SettingsRepository,
	deductionRepo deduction.Repository,
	leaveRepo leave.Repository,
	staffRepo staff.Repository,
	financeRepo finance.Repository,
	logger *slog.Logger,
) payroll.Service {
	return &PayrollServiceImpl{
		Repository:     repo,
		attendanceRepo: attendanceRepo,
		settingsRepo:   settingsRepo,
		deductionRepo:  deductionRepo,
		leaveRepo:      leaveRepo,
		staffRepo:      staffRepo,
		financeRepo:    financeRepo,
		logger:         logger,
	}
}

// SalaryReference is the stable key a salary save uses in the finance ledger,
// so re-saving a month rewrites its expense line instead of appending one.
func SalaryReference(staffID, month string) string {
	return fmt.Sprintf("SAL-%s-%s", staffID, month)
}

// SaveSalary implements payroll.Service.
func (p *PayrollServiceImpl) SaveSalary(ctx context.Context, req payroll.SaveSalaryRequest) (payroll.SalaryResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryResponse{}, err
	}

	member, err := p.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		return payroll.SalaryResponse{}, err
	}

	status := payroll.SalaryStatus(req.Status)
	if status == "" {
		status = payroll.SalaryStatusPending
	}

	saved, err := p.Repository.UpsertSalary(ctx, payroll.SalaryRecord{
		StaffID: req.StaffID,
		Month:   req.Month,
		Amount:  req.Amount,
		Bonus:   req.Bonus,
		Status:  status,
	})
	if err != nil {
		return payroll.SalaryResponse{}, err
	}

	// Mirror the payout into the finance ledger. Best effort: the salary
	// write stands even if the ledger is unavailable.
	_, err = p.financeRepo.UpsertByReference(ctx, finance.Entry{
		Reference:   SalaryReference(req.StaffID, req.Month),
		Amount:      req.Amount.Add(req.Bonus),
		Category:    finance.CategorySalaries,
		Type:        finance.TypeExpense,
		Date:        req.Month + "-01",
		Description: fmt.Sprintf("Salary for %s (%s)", member.Name, req.Month),
	})
	if err != nil {
		p.logger.Error("finance ledger sync failed",
			slog.String("staff_id", req.StaffID),
			slog.String("month", req.Month),
			slog.Any("error", err),
		)
	}

	return payroll.NewSalaryResponse(saved), nil
}

// ListSalaries implements payroll.Service.
func (p *PayrollServiceImpl) ListSalaries(ctx context.Context, staffID string) ([]payroll.SalaryResponse, error) {
	if _, err := p.staffRepo.GetByID(ctx, staffID); err != nil {
		return nil, err
	}

	rows, err := p.Repository.ListByStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.SalaryResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, payroll.NewSalaryResponse(row))
	}

	return responses, nil
}

// GetPayroll implements payroll.Service.
func (p *PayrollServiceImpl) GetPayroll(ctx context.Context, staffID, month string) (payroll.SummaryResponse, error) {
	if _, _, err := calendar.ParseMonthKey(month); err != nil {
		return payroll.SummaryResponse{}, err
	}

	member, err := p.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		return payroll.SummaryResponse{}, err
	}

	cfg, err := p.settingsRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, attendance.ErrSettingsNotFound) {
			return payroll.SummaryResponse{}, fmt.Errorf("failed to load attendance settings: %w", err)
		}
		cfg = attendance.DefaultSettings()
	} else {
		cfg = cfg.Sanitized()
	}

	attRows, err := p.attendanceRepo.ListByStaffMonth(ctx, staffID, month)
	if err != nil {
		return payroll.SummaryResponse{}, err
	}

	leaveRows, err := p.leaveRepo.ListByStaffMonth(ctx, staffID, month)
	if err != nil {
		return payroll.SummaryResponse{}, err
	}

	days, err := attendancesvc.Reconcile(attRows, leaveRows, cfg, month, time.Now())
	if err != nil {
		return payroll.SummaryResponse{}, err
	}

	deductions, err := p.deductionRepo.ListByStaffMonth(ctx, staffID, month)
	if err != nil {
		return payroll.SummaryResponse{}, err
	}

	summary := ComputeNetSalary(days, deductions, cfg, member.BaseSalary)
	summary.StaffID = member.ID
	summary.StaffName = member.Name
	summary.Month = month

	return payroll.NewSummaryResponse(summary), nil
}
