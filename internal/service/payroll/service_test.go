package payroll

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caresuite/labops-backend-go/internal/domain/attendance"
	"github.com/caresuite/labops-backend-go/internal/domain/deduction"
	"github.com/caresuite/labops-backend-go/internal/domain/finance"
	"github.com/caresuite/labops-backend-go/internal/domain/leave"
	"github.com/caresuite/labops-backend-go/internal/domain/payroll"
	"github.com/caresuite/labops-backend-go/internal/domain/staff"
	"github.com/caresuite/labops-backend-go/internal/pkg/calendar"
)

const testStaffID = "3f2f4a9e-6d1b-4e6a-9c0d-1a2b3c4d5e6f"

type fakeSalaryRepo struct {
	records map[string]payroll.SalaryRecord
}

func (f *fakeSalaryRepo) UpsertSalary(_ context.Context, rec payroll.SalaryRecord) (payroll.SalaryRecord, error) {
	key := rec.StaffID + "|" + rec.Month
	if existing, ok := f.records[key]; ok {
		rec.ID = existing.ID
	} else {
		rec.ID = "sal-" + key
	}
	f.records[key] = rec
	return rec, nil
}

func (f *fakeSalaryRepo) ListByStaff(_ context.Context, staffID string) ([]payroll.SalaryRecord, error) {
	var out []payroll.SalaryRecord
	for _, rec := range f.records {
		if rec.StaffID == staffID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month > out[j].Month })
	return out, nil
}

type fakeFinanceRepo struct {
	entries map[string]finance.Entry
	failErr error
}

func (f *fakeFinanceRepo) UpsertByReference(_ context.Context, entry finance.Entry) (finance.Entry, error) {
	if f.failErr != nil {
		return finance.Entry{}, f.failErr
	}
	if existing, ok := f.entries[entry.Reference]; ok {
		entry.ID = existing.ID
	} else {
		entry.ID = "fin-" + entry.Reference
	}
	f.entries[entry.Reference] = entry
	return entry, nil
}

type fakeAttendanceRepo struct {
	records []attendance.Record
}

func (f *fakeAttendanceRepo) Upsert(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeAttendanceRepo) GetByStaffAndDate(_ context.Context, staffID, date string) (*attendance.Record, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByStaffMonth(_ context.Context, staffID, month string) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.StaffID == staffID && calendar.MonthOf(rec.Date) == month {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByDate(_ context.Context, date string) ([]attendance.Record, error) {
	return nil, nil
}

type fakeSettingsRepo struct {
	stored *attendance.Settings
}

func (f *fakeSettingsRepo) Get(_ context.Context) (attendance.Settings, error) {
	if f.stored == nil {
		return attendance.Settings{}, attendance.ErrSettingsNotFound
	}
	return *f.stored, nil
}

func (f *fakeSettingsRepo) Save(_ context.Context, s attendance.Settings) (attendance.Settings, error) {
	f.stored = &s
	return s, nil
}

type fakeDeductionRepo struct {
	records []deduction.Record
}

func (f *fakeDeductionRepo) Upsert(_ context.Context, rec deduction.Record) (deduction.Record, error) {
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeDeductionRepo) DeleteByKey(_ context.Context, staffID, date, reason string) error {
	return nil
}

func (f *fakeDeductionRepo) ListByStaffMonth(_ context.Context, staffID, month string) ([]deduction.Record, error) {
	var out []deduction.Record
	for _, rec := range f.records {
		if rec.StaffID == staffID && calendar.MonthOf(rec.Date) == month {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeDeductionRepo) ListByStaff(_ context.Context, staffID string) ([]deduction.Record, error) {
	return f.records, nil
}

type fakeLeaveRepo struct{}

func (f *fakeLeaveRepo) Create(_ context.Context, rec leave.Record) (leave.Record, error) {
	return rec, nil
}

func (f *fakeLeaveRepo) ListByStaff(_ context.Context, staffID string) ([]leave.Record, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) ListByStaffMonth(_ context.Context, staffID, month string) ([]leave.Record, error) {
	return nil, nil
}

type fakeStaffRepo struct {
	members map[string]staff.Staff
}

func (f *fakeStaffRepo) GetByID(_ context.Context, id string) (staff.Staff, error) {
	if member, ok := f.members[id]; ok {
		return member, nil
	}
	return staff.Staff{}, staff.ErrStaffNotFound
}

func (f *fakeStaffRepo) List(_ context.Context) ([]staff.Staff, error) {
	return nil, nil
}

type payrollHarness struct {
	svc        payroll.Service
	salaryRepo *fakeSalaryRepo
	attRepo    *fakeAttendanceRepo
	setRepo    *fakeSettingsRepo
	dedRepo    *fakeDeductionRepo
	finRepo    *fakeFinanceRepo
}

func newPayrollHarness(cfg *attendance.Settings) *payrollHarness {
	h := &payrollHarness{
		salaryRepo: &fakeSalaryRepo{records: make(map[string]payroll.SalaryRecord)},
		attRepo:    &fakeAttendanceRepo{},
		setRepo:    &fakeSettingsRepo{stored: cfg},
		dedRepo:    &fakeDeductionRepo{},
		finRepo:    &fakeFinanceRepo{entries: make(map[string]finance.Entry)},
	}

	staffRepo := &fakeStaffRepo{members: map[string]staff.Staff{
		testStaffID: {ID: testStaffID, Name: "A. Rivera", BaseSalary: decimal.NewFromInt(30000)},
	}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h.svc = NewPayrollService(
		h.salaryRepo,
		h.attRepo,
		h.setRepo,
		h.dedRepo,
		&fakeLeaveRepo{},
		staffRepo,
		h.finRepo,
		logger,
	)
	return h
}

func TestSaveSalaryMirrorsFinanceEntry(t *testing.T) {
	h := newPayrollHarness(nil)
	ctx := context.Background()

	resp, err := h.svc.SaveSalary(ctx, payroll.SaveSalaryRequest{
		StaffID: testStaffID,
		Month:   "2024-03",
		Amount:  decimal.NewFromInt(29500),
		Bonus:   decimal.NewFromInt(500),
	})
	require.NoError(t, err)
	assert.Equal(t, payroll.SalaryStatusPending, resp.Status)

	ref := SalaryReference(testStaffID, "2024-03")
	entry, ok := h.finRepo.entries[ref]
	require.True(t, ok, "finance entry missing for %s", ref)
	assert.True(t, entry.Amount.Equal(decimal.NewFromInt(30000)))
	assert.Equal(t, finance.CategorySalaries, entry.Category)
	assert.Equal(t, finance.TypeExpense, entry.Type)
	assert.Equal(t, "2024-03-01", entry.Date)

	// Re-saving the same month rewrites the same rows.
	_, err = h.svc.SaveSalary(ctx, payroll.SaveSalaryRequest{
		StaffID: testStaffID,
		Month:   "2024-03",
		Amount:  decimal.NewFromInt(28000),
		Bonus:   decimal.Zero,
	})
	require.NoError(t, err)

	assert.Len(t, h.salaryRepo.records, 1)
	assert.Len(t, h.finRepo.entries, 1)
	assert.True(t, h.finRepo.entries[ref].Amount.Equal(decimal.NewFromInt(28000)))
}

func TestSaveSalarySurvivesFinanceFailure(t *testing.T) {
	h := newPayrollHarness(nil)
	h.finRepo.failErr = errors.New("ledger unavailable")

	resp, err := h.svc.SaveSalary(context.Background(), payroll.SaveSalaryRequest{
		StaffID: testStaffID,
		Month:   "2024-03",
		Amount:  decimal.NewFromInt(29500),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Len(t, h.salaryRepo.records, 1)
}

func TestSaveSalaryUnknownStaff(t *testing.T) {
	h := newPayrollHarness(nil)

	_, err := h.svc.SaveSalary(context.Background(), payroll.SaveSalaryRequest{
		StaffID: "00000000-0000-0000-0000-000000000000",
		Month:   "2024-03",
		Amount:  decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
}

func TestGetPayrollEndToEnd(t *testing.T) {
	cfg := calcSettings()
	h := newPayrollHarness(&cfg)
	ctx := context.Background()

	// March 2024: the 1st is a Friday; Sundays fall on 3, 10, 17, 24, 31.
	absents := map[int]bool{4: true, 5: true, 6: true}
	for d := 1; d <= 31; d++ {
		if calendar.Weekday(2024, 3, d) == 0 {
			continue
		}
		status := attendance.StatusPresent
		if absents[d] {
			status = attendance.StatusAbsent
		}
		h.attRepo.records = append(h.attRepo.records, attendance.Record{
			StaffID: testStaffID,
			Date:    fmt.Sprintf("2024-03-%02d", d),
			Status:  status,
		})
	}
	h.dedRepo.records = []deduction.Record{
		{StaffID: testStaffID, Date: "2024-03-06", Amount: decimal.NewFromInt(500), Reason: deduction.ReasonAbsent},
		{StaffID: testStaffID, Date: "2024-03-12", Amount: decimal.NewFromInt(100), Reason: "Equipment damage"},
	}

	got, err := h.svc.GetPayroll(ctx, testStaffID, "2024-03")
	require.NoError(t, err)

	assert.Equal(t, "A. Rivera", got.StaffName)
	assert.Equal(t, 23, got.PresentDays)
	assert.Equal(t, 3, got.AbsentDays)
	assert.Equal(t, 5, got.OfficialOffDays)
	assert.Equal(t, 2, got.PaidLeavesUsed)
	assert.Equal(t, 1, got.UnpaidAbsents)
	assert.True(t, got.AbsentDeductionAmount.Equal(decimal.NewFromInt(500)))
	assert.True(t, got.ManualDeductions.Equal(decimal.NewFromInt(100)))
	assert.True(t, got.TotalDeductions.Equal(decimal.NewFromInt(600)))
	assert.True(t, got.NetSalary.Equal(decimal.NewFromInt(29400)))
}

func TestGetPayrollRejectsBadMonth(t *testing.T) {
	h := newPayrollHarness(nil)

	_, err := h.svc.GetPayroll(context.Background(), testStaffID, "2024-3")
	assert.Error(t, err)
}
