package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caresuite/labops-backend-go/internal/domain/attendance"
	"github.com/caresuite/labops-backend-go/internal/domain/deduction"
	"github.com/caresuite/labops-backend-go/internal/domain/leave"
	"github.com/caresuite/labops-backend-go/internal/domain/staff"
	"github.com/caresuite/labops-backend-go/internal/pkg/calendar"
)

type AttendanceServiceImpl struct {
	attendance.Repository
	settingsRepo  attendance.SettingsRepository
	deductionRepo deduction.Repository
	leaveRepo     leave.Repository
	staffRepo     staff.Repository
	logger        *slog.Logger

	// now is the single time source for check-in/check-out. Client-supplied
	// times are never trusted.
	now func() time.Time
}

func NewAttendanceService(
	repo attendance.Repository,
	settingsRepo attendance.SettingsRepository,
	deductionRepo deduction.Repository,
	leaveRepo leave.Repository,
	staffRepo staff.Repository,
	logger *slog.Logger,
) attendance.Service {
	return &AttendanceServiceImpl{
		Repository:    repo,
		settingsRepo:  settingsRepo,
		deductionRepo: deductionRepo,
		leaveRepo:     leaveRepo,
		staffRepo:     staffRepo,
		logger:        logger,
		now:           time.Now,
	}
}

// currentSettings loads the stored configuration, falling back to defaults
// when nothing has been saved yet. Stored values are sanitized on every read
// so stale out-of-range rows cannot leak into computations.
func (a *AttendanceServiceImpl) currentSettings(ctx context.Context) (attendance.Settings, error) {
	cfg, err := a.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, attendance.ErrSettingsNotFound) {
			return attendance.DefaultSettings(), nil
		}
		return attendance.Settings{}, fmt.Errorf("failed to load attendance settings: %w", err)
	}
	return cfg.Sanitized(), nil
}

// GetSettings implements attendance.Service.
func (a *AttendanceServiceImpl) GetSettings(ctx context.Context) (attendance.SettingsResponse, error) {
	cfg, err := a.currentSettings(ctx)
	if err != nil {
		return attendance.SettingsResponse{}, err
	}
	return attendance.NewSettingsResponse(cfg), nil
}

// SaveSettings implements attendance.Service. Garbage input is clamped by
// sanitization, never rejected.
func (a *AttendanceServiceImpl) SaveSettings(ctx context.Context, req attendance.SaveSettingsRequest) (attendance.SettingsResponse, error) {
	cfg := req.ToSettings().Sanitized()

	saved, err := a.settingsRepo.Save(ctx, cfg)
	if err != nil {
		return attendance.SettingsResponse{}, fmt.Errorf("failed to save attendance settings: %w", err)
	}

	return attendance.NewSettingsResponse(saved), nil
}

// CheckIn implements attendance.Service. The server clock is the only time
// source; client-supplied times are never accepted.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	if _, err := a.staffRepo.GetByID(ctx, req.StaffID); err != nil {
		return attendance.RecordResponse{}, err
	}

	cfg, err := a.currentSettings(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	now := a.now()
	dateKey := calendar.DateKey(now)
	clock := calendar.ClockKey(now)

	nowMinutes, _ := calendar.MinutesOfClock(clock)
	scheduledMinutes, err := calendar.MinutesOfClock(cfg.ClockInTime)
	if err != nil {
		scheduledMinutes, _ = calendar.MinutesOfClock(attendance.DefaultSettings().ClockInTime)
	}

	lateMinutes := nowMinutes - scheduledMinutes
	if lateMinutes < 0 {
		lateMinutes = 0
	}

	computed := attendance.StatusPresent
	if lateMinutes > cfg.LateReliefMinutes {
		computed = attendance.StatusLate
	}

	existing, err := a.Repository.GetByStaffAndDate(ctx, req.StaffID, dateKey)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	rec := attendance.Record{
		StaffID: req.StaffID,
		Date:    dateKey,
		Status:  computed,
		CheckIn: clock,
	}
	if existing != nil {
		rec.CheckOut = existing.CheckOut
		rec.Notes = existing.Notes
		// A day already marked as leave stays leave; the check-in time is
		// still recorded.
		if existing.Status == attendance.StatusLeave {
			rec.Status = attendance.StatusLeave
		}
	}

	saved, err := a.Repository.Upsert(ctx, rec)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	// Late deduction is a best-effort side effect; a ledger failure never
	// rolls back the attendance write.
	if saved.Status == attendance.StatusLate && cfg.LateDeduction.IsPositive() {
		_, err := a.deductionRepo.Upsert(ctx, deduction.Record{
			StaffID: req.StaffID,
			Date:    dateKey,
			Amount:  cfg.LateDeduction,
			Reason:  deduction.ReasonLate,
		})
		if err != nil {
			a.logger.Error("late deduction sync failed",
				slog.String("staff_id", req.StaffID),
				slog.String("date", dateKey),
				slog.Any("error", err),
			)
		}
	}

	return attendance.NewRecordResponse(saved), nil
}

// CheckOut implements attendance.Service.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	if _, err := a.staffRepo.GetByID(ctx, req.StaffID); err != nil {
		return attendance.RecordResponse{}, err
	}

	now := a.now()
	dateKey := calendar.DateKey(now)
	clock := calendar.ClockKey(now)

	existing, err := a.Repository.GetByStaffAndDate(ctx, req.StaffID, dateKey)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	rec := attendance.Record{
		StaffID:  req.StaffID,
		Date:     dateKey,
		Status:   attendance.StatusPresent,
		CheckOut: clock,
	}
	if existing != nil {
		rec.Status = existing.Status
		rec.CheckIn = existing.CheckIn
		rec.Notes = existing.Notes
	}

	saved, err := a.Repository.Upsert(ctx, rec)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return attendance.NewRecordResponse(saved), nil
}

// ManualAdd implements attendance.Service.
func (a *AttendanceServiceImpl) ManualAdd(ctx context.Context, req attendance.ManualAddRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	if _, err := a.staffRepo.GetByID(ctx, req.StaffID); err != nil {
		return attendance.RecordResponse{}, err
	}

	cfg, err := a.currentSettings(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	weekday, err := calendar.WeekdayOfKey(req.Date)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	isOfficialOff := cfg.IsOfficialOff(weekday)

	status := attendance.StatusPresent
	if req.Status != "" {
		status, _ = attendance.ParseStatus(req.Status)
	}
	// Absences on an official off day are not absences.
	if isOfficialOff && status == attendance.StatusAbsent {
		status = attendance.StatusOfficialOff
	}

	saved, err := a.Repository.Upsert(ctx, attendance.Record{
		StaffID:  req.StaffID,
		Date:     req.Date,
		Status:   status,
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Notes:    req.Notes,
	})
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	a.recomputeAbsentDeduction(ctx, req.StaffID, req.Date, status, isOfficialOff, cfg)

	return attendance.NewRecordResponse(saved), nil
}

// recomputeAbsentDeduction re-evaluates the absent deduction for one date
// against the month as currently stored. Best effort: failures are logged
// and the attendance write stands.
func (a *AttendanceServiceImpl) recomputeAbsentDeduction(ctx context.Context, staffID, dateKey string, status attendance.Status, isOfficialOff bool, cfg attendance.Settings) {
	logFailure := func(op string, err error) {
		a.logger.Error("absent deduction sync failed",
			slog.String("op", op),
			slog.String("staff_id", staffID),
			slog.String("date", dateKey),
			slog.Any("error", err),
		)
	}

	if isOfficialOff {
		if err := a.deductionRepo.DeleteByKey(ctx, staffID, dateKey, deduction.ReasonAbsent); err != nil {
			logFailure("delete", err)
		}
		return
	}

	if status == attendance.StatusAbsent && cfg.AbsentDeduction.IsPositive() {
		rows, err := a.Repository.ListByStaffMonth(ctx, staffID, calendar.MonthOf(dateKey))
		if err != nil {
			logFailure("count", err)
			return
		}

		// Count the month's absences, skipping those that fall on an
		// official off weekday.
		count := 0
		for _, row := range rows {
			if row.Status != attendance.StatusAbsent {
				continue
			}
			wd, err := calendar.WeekdayOfKey(row.Date)
			if err != nil || cfg.IsOfficialOff(wd) {
				continue
			}
			count++
		}

		if count > cfg.PaidAbsentDays {
			_, err := a.deductionRepo.Upsert(ctx, deduction.Record{
				StaffID: staffID,
				Date:    dateKey,
				Amount:  cfg.AbsentDeduction,
				Reason:  deduction.ReasonAbsent,
			})
			if err != nil {
				logFailure("upsert", err)
			}
		} else {
			// Still within the paid allowance.
			if err := a.deductionRepo.DeleteByKey(ctx, staffID, dateKey, deduction.ReasonAbsent); err != nil {
				logFailure("delete", err)
			}
		}
		return
	}

	// Status moved away from absent, or no deduction is configured.
	if err := a.deductionRepo.DeleteByKey(ctx, staffID, dateKey, deduction.ReasonAbsent); err != nil {
		logFailure("delete", err)
	}
}

// GetDaily implements attendance.Service.
func (a *AttendanceServiceImpl) GetDaily(ctx context.Context, date string) ([]attendance.RecordResponse, error) {
	if _, _, _, err := calendar.ParseDateKey(date); err != nil {
		return nil, err
	}

	rows, err := a.Repository.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.RecordResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, attendance.NewRecordResponse(row))
	}

	return responses, nil
}

// GetMonthly implements attendance.Service.
func (a *AttendanceServiceImpl) GetMonthly(ctx context.Context, staffID, month string) (attendance.MonthlyResponse, error) {
	if _, _, err := calendar.ParseMonthKey(month); err != nil {
		return attendance.MonthlyResponse{}, err
	}

	if _, err := a.staffRepo.GetByID(ctx, staffID); err != nil {
		return attendance.MonthlyResponse{}, err
	}

	cfg, err := a.currentSettings(ctx)
	if err != nil {
		return attendance.MonthlyResponse{}, err
	}

	attRows, err := a.Repository.ListByStaffMonth(ctx, staffID, month)
	if err != nil {
		return attendance.MonthlyResponse{}, err
	}

	leaveRows, err := a.leaveRepo.ListByStaffMonth(ctx, staffID, month)
	if err != nil {
		return attendance.MonthlyResponse{}, err
	}

	days, err := Reconcile(attRows, leaveRows, cfg, month, a.now())
	if err != nil {
		return attendance.MonthlyResponse{}, err
	}

	return attendance.MonthlyResponse{
		StaffID: staffID,
		Month:   month,
		Days:    days,
	}, nil
}
