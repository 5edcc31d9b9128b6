package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/caresuite/labops-backend-go/internal/domain/attendance"
	"github.com/caresuite/labops-backend-go/internal/pkg/database"
)

// The configuration lives in a single row with id = 1; Save is an upsert
// against that fixed key.
type settingsRepository struct {
	db *database.DB
}

// Get implements attendance.SettingsRepository.
func (s *settingsRepository) Get(ctx context.Context) (attendance.Settings, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT paid_absent_days, absent_deduction, official_days_off, late_relief_minutes,
		       late_deduction, early_out_deduction, clock_in_time, clock_out_time
		FROM attendance_settings
		WHERE id = 1
	`

	var (
		cfg     attendance.Settings
		daysOff []int32
	)
	err := q.QueryRow(ctx, query).Scan(
		&cfg.PaidAbsentDays, &cfg.AbsentDeduction, &daysOff, &cfg.LateReliefMinutes,
		&cfg.LateDeduction, &cfg.EarlyOutDeduction, &cfg.ClockInTime, &cfg.ClockOutTime,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Settings{}, attendance.ErrSettingsNotFound
		}
		return attendance.Settings{}, fmt.Errorf("failed to get attendance settings: %w", err)
	}

	cfg.OfficialDaysOff = make([]int, 0, len(daysOff))
	for _, d := range daysOff {
		cfg.OfficialDaysOff = append(cfg.OfficialDaysOff, int(d))
	}

	return cfg, nil
}

// Save implements attendance.SettingsRepository.
func (s *settingsRepository) Save(ctx context.Context, cfg attendance.Settings) (attendance.Settings, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO attendance_settings (
			id, paid_absent_days, absent_deduction, official_days_off, late_relief_minutes,
			late_deduction, early_out_deduction, clock_in_time, clock_out_time
		) VALUES (
			1, $1, $2, $3, $4, $5, $6, $7, $8
		)
		ON CONFLICT (id) DO UPDATE SET
			paid_absent_days = EXCLUDED.paid_absent_days,
			absent_deduction = EXCLUDED.absent_deduction,
			official_days_off = EXCLUDED.official_days_off,
			late_relief_minutes = EXCLUDED.late_relief_minutes,
			late_deduction = EXCLUDED.late_deduction,
			early_out_deduction = EXCLUDED.early_out_deduction,
			clock_in_time = EXCLUDED.clock_in_time,
			clock_out_time = EXCLUDED.clock_out_time,
			updated_at = NOW()
	`

	daysOff := make([]int32, 0, len(cfg.OfficialDaysOff))
	for _, d := range cfg.OfficialDaysOff {
		daysOff = append(daysOff, int32(d))
	}

	_, err := q.Exec(ctx, query,
		cfg.PaidAbsentDays,
		cfg.AbsentDeduction,
		daysOff,
		cfg.LateReliefMinutes,
		cfg.LateDeduction,
		cfg.EarlyOutDeduction,
		cfg.ClockInTime,
		cfg.ClockOutTime,
	)
	if err != nil {
		return attendance.Settings{}, fmt.Errorf("failed to save attendance settings: %w", err)
	}

	return cfg, nil
}

func NewSettingsRepository(db *database.DB) attendance.SettingsRepository {
	return &settingsRepository{db: db}
}
