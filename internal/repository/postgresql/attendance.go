package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/caresuite/labops-backend-go/internal/domain/attendance"
	"github.com/caresuite/labops-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

// Upsert implements attendance.Repository.
func (a *attendanceRepository) Upsert(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (staff_id, date, status, check_in, check_out, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (staff_id, date) DO UPDATE SET
			status = EXCLUDED.status,
			check_in = EXCLUDED.check_in,
			check_out = EXCLUDED.check_out,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.StaffID,
		rec.Date,
		rec.Status,
		rec.CheckIn,
		rec.CheckOut,
		rec.Notes,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to upsert attendance record: %w", err)
	}

	return rec, nil
}

// GetByStaffAndDate implements attendance.Repository.
func (a *attendanceRepository) GetByStaffAndDate(ctx context.Context, staffID, date string) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, staff_id, to_char(date, 'YYYY-MM-DD'), status, check_in, check_out, notes,
		       created_at, updated_at
		FROM attendance_records
		WHERE staff_id = $1
		  AND date = $2
		LIMIT 1
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, staffID, date).Scan(
		&rec.ID, &rec.StaffID, &rec.Date, &rec.Status, &rec.CheckIn, &rec.CheckOut, &rec.Notes,
		&rec.CreatedAt, &rec.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No record for this day yet
		}
		return nil, fmt.Errorf("failed to get attendance record by staff and date: %w", err)
	}

	return &rec, nil
}

// ListByStaffMonth implements attendance.Repository.
func (a *attendanceRepository) ListByStaffMonth(ctx context.Context, staffID, month string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, staff_id, to_char(date, 'YYYY-MM-DD'), status, check_in, check_out, notes,
		       created_at, updated_at
		FROM attendance_records
		WHERE staff_id = $1
		  AND to_char(date, 'YYYY-MM') = $2
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, staffID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records by month: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.StaffID, &rec.Date, &rec.Status, &rec.CheckIn, &rec.CheckOut, &rec.Notes,
			&rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// ListByDate implements attendance.Repository.
func (a *attendanceRepository) ListByDate(ctx context.Context, date string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.staff_id, to_char(a.date, 'YYYY-MM-DD'), a.status, a.check_in, a.check_out, a.notes,
		       a.created_at, a.updated_at,
		       s.name AS staff_name
		FROM attendance_records a
		LEFT JOIN staff s ON s.id = a.staff_id
		WHERE a.date = $1
		ORDER BY s.name ASC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records by date: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.StaffID, &rec.Date, &rec.Status, &rec.CheckIn, &rec.CheckOut, &rec.Notes,
			&rec.CreatedAt, &rec.UpdatedAt,
			&rec.StaffName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}
