package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/caresuite/labops-backend-go/internal/domain/leave"
	"github.com/caresuite/labops-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

// Create implements leave.Repository.
func (l *leaveRepository) Create(ctx context.Context, rec leave.Record) (leave.Record, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO leaves (staff_id, date, days, type, reason)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		rec.StaffID,
		rec.Date,
		rec.Days,
		rec.Type,
		rec.Reason,
	).Scan(&rec.ID, &rec.CreatedAt)

	if err != nil {
		return leave.Record{}, fmt.Errorf("failed to create leave: %w", err)
	}

	return rec, nil
}

// ListByStaff implements leave.Repository.
func (l *leaveRepository) ListByStaff(ctx context.Context, staffID string) ([]leave.Record, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, staff_id, to_char(date, 'YYYY-MM-DD'), days, type, reason, created_at
		FROM leaves
		WHERE staff_id = $1
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaves: %w", err)
	}
	defer rows.Close()

	return scanLeaves(rows)
}

// ListByStaffMonth implements leave.Repository.
func (l *leaveRepository) ListByStaffMonth(ctx context.Context, staffID, month string) ([]leave.Record, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, staff_id, to_char(date, 'YYYY-MM-DD'), days, type, reason, created_at
		FROM leaves
		WHERE staff_id = $1
		  AND to_char(date, 'YYYY-MM') = $2
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, staffID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaves by month: %w", err)
	}
	defer rows.Close()

	return scanLeaves(rows)
}

func scanLeaves(rows pgx.Rows) ([]leave.Record, error) {
	var records []leave.Record
	for rows.Next() {
		var rec leave.Record
		err := rows.Scan(
			&rec.ID, &rec.StaffID, &rec.Date, &rec.Days, &rec.Type, &rec.Reason, &rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func NewLeaveRepository(db *database.DB) leave.Repository {
	return &leaveRepository{db: db}
}
