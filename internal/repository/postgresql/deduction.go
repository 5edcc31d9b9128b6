package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/caresuite/labops-backend-go/internal/domain/deduction"
	"github.com/caresuite/labops-backend-go/internal/pkg/database"
)

type deductionRepository struct {
	db *database.DB
}

// Upsert implements deduction.Repository.
func (d *deductionRepository) Upsert(ctx context.Context, rec deduction.Record) (deduction.Record, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		INSERT INTO deductions (staff_id, date, amount, reason)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (staff_id, date, reason) DO UPDATE SET
			amount = EXCLUDED.amount,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.StaffID,
		rec.Date,
		rec.Amount,
		rec.Reason,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		return deduction.Record{}, fmt.Errorf("failed to upsert deduction: %w", err)
	}

	return rec, nil
}

// DeleteByKey implements deduction.Repository. Deleting a row that does not
// exist is a no-op, not an error.
func (d *deductionRepository) DeleteByKey(ctx context.Context, staffID, date, reason string) error {
	q := GetQuerier(ctx, d.db)

	query := `DELETE FROM deductions WHERE staff_id = $1 AND date = $2 AND reason = $3`

	if _, err := q.Exec(ctx, query, staffID, date, reason); err != nil {
		return fmt.Errorf("failed to delete deduction: %w", err)
	}

	return nil
}

// ListByStaffMonth implements deduction.Repository.
func (d *deductionRepository) ListByStaffMonth(ctx context.Context, staffID, month string) ([]deduction.Record, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT id, staff_id, to_char(date, 'YYYY-MM-DD'), amount, reason, created_at, updated_at
		FROM deductions
		WHERE staff_id = $1
		  AND to_char(date, 'YYYY-MM') = $2
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, staffID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to query deductions by month: %w", err)
	}
	defer rows.Close()

	return scanDeductions(rows)
}

// ListByStaff implements deduction.Repository.
func (d *deductionRepository) ListByStaff(ctx context.Context, staffID string) ([]deduction.Record, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT id, staff_id, to_char(date, 'YYYY-MM-DD'), amount, reason, created_at, updated_at
		FROM deductions
		WHERE staff_id = $1
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to query deductions: %w", err)
	}
	defer rows.Close()

	return scanDeductions(rows)
}

func scanDeductions(rows pgx.Rows) ([]deduction.Record, error) {
	var records []deduction.Record
	for rows.Next() {
		var rec deduction.Record
		err := rows.Scan(
			&rec.ID, &rec.StaffID, &rec.Date, &rec.Amount, &rec.Reason, &rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deduction: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func NewDeductionRepository(db *database.DB) deduction.Repository {
	return &deductionRepository{db: db}
}
