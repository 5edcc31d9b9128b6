package postgresql

import (
	"context"
	"fmt"

	"github.com/caresuite/labops-backend-go/internal/domain/payroll"
	"github.com/caresuite/labops-backend-go/internal/pkg/database"
)

type salaryRepository struct {
	db *database.DB
}

// UpsertSalary implements payroll.Repository.
func (s *salaryRepository) UpsertSalary(ctx context.Context, rec payroll.SalaryRecord) (payroll.SalaryRecord, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO salaries (staff_id, month, amount, bonus, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (staff_id, month) DO UPDATE SET
			amount = EXCLUDED.amount,
			bonus = EXCLUDED.bonus,
			status = EXCLUDED.status,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.StaffID,
		rec.Month,
		rec.Amount,
		rec.Bonus,
		rec.Status,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		return payroll.SalaryRecord{}, fmt.Errorf("failed to upsert salary: %w", err)
	}

	return rec, nil
}

// ListByStaff implements payroll.Repository.
func (s *salaryRepository) ListByStaff(ctx context.Context, staffID string) ([]payroll.SalaryRecord, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, staff_id, month, amount, bonus, status, created_at, updated_at
		FROM salaries
		WHERE staff_id = $1
		ORDER BY month DESC
	`

	rows, err := q.Query(ctx, query, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to query salaries: %w", err)
	}
	defer rows.Close()

	var records []payroll.SalaryRecord
	for rows.Next() {
		var rec payroll.SalaryRecord
		err := rows.Scan(
			&rec.ID, &rec.StaffID, &rec.Month, &rec.Amount, &rec.Bonus, &rec.Status,
			&rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func NewSalaryRepository(db *database.DB) payroll.Repository {
	return &salaryRepository{db: db}
}
