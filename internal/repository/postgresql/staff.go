package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/caresuite/labops-backend-go/internal/domain/staff"
	"github.com/caresuite/labops-backend-go/internal/pkg/database"
)

type staffRepository struct {
	db *database.DB
}

// GetByID implements staff.Repository.
func (s *staffRepository) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, name, base_salary, to_char(join_date, 'YYYY-MM-DD'), status, created_at, updated_at
		FROM staff
		WHERE id = $1
	`

	var member staff.Staff
	err := q.QueryRow(ctx, query, id).Scan(
		&member.ID, &member.Name, &member.BaseSalary, &member.JoinDate, &member.Status,
		&member.CreatedAt, &member.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, fmt.Errorf("failed to get staff by ID: %w", err)
	}

	return member, nil
}

// List implements staff.Repository.
func (s *staffRepository) List(ctx context.Context) ([]staff.Staff, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, name, base_salary, to_char(join_date, 'YYYY-MM-DD'), status, created_at, updated_at
		FROM staff
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff: %w", err)
	}
	defer rows.Close()

	var members []staff.Staff
	for rows.Next() {
		var member staff.Staff
		err := rows.Scan(
			&member.ID, &member.Name, &member.BaseSalary, &member.JoinDate, &member.Status,
			&member.CreatedAt, &member.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff: %w", err)
		}
		members = append(members, member)
	}

	return members, nil
}

func NewStaffRepository(db *database.DB) staff.Repository {
	return &staffRepository{db: db}
}
