package postgresql

import (
	"context"
	"fmt"

	"github.com/caresuite/labops-backend-go/internal/domain/finance"
	"github.com/caresuite/labops-backend-go/internal/pkg/database"
)

type financeRepository struct {
	db *database.DB
}

// UpsertByReference implements finance.Repository. The reference column is
// unique, so re-saving a salary rewrites its ledger line in place.
func (f *financeRepository) UpsertByReference(ctx context.Context, entry finance.Entry) (finance.Entry, error) {
	q := GetQuerier(ctx, f.db)

	query := `
		INSERT INTO finance_entries (reference, amount, category, type, date, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (reference) DO UPDATE SET
			amount = EXCLUDED.amount,
			category = EXCLUDED.category,
			type = EXCLUDED.type,
			date = EXCLUDED.date,
			description = EXCLUDED.description,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		entry.Reference,
		entry.Amount,
		entry.Category,
		entry.Type,
		entry.Date,
		entry.Description,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)

	if err != nil {
		return finance.Entry{}, fmt.Errorf("failed to upsert finance entry: %w", err)
	}

	return entry, nil
}

func NewFinanceRepository(db *database.DB) finance.Repository {
	return &financeRepository{db: db}
}
