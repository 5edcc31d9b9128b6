package finance

import (
	"context"
)

// Repository is the write target for salary-expense mirroring. The ledger
// itself is owned elsewhere; the engine only upserts by reference.
type Repository interface {
	UpsertByReference(ctx context.Context, entry Entry) (Entry, error)
}
