package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	CategorySalaries = "Salaries"
	TypeExpense      = "Expense"
)

// Entry is one ledger line. Reference is a stable natural key so repeated
// salary saves update the same line instead of appending duplicates.
type Entry struct {
	ID          string
	Reference   string
	Amount      decimal.Decimal
	Category    string
	Type        string
	Date        string // YYYY-MM-DD
	Description string

	CreatedAt time.Time
	UpdatedAt time.Time
}
