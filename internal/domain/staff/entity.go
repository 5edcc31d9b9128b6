package staff

import (
	"time"

	"github.com/shopspring/decimal"
)

// Staff is owned by staff administration; the engine only reads it.
type Staff struct {
	ID         string
	Name       string
	BaseSalary decimal.Decimal
	JoinDate   string // YYYY-MM-DD
	Status     string

	CreatedAt time.Time
	UpdatedAt time.Time
}
