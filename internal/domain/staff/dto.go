package staff

import (
	"github.com/shopspring/decimal"
)

type Response struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	BaseSalary decimal.Decimal `json:"base_salary"`
	JoinDate   string          `json:"join_date"`
	Status     string          `json:"status"`
}

func NewResponse(s Staff) Response {
	return Response{
		ID:         s.ID,
		Name:       s.Name,
		BaseSalary: s.BaseSalary,
		JoinDate:   s.JoinDate,
		Status:     s.Status,
	}
}
