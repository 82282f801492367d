package request

import (
	"strings"

	"primefinish/internal/domain/entities"
)

// ExpenseRequest carries one direct job expense. Receipt is an optional data
// URL captured from an uploaded image.
type ExpenseRequest struct {
	JobNumber   string          `json:"jobNumber" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Amount      entities.Amount `json:"amount"`
	Receipt     string          `json:"receipt"`
}

func (r ExpenseRequest) ToEntity() entities.Expense {
	return entities.Expense{
		JobNumber:   strings.TrimSpace(r.JobNumber),
		Description: strings.TrimSpace(r.Description),
		Amount:      r.Amount,
		Receipt:     r.Receipt,
	}
}
