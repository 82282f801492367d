package response

import "primefinish/internal/domain/entities"

type ExpenseResponse struct {
	JobNumber   string          `json:"jobNumber"`
	Description string          `json:"description"`
	Amount      entities.Amount `json:"amount"`
	Receipt     string          `json:"receipt,omitempty"`
}

func FromExpense(e entities.Expense) ExpenseResponse {
	return ExpenseResponse{
		JobNumber:   e.JobNumber,
		Description: e.Description,
		Amount:      e.Amount,
		Receipt:     e.Receipt,
	}
}

func FromExpenses(expenses []entities.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, FromExpense(e))
	}
	return out
}
