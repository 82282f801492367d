package interfaces

import (
	"context"

	"primefinish/internal/domain/entities"
)

// IExpenseStore persists the flat direct-expense list.

type IExpenseStore interface {
	ListExpenses(ctx context.Context) ([]entities.Expense, error)
	PutExpenses(ctx context.Context, expenses []entities.Expense) error
}
