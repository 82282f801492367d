package usecase

import (
	"context"
	"errors"
	"strings"

	"primefinish/internal/domain/entities"
	"primefinish/internal/usecase/interfaces"
)

var (
	ErrExpenseIndexOutOfRange = errors.New("expense index out of range")
)

// IExpenseUseCase manages the flat direct-expense list. Expenses have no
// lifecycle: they are appended, replaced in place, or removed by position,
// with an optional job-number filter on reads.

type IExpenseUseCase interface {
	List(ctx context.Context, jobFilter string) ([]entities.Expense, error)
	Add(ctx context.Context, expense entities.Expense) (entities.Expense, error)
	UpdateAt(ctx context.Context, index int, expense entities.Expense) (entities.Expense, error)
	DeleteAt(ctx context.Context, index int) error
}

type ExpenseUseCase struct {
	store interfaces.IExpenseStore
}

var _ IExpenseUseCase = (*ExpenseUseCase)(nil)

func NewExpenseUseCase(store interfaces.IExpenseStore) *ExpenseUseCase {
	return &ExpenseUseCase{store: store}
}

// List returns expenses whose job number contains the filter,
// case-insensitive. An empty filter returns everything.
func (u *ExpenseUseCase) List(ctx context.Context, jobFilter string) ([]entities.Expense, error) {
	expenses, err := u.store.ListExpenses(ctx)
	if err != nil {
		return nil, err
	}
	jobFilter = strings.ToLower(strings.TrimSpace(jobFilter))
	if jobFilter == "" {
		return expenses, nil
	}

	filtered := make([]entities.Expense, 0, len(expenses))
	for _, e := range expenses {
		if strings.Contains(strings.ToLower(e.JobNumber), jobFilter) {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

func (u *ExpenseUseCase) Add(ctx context.Context, expense entities.Expense) (entities.Expense, error) {
	expenses, err := u.store.ListExpenses(ctx)
	if err != nil {
		return entities.Expense{}, err
	}
	expenses = append(expenses, expense)
	if err := u.store.PutExpenses(ctx, expenses); err != nil {
		return entities.Expense{}, err
	}
	return expense, nil
}

func (u *ExpenseUseCase) UpdateAt(ctx context.Context, index int, expense entities.Expense) (entities.Expense, error) {
	expenses, err := u.store.ListExpenses(ctx)
	if err != nil {
		return entities.Expense{}, err
	}
	if index < 0 || index >= len(expenses) {
		return entities.Expense{}, ErrExpenseIndexOutOfRange
	}
	expenses[index] = expense
	if err := u.store.PutExpenses(ctx, expenses); err != nil {
		return entities.Expense{}, err
	}
	return expense, nil
}

func (u *ExpenseUseCase) DeleteAt(ctx context.Context, index int) error {
	expenses, err := u.store.ListExpenses(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(expenses) {
		return ErrExpenseIndexOutOfRange
	}
	expenses = append(expenses[:index], expenses[index+1:]...)
	return u.store.PutExpenses(ctx, expenses)
}
