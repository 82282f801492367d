package usecase

import (
	"context"
	"errors"
	"testing"

	"primefinish/internal/domain/entities"
	mock_interfaces "primefinish/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestExpenseUseCase_List(t *testing.T) {
	stored := []entities.Expense{
		{JobNumber: "01", Description: "Paint"},
		{JobNumber: "12", Description: "Brushes"},
		{JobNumber: "21", Description: "Tape"},
	}

	t.Run("empty filter returns everything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIExpenseStore(ctrl)
		uc := NewExpenseUseCase(store)

		store.EXPECT().ListExpenses(gomock.Any()).Return(stored, nil)

		expenses, err := uc.List(context.Background(), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(expenses) != 3 {
			t.Fatalf("expected 3 expenses, got %d", len(expenses))
		}
	})

	t.Run("substring filter on job number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIExpenseStore(ctrl)
		uc := NewExpenseUseCase(store)

		store.EXPECT().ListExpenses(gomock.Any()).Return(stored, nil)

		expenses, err := uc.List(context.Background(), "1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(expenses) != 3 {
			t.Fatalf("expected substring match on all, got %d", len(expenses))
		}

		store.EXPECT().ListExpenses(gomock.Any()).Return(stored, nil)
		expenses, err = uc.List(context.Background(), "12")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(expenses) != 1 || expenses[0].Description != "Brushes" {
			t.Fatalf("unexpected filtered expenses: %+v", expenses)
		}
	})
}

func TestExpenseUseCase_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIExpenseStore(ctrl)
	uc := NewExpenseUseCase(store)

	store.EXPECT().ListExpenses(gomock.Any()).Return([]entities.Expense{{JobNumber: "01"}}, nil)
	store.EXPECT().PutExpenses(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, list []entities.Expense) error {
			if len(list) != 2 || list[1].JobNumber != "02" {
				t.Fatalf("unexpected expenses: %+v", list)
			}
			return nil
		},
	)

	if _, err := uc.Add(context.Background(), entities.Expense{JobNumber: "02"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExpenseUseCase_UpdateAt(t *testing.T) {
	t.Run("out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIExpenseStore(ctrl)
		uc := NewExpenseUseCase(store)

		store.EXPECT().ListExpenses(gomock.Any()).Return(nil, nil)

		_, err := uc.UpdateAt(context.Background(), 0, entities.Expense{})
		if !errors.Is(err, ErrExpenseIndexOutOfRange) {
			t.Fatalf("expected ErrExpenseIndexOutOfRange, got %v", err)
		}
	})

	t.Run("replaces at position", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIExpenseStore(ctrl)
		uc := NewExpenseUseCase(store)

		store.EXPECT().ListExpenses(gomock.Any()).Return([]entities.Expense{
			{JobNumber: "01", Description: "old"},
		}, nil)
		store.EXPECT().PutExpenses(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, list []entities.Expense) error {
				if list[0].Description != "new" {
					t.Fatalf("unexpected expenses: %+v", list)
				}
				return nil
			},
		)

		if _, err := uc.UpdateAt(context.Background(), 0, entities.Expense{JobNumber: "01", Description: "new"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestExpenseUseCase_DeleteAt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIExpenseStore(ctrl)
	uc := NewExpenseUseCase(store)

	store.EXPECT().ListExpenses(gomock.Any()).Return([]entities.Expense{
		{JobNumber: "01"},
		{JobNumber: "02"},
	}, nil)
	store.EXPECT().PutExpenses(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, list []entities.Expense) error {
			if len(list) != 1 || list[0].JobNumber != "01" {
				t.Fatalf("unexpected expenses: %+v", list)
			}
			return nil
		},
	)

	if err := uc.DeleteAt(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
