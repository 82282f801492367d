package usecase

import (
	"context"
	"errors"
	"testing"

	"primefinish/internal/domain/entities"
	mock_interfaces "primefinish/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCatalogUseCase_Merged(t *testing.T) {
	t.Run("unknown side", func(t *testing.T) {
		uc := NewCatalogUseCase(nil)
		_, err := uc.Merged(context.Background(), CatalogSide("payroll"))
		if !errors.Is(err, ErrUnknownCatalogSide) {
			t.Fatalf("expected ErrUnknownCatalogSide, got %v", err)
		}
	})

	t.Run("no overrides returns defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICatalogStore(ctrl)
		uc := NewCatalogUseCase(store)

		store.EXPECT().GetCatalog(gomock.Any(), entities.KeyEstimateCostOptions).Return(nil, nil)

		options, err := uc.Merged(context.Background(), CatalogSideEstimate)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defaults := entities.DefaultEstimateCostOptions()
		if len(options) != len(defaults) {
			t.Fatalf("expected %d options, got %d", len(defaults), len(options))
		}
	})

	t.Run("override wins, unknown labels appended", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICatalogStore(ctrl)
		uc := NewCatalogUseCase(store)

		store.EXPECT().GetCatalog(gomock.Any(), entities.KeyInvoiceCostOptions).Return([]entities.CostOption{
			{Label: "Just ceiling", Value: 999},
			{Label: "Custom package", Value: 42},
		}, nil)

		options, err := uc.Merged(context.Background(), CatalogSideInvoice)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found := map[string]float64{}
		for _, opt := range options {
			found[opt.Label] = opt.Value
		}
		if found["Just ceiling"] != 999 {
			t.Fatalf("expected override to win, got %v", found["Just ceiling"])
		}
		if found["Custom package"] != 42 {
			t.Fatalf("expected appended override, got %v", found["Custom package"])
		}
	})

	t.Run("sides differ on trim and doors", func(t *testing.T) {
		estimate := entities.DefaultEstimateCostOptions()
		invoice := entities.DefaultInvoiceCostOptions()

		value := func(options []entities.CostOption, label string) float64 {
			for _, opt := range options {
				if opt.Label == label {
					return opt.Value
				}
			}
			t.Fatalf("label %q missing", label)
			return 0
		}
		if value(estimate, "Just trim and doors") != 150 || value(invoice, "Just trim and doors") != 125 {
			t.Fatalf("unexpected trim and doors defaults")
		}
	})
}

func TestCatalogUseCase_SavePrices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockICatalogStore(ctrl)
	uc := NewCatalogUseCase(store)

	options := []entities.CostOption{{Label: "Just ceiling", Value: 175}}
	store.EXPECT().PutCatalog(gomock.Any(), entities.KeyEstimateCostOptions, options).Return(nil)

	if err := uc.SavePrices(context.Background(), CatalogSideEstimate, options); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := uc.SavePrices(context.Background(), CatalogSide("x"), options); !errors.Is(err, ErrUnknownCatalogSide) {
		t.Fatalf("expected ErrUnknownCatalogSide, got %v", err)
	}
}
