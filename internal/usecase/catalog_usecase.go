package usecase

import (
	"context"
	"errors"

	"primefinish/internal/domain/entities"
	"primefinish/internal/domain/pricing"
	"primefinish/internal/usecase/interfaces"
)

var (
	ErrUnknownCatalogSide = errors.New("unknown catalog side")
)

// CatalogSide selects which price list an operation works against. Estimates
// and invoices keep independent overrides under separate storage keys.
type CatalogSide string

const (
	CatalogSideEstimate CatalogSide = "estimate"
	CatalogSideInvoice  CatalogSide = "invoice"
)

// ICatalogUseCase exposes the editable price catalogs.
//
// Merged returns defaults overlaid with the user's saved overrides; SavePrices
// persists the full edited list as the new override set.

type ICatalogUseCase interface {
	Merged(ctx context.Context, side CatalogSide) ([]entities.CostOption, error)
	SavePrices(ctx context.Context, side CatalogSide, options []entities.CostOption) error
}

type CatalogUseCase struct {
	store interfaces.ICatalogStore
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(store interfaces.ICatalogStore) *CatalogUseCase {
	return &CatalogUseCase{store: store}
}

func (u *CatalogUseCase) Merged(ctx context.Context, side CatalogSide) ([]entities.CostOption, error) {
	key, defaults, err := catalogFor(side)
	if err != nil {
		return nil, err
	}
	saved, err := u.store.GetCatalog(ctx, key)
	if err != nil {
		return nil, err
	}
	return pricing.MergeCatalog(defaults, saved), nil
}

func (u *CatalogUseCase) SavePrices(ctx context.Context, side CatalogSide, options []entities.CostOption) error {
	key, _, err := catalogFor(side)
	if err != nil {
		return err
	}
	return u.store.PutCatalog(ctx, key, options)
}

func catalogFor(side CatalogSide) (string, []entities.CostOption, error) {
	switch side {
	case CatalogSideEstimate:
		return entities.KeyEstimateCostOptions, entities.DefaultEstimateCostOptions(), nil
	case CatalogSideInvoice:
		return entities.KeyInvoiceCostOptions, entities.DefaultInvoiceCostOptions(), nil
	default:
		return "", nil, ErrUnknownCatalogSide
	}
}
