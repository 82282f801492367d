package interfaces

import (
	"context"

	"primefinish/internal/domain/entities"
)

// ICatalogStore persists the user's price overrides per catalog side
// (estimate vs invoice). Only the overrides are stored; defaults are merged
// in by the use case on read.

type ICatalogStore interface {
	GetCatalog(ctx context.Context, key string) ([]entities.CostOption, error)
	PutCatalog(ctx context.Context, key string, options []entities.CostOption) error
}
