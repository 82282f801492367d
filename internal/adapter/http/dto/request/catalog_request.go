package request

import "primefinish/internal/domain/entities"

type CostOptionRequest struct {
	Label string  `json:"label" binding:"required"`
	Value float64 `json:"value"`
}

// CatalogRequest replaces the stored price overrides for one catalog side.
type CatalogRequest struct {
	Options []CostOptionRequest `json:"options" binding:"required"`
}

func (r CatalogRequest) ToEntities() []entities.CostOption {
	out := make([]entities.CostOption, 0, len(r.Options))
	for _, opt := range r.Options {
		out = append(out, entities.CostOption{Label: opt.Label, Value: opt.Value})
	}
	return out
}
