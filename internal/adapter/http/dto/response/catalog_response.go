package response

import "primefinish/internal/domain/entities"

type CostOptionResponse struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

func FromCostOptions(options []entities.CostOption) []CostOptionResponse {
	out := make([]CostOptionResponse, 0, len(options))
	for _, opt := range options {
		out = append(out, CostOptionResponse{Label: opt.Label, Value: opt.Value})
	}
	return out
}
