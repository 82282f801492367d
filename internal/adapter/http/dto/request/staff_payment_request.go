package request

import (
	"strings"

	"primefinish/internal/domain/entities"
)

// StaffPaymentRequest carries one staff payout. The stored total is derived
// server-side from the amount and the GST flag.
type StaffPaymentRequest struct {
	Date        string          `json:"date" binding:"required"`
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Amount      entities.Amount `json:"amount"`
	GST         bool            `json:"gst"`
}

func (r StaffPaymentRequest) ToEntity() entities.StaffPayment {
	return entities.StaffPayment{
		Date:        strings.TrimSpace(r.Date),
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		Amount:      r.Amount,
		GST:         r.GST,
	}
}
