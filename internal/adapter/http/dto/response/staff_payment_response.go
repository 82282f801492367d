package response

import "primefinish/internal/domain/entities"

type StaffPaymentResponse struct {
	Date        string          `json:"date"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Amount      entities.Amount `json:"amount"`
	GST         bool            `json:"gst"`
	Total       entities.Amount `json:"total"`
}

func FromStaffPayment(p entities.StaffPayment) StaffPaymentResponse {
	return StaffPaymentResponse{
		Date:        p.Date,
		Name:        p.Name,
		Description: p.Description,
		Amount:      p.Amount,
		GST:         p.GST,
		Total:       p.Total,
	}
}

func FromStaffPayments(payments []entities.StaffPayment) []StaffPaymentResponse {
	out := make([]StaffPaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromStaffPayment(p))
	}
	return out
}
