package entities

// StaffPayment is a contractor payout. Total is derived when the payment is
// added: amount plus 13% GST when the GST flag is set, the plain amount
// otherwise.
type StaffPayment struct {
	Date        string `json:"date"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Amount      Amount `json:"amount"`
	GST         bool   `json:"gst"`
	Total       Amount `json:"total"`
}

// WithDerivedTotal returns the payment with Total recomputed from Amount and
// the GST flag.
func (p StaffPayment) WithDerivedTotal() StaffPayment {
	if p.GST {
		p.Total = Amount(p.Amount.Float() * 1.13)
	} else {
		p.Total = p.Amount
	}
	return p
}
