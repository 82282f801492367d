package entities

// Expense is a direct job expense with an optional receipt attachment.
// Expenses are a flat list keyed only by position; they do not take part in
// the record lifecycle.
//
// Receipt holds the uploaded receipt image as a data URL, persisted inline
// with the expense.
type Expense struct {
	JobNumber   string `json:"jobNumber"`
	Description string `json:"description"`
	Amount      Amount `json:"amount"`
	Receipt     string `json:"receipt,omitempty"`
}
