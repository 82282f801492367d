package interfaces

import (
	"primefinish/internal/domain/entities"
)

// IDocumentRenderer turns finalized records into PDF documents. The renderer
// consumes only plain record data; layout is its own concern.
//
// Each method returns the document bytes and the download filename derived
// from the record (sanitized customer name).

type IDocumentRenderer interface {
	EstimatePDF(record entities.Record) ([]byte, string, error)
	DetailedEstimatePDF(record entities.Record) ([]byte, string, error)
	InvoicePDF(record entities.Record) ([]byte, string, error)
	DetailedInvoicePDF(record entities.Record) ([]byte, string, error)
	ExpenseReportPDF(expenses []entities.Expense) ([]byte, string, error)
	PayoutReportPDF(payments []entities.StaffPayment, filterName string) ([]byte, string, error)
}
