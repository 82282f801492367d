package interfaces

import (
	"context"

	"primefinish/internal/domain/entities"
)

// IStaffPaymentStore persists the flat contractor-payout list.

type IStaffPaymentStore interface {
	ListStaffPayments(ctx context.Context) ([]entities.StaffPayment, error)
	PutStaffPayments(ctx context.Context, payments []entities.StaffPayment) error
}
