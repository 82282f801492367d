package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"primefinish/internal/domain/entities"
	"primefinish/internal/usecase/interfaces"
)

var (
	ErrPaymentIndexOutOfRange = errors.New("payment index out of range")
)

// IStaffPaymentUseCase manages contractor payouts. Add derives the payout
// total from the GST flag before persisting; List supports the payout page's
// name and year filters.

type IStaffPaymentUseCase interface {
	List(ctx context.Context, nameFilter string, year int) ([]entities.StaffPayment, error)
	Add(ctx context.Context, payment entities.StaffPayment) (entities.StaffPayment, error)
	DeleteAt(ctx context.Context, index int) error
}

type StaffPaymentUseCase struct {
	store interfaces.IStaffPaymentStore
}

var _ IStaffPaymentUseCase = (*StaffPaymentUseCase)(nil)

func NewStaffPaymentUseCase(store interfaces.IStaffPaymentStore) *StaffPaymentUseCase {
	return &StaffPaymentUseCase{store: store}
}

// List filters by name substring (case-insensitive) and payment year. A zero
// year matches every date, including unparsable ones.
func (u *StaffPaymentUseCase) List(ctx context.Context, nameFilter string, year int) ([]entities.StaffPayment, error) {
	payments, err := u.store.ListStaffPayments(ctx)
	if err != nil {
		return nil, err
	}

	nameFilter = strings.ToLower(strings.TrimSpace(nameFilter))
	filtered := make([]entities.StaffPayment, 0, len(payments))
	for _, p := range payments {
		if nameFilter != "" && !strings.Contains(strings.ToLower(p.Name), nameFilter) {
			continue
		}
		if year != 0 && paymentYear(p.Date) != year {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered, nil
}

func (u *StaffPaymentUseCase) Add(ctx context.Context, payment entities.StaffPayment) (entities.StaffPayment, error) {
	payment = payment.WithDerivedTotal()

	payments, err := u.store.ListStaffPayments(ctx)
	if err != nil {
		return entities.StaffPayment{}, err
	}
	payments = append(payments, payment)
	if err := u.store.PutStaffPayments(ctx, payments); err != nil {
		return entities.StaffPayment{}, err
	}
	return payment, nil
}

func (u *StaffPaymentUseCase) DeleteAt(ctx context.Context, index int) error {
	payments, err := u.store.ListStaffPayments(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(payments) {
		return ErrPaymentIndexOutOfRange
	}
	payments = append(payments[:index], payments[index+1:]...)
	return u.store.PutStaffPayments(ctx, payments)
}

func paymentYear(date string) int {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(date))
	if err != nil {
		return 0
	}
	return t.Year()
}
