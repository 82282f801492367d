package usecase

import (
	"context"
	"strings"

	"primefinish/internal/domain/entities"
	"primefinish/internal/domain/pricing"
	"primefinish/internal/usecase/interfaces"
)

// IInvoiceUseCase exposes standalone invoice operations. Invoices created
// from closed jobs go through the job use case instead; this path covers
// invoices written from scratch or edited after creation.

type IInvoiceUseCase interface {
	List(ctx context.Context) ([]entities.Record, error)
	Get(ctx context.Context, number string) (entities.Record, error)
	Save(ctx context.Context, record entities.Record) (entities.Record, error)
	DeleteAt(ctx context.Context, index int) error
}

type InvoiceUseCase struct {
	records  interfaces.IRecordStore
	catalogs *CatalogUseCase
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(records interfaces.IRecordStore, catalogs *CatalogUseCase) *InvoiceUseCase {
	return &InvoiceUseCase{records: records, catalogs: catalogs}
}

func (u *InvoiceUseCase) List(ctx context.Context) ([]entities.Record, error) {
	return u.records.GetBucket(ctx, entities.BucketInvoices)
}

func (u *InvoiceUseCase) Get(ctx context.Context, number string) (entities.Record, error) {
	return findRecord(ctx, u.records, entities.BucketInvoices, number)
}

func (u *InvoiceUseCase) Save(ctx context.Context, record entities.Record) (entities.Record, error) {
	record.EstimateNumber = strings.TrimSpace(record.EstimateNumber)
	if record.EstimateNumber == "" {
		number, err := nextNumberAcrossBuckets(ctx, u.records)
		if err != nil {
			return entities.Record{}, err
		}
		record.EstimateNumber = number
	}

	catalog, err := u.catalogs.Merged(ctx, CatalogSideInvoice)
	if err != nil {
		return entities.Record{}, err
	}
	pricing.Finalize(&record, catalog)

	invoices, err := u.records.GetBucket(ctx, entities.BucketInvoices)
	if err != nil {
		return entities.Record{}, err
	}
	invoices = upsertByNumber(invoices, record)

	if err := u.records.PutBucket(ctx, entities.BucketInvoices, invoices); err != nil {
		return entities.Record{}, err
	}
	return record, nil
}

func (u *InvoiceUseCase) DeleteAt(ctx context.Context, index int) error {
	return deleteAt(ctx, u.records, entities.BucketInvoices, index)
}
