package usecase

import (
	"context"
	"errors"
	"strings"

	"primefinish/internal/domain/entities"
	"primefinish/internal/domain/pricing"
	"primefinish/internal/usecase/interfaces"
)

var (
	ErrRecordNotFound  = errors.New("record not found")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Totals is the computed money breakdown for a set of line items.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	GstHst   float64 `json:"gstHst"`
	Total    float64 `json:"total"`
}

// IEstimateUseCase exposes estimate operations:
//   - Save upserts by estimate number, assigning the next sequential number to
//     a new record and recomputing totals on every save;
//   - Preview computes totals for an unsaved line-item set;
//   - DeleteAt removes by position, matching the list UI.

type IEstimateUseCase interface {
	List(ctx context.Context) ([]entities.Record, error)
	Get(ctx context.Context, number string) (entities.Record, error)
	Save(ctx context.Context, record entities.Record) (entities.Record, error)
	DeleteAt(ctx context.Context, index int) error
	NextNumber(ctx context.Context) (string, error)
	Preview(ctx context.Context, rooms []entities.RoomLineItem, extras []entities.ExtraLineItem) (Totals, error)
}

type EstimateUseCase struct {
	records  interfaces.IRecordStore
	catalogs *CatalogUseCase
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(records interfaces.IRecordStore, catalogs *CatalogUseCase) *EstimateUseCase {
	return &EstimateUseCase{records: records, catalogs: catalogs}
}

func (u *EstimateUseCase) List(ctx context.Context) ([]entities.Record, error) {
	return u.records.GetBucket(ctx, entities.BucketEstimates)
}

func (u *EstimateUseCase) Get(ctx context.Context, number string) (entities.Record, error) {
	return findRecord(ctx, u.records, entities.BucketEstimates, number)
}

func (u *EstimateUseCase) Save(ctx context.Context, record entities.Record) (entities.Record, error) {
	record.EstimateNumber = strings.TrimSpace(record.EstimateNumber)
	if record.EstimateNumber == "" {
		number, err := u.NextNumber(ctx)
		if err != nil {
			return entities.Record{}, err
		}
		record.EstimateNumber = number
	}

	catalog, err := u.catalogs.Merged(ctx, CatalogSideEstimate)
	if err != nil {
		return entities.Record{}, err
	}
	pricing.Finalize(&record, catalog)

	estimates, err := u.records.GetBucket(ctx, entities.BucketEstimates)
	if err != nil {
		return entities.Record{}, err
	}
	estimates = upsertByNumber(estimates, record)

	if err := u.records.PutBucket(ctx, entities.BucketEstimates, estimates); err != nil {
		return entities.Record{}, err
	}
	return record, nil
}

func (u *EstimateUseCase) DeleteAt(ctx context.Context, index int) error {
	return deleteAt(ctx, u.records, entities.BucketEstimates, index)
}

// NextNumber scans every bucket so a number is never reused once a record has
// moved through the lifecycle.
func (u *EstimateUseCase) NextNumber(ctx context.Context) (string, error) {
	return nextNumberAcrossBuckets(ctx, u.records)
}

func (u *EstimateUseCase) Preview(ctx context.Context, rooms []entities.RoomLineItem, extras []entities.ExtraLineItem) (Totals, error) {
	catalog, err := u.catalogs.Merged(ctx, CatalogSideEstimate)
	if err != nil {
		return Totals{}, err
	}
	sub := pricing.Subtotal(rooms, extras, catalog)
	tax := pricing.Tax(sub)
	return Totals{Subtotal: sub, GstHst: tax, Total: pricing.Total(sub, tax)}, nil
}

// upsertByNumber replaces the record sharing the estimate number in place,
// preserving its position, or appends when it is new.
func upsertByNumber(records []entities.Record, record entities.Record) []entities.Record {
	if idx := entities.IndexByNumber(records, record.EstimateNumber); idx >= 0 {
		records[idx] = record
		return records
	}
	return append(records, record)
}

func findRecord(ctx context.Context, store interfaces.IRecordStore, bucket entities.Bucket, number string) (entities.Record, error) {
	records, err := store.GetBucket(ctx, bucket)
	if err != nil {
		return entities.Record{}, err
	}
	idx := entities.IndexByNumber(records, strings.TrimSpace(number))
	if idx < 0 {
		return entities.Record{}, ErrRecordNotFound
	}
	return records[idx], nil
}

func deleteAt(ctx context.Context, store interfaces.IRecordStore, bucket entities.Bucket, index int) error {
	records, err := store.GetBucket(ctx, bucket)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(records) {
		return ErrIndexOutOfRange
	}
	records = append(records[:index], records[index+1:]...)
	return store.PutBucket(ctx, bucket, records)
}

func nextNumberAcrossBuckets(ctx context.Context, store interfaces.IRecordStore) (string, error) {
	all := make([][]entities.Record, 0, 4)
	for _, bucket := range entities.RecordBuckets() {
		records, err := store.GetBucket(ctx, bucket)
		if err != nil {
			return "", err
		}
		all = append(all, records)
	}
	return pricing.NextNumber(all...), nil
}
