package repository

import (
	"context"
	"sync"

	"primefinish/internal/domain/entities"
	"primefinish/internal/usecase/interfaces"
)

// BucketMemoryRepository keeps the named buckets in process memory. Used by
// tests and as a throwaway driver when no persistence is configured.
//
// Payloads go through the same JSON codec as the durable drivers so snapshots
// never alias caller slices.

type BucketMemoryRepository struct {
	mu      sync.Mutex
	buckets map[string][]byte
}

var (
	_ interfaces.IRecordStore       = (*BucketMemoryRepository)(nil)
	_ interfaces.ICatalogStore      = (*BucketMemoryRepository)(nil)
	_ interfaces.IExpenseStore      = (*BucketMemoryRepository)(nil)
	_ interfaces.IStaffPaymentStore = (*BucketMemoryRepository)(nil)
)

func NewBucketMemoryRepository() *BucketMemoryRepository {
	return &BucketMemoryRepository{buckets: make(map[string][]byte)}
}

func (r *BucketMemoryRepository) GetBucket(_ context.Context, bucket entities.Bucket) ([]entities.Record, error) {
	return decodeRecords(string(bucket), r.get(string(bucket))), nil
}

func (r *BucketMemoryRepository) PutBucket(_ context.Context, bucket entities.Bucket, records []entities.Record) error {
	return r.put(string(bucket), records)
}

func (r *BucketMemoryRepository) GetCatalog(_ context.Context, key string) ([]entities.CostOption, error) {
	return decodeCostOptions(key, r.get(key)), nil
}

func (r *BucketMemoryRepository) PutCatalog(_ context.Context, key string, options []entities.CostOption) error {
	return r.put(key, options)
}

func (r *BucketMemoryRepository) ListExpenses(_ context.Context) ([]entities.Expense, error) {
	return decodeExpenses(r.get(entities.KeyDirectExpenses)), nil
}

func (r *BucketMemoryRepository) PutExpenses(_ context.Context, expenses []entities.Expense) error {
	return r.put(entities.KeyDirectExpenses, expenses)
}

func (r *BucketMemoryRepository) ListStaffPayments(_ context.Context) ([]entities.StaffPayment, error) {
	return decodeStaffPayments(r.get(entities.KeyStaffPayments)), nil
}

func (r *BucketMemoryRepository) PutStaffPayments(_ context.Context, payments []entities.StaffPayment) error {
	return r.put(entities.KeyStaffPayments, payments)
}

func (r *BucketMemoryRepository) get(name string) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buckets[name]
}

func (r *BucketMemoryRepository) put(name string, list any) error {
	payload, err := encodeList(list)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.buckets[name] = payload
	return nil
}
