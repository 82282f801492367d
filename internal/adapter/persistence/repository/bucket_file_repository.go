package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"primefinish/internal/domain/entities"
	"primefinish/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// BucketFileRepository persists each named bucket as one JSON file under a
// data directory. It is the offline analog of the DynamoDB driver: same
// whole-bucket snapshot semantics, same fail-open reads.
//
// Writes go through a temp file plus rename so a crash mid-write never leaves
// a half-written bucket behind.

type BucketFileRepository struct {
	dir string
}

var (
	_ interfaces.IRecordStore       = (*BucketFileRepository)(nil)
	_ interfaces.ICatalogStore      = (*BucketFileRepository)(nil)
	_ interfaces.IExpenseStore      = (*BucketFileRepository)(nil)
	_ interfaces.IStaffPaymentStore = (*BucketFileRepository)(nil)
)

func NewBucketFileRepository(dir string) (*BucketFileRepository, error) {
	if dir == "" {
		dir = getenvDefault("DATA_DIR", "data")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &BucketFileRepository{dir: dir}, nil
}

func (r *BucketFileRepository) GetBucket(_ context.Context, bucket entities.Bucket) ([]entities.Record, error) {
	payload, err := r.read(string(bucket))
	if err != nil {
		return nil, err
	}
	return decodeRecords(string(bucket), payload), nil
}

func (r *BucketFileRepository) PutBucket(_ context.Context, bucket entities.Bucket, records []entities.Record) error {
	return r.writeList(string(bucket), records)
}

func (r *BucketFileRepository) GetCatalog(_ context.Context, key string) ([]entities.CostOption, error) {
	payload, err := r.read(key)
	if err != nil {
		return nil, err
	}
	return decodeCostOptions(key, payload), nil
}

func (r *BucketFileRepository) PutCatalog(_ context.Context, key string, options []entities.CostOption) error {
	return r.writeList(key, options)
}

func (r *BucketFileRepository) ListExpenses(_ context.Context) ([]entities.Expense, error) {
	payload, err := r.read(entities.KeyDirectExpenses)
	if err != nil {
		return nil, err
	}
	return decodeExpenses(payload), nil
}

func (r *BucketFileRepository) PutExpenses(_ context.Context, expenses []entities.Expense) error {
	return r.writeList(entities.KeyDirectExpenses, expenses)
}

func (r *BucketFileRepository) ListStaffPayments(_ context.Context) ([]entities.StaffPayment, error) {
	payload, err := r.read(entities.KeyStaffPayments)
	if err != nil {
		return nil, err
	}
	return decodeStaffPayments(payload), nil
}

func (r *BucketFileRepository) PutStaffPayments(_ context.Context, payments []entities.StaffPayment) error {
	return r.writeList(entities.KeyStaffPayments, payments)
}

func (r *BucketFileRepository) read(name string) ([]byte, error) {
	payload, err := os.ReadFile(r.path(name))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func (r *BucketFileRepository) writeList(name string, list any) error {
	payload, err := encodeList(list)
	if err != nil {
		return err
	}

	tmp := r.path(name) + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, r.path(name)); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

func (r *BucketFileRepository) path(name string) string {
	return filepath.Join(r.dir, name+".json")
}
