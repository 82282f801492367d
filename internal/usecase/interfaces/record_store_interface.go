package interfaces

import (
	"context"

	"primefinish/internal/domain/entities"
)

// IRecordStore abstracts the named-bucket persistence for records.
//
// Buckets are independently persisted ordered lists, read and written
// wholesale: GetBucket returns a snapshot, PutBucket overwrites the bucket
// with the caller's updated snapshot. A bucket that is missing or fails to
// parse reads as empty rather than erroring.

type IRecordStore interface {
	GetBucket(ctx context.Context, bucket entities.Bucket) ([]entities.Record, error)
	PutBucket(ctx context.Context, bucket entities.Bucket, records []entities.Record) error
}
