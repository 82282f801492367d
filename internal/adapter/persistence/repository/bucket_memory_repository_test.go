package repository

import (
	"context"
	"testing"

	"primefinish/internal/domain/entities"
)

func TestBucketMemoryRepository_RoundTrip(t *testing.T) {
	repo := NewBucketMemoryRepository()
	ctx := context.Background()

	records := []entities.Record{{EstimateNumber: "01", CustomerName: "Jane"}}
	if err := repo.PutBucket(ctx, entities.BucketEstimates, records); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.GetBucket(ctx, entities.BucketEstimates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].EstimateNumber != "01" {
		t.Fatalf("unexpected records: %+v", got)
	}
}

func TestBucketMemoryRepository_SnapshotsDoNotAlias(t *testing.T) {
	repo := NewBucketMemoryRepository()
	ctx := context.Background()

	records := []entities.Record{{EstimateNumber: "01", CustomerName: "Jane"}}
	if err := repo.PutBucket(ctx, entities.BucketEstimates, records); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Mutating the caller's slice must not leak into the stored snapshot.
	records[0].CustomerName = "changed"

	got, err := repo.GetBucket(ctx, entities.BucketEstimates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].CustomerName != "Jane" {
		t.Fatalf("stored snapshot was mutated: %+v", got)
	}

	// And mutating a read result must not change later reads.
	got[0].CustomerName = "also changed"
	again, err := repo.GetBucket(ctx, entities.BucketEstimates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again[0].CustomerName != "Jane" {
		t.Fatalf("read result aliased the store: %+v", again)
	}
}

func TestBucketMemoryRepository_EmptyBuckets(t *testing.T) {
	repo := NewBucketMemoryRepository()
	ctx := context.Background()

	for _, bucket := range entities.RecordBuckets() {
		got, err := repo.GetBucket(ctx, bucket)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected empty %s, got %+v", bucket, got)
		}
	}
}
