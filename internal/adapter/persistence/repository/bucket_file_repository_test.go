package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"primefinish/internal/domain/entities"
)

func TestBucketFileRepository_RoundTrip(t *testing.T) {
	repo, err := NewBucketFileRepository(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	records := []entities.Record{
		{EstimateNumber: "01", CustomerName: "Jane", Subtotal: 100, GstHst: 13, Total: 113},
	}
	if err := repo.PutBucket(ctx, entities.BucketEstimates, records); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.GetBucket(ctx, entities.BucketEstimates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].CustomerName != "Jane" || got[0].Total.Float() != 113 {
		t.Fatalf("unexpected records: %+v", got)
	}
}

func TestBucketFileRepository_MissingFileReadsEmpty(t *testing.T) {
	repo, err := NewBucketFileRepository(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.GetBucket(context.Background(), entities.BucketOpenJobs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty bucket, got %+v", got)
	}
}

func TestBucketFileRepository_MalformedPayloadReadsEmpty(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewBucketFileRepository(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path := filepath.Join(dir, string(entities.BucketEstimates)+".json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.GetBucket(context.Background(), entities.BucketEstimates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty bucket, got %+v", got)
	}
}

func TestBucketFileRepository_CatalogAndLists(t *testing.T) {
	repo, err := NewBucketFileRepository(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	options := []entities.CostOption{{Label: "Just ceiling", Value: 175}}
	if err := repo.PutCatalog(ctx, entities.KeyEstimateCostOptions, options); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gotOptions, err := repo.GetCatalog(ctx, entities.KeyEstimateCostOptions)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gotOptions) != 1 || gotOptions[0].Value != 175 {
		t.Fatalf("unexpected options: %+v", gotOptions)
	}

	expenses := []entities.Expense{{JobNumber: "01", Description: "Paint", Amount: 50}}
	if err := repo.PutExpenses(ctx, expenses); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gotExpenses, err := repo.ListExpenses(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gotExpenses) != 1 || gotExpenses[0].Description != "Paint" {
		t.Fatalf("unexpected expenses: %+v", gotExpenses)
	}

	payments := []entities.StaffPayment{{Name: "Alex", Date: "2025-01-15", Amount: 100, Total: 100}}
	if err := repo.PutStaffPayments(ctx, payments); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gotPayments, err := repo.ListStaffPayments(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gotPayments) != 1 || gotPayments[0].Name != "Alex" {
		t.Fatalf("unexpected payments: %+v", gotPayments)
	}
}
