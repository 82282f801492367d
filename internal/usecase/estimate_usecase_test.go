package usecase

import (
	"context"
	"errors"
	"testing"

	"primefinish/internal/domain/entities"
	mock_interfaces "primefinish/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newEstimateUseCaseForTest(ctrl *gomock.Controller) (*EstimateUseCase, *mock_interfaces.MockIRecordStore, *mock_interfaces.MockICatalogStore) {
	records := mock_interfaces.NewMockIRecordStore(ctrl)
	catalogStore := mock_interfaces.NewMockICatalogStore(ctrl)
	return NewEstimateUseCase(records, NewCatalogUseCase(catalogStore)), records, catalogStore
}

func TestEstimateUseCase_Save(t *testing.T) {
	t.Run("assigns next number and computes totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, records, catalogStore := newEstimateUseCaseForTest(ctrl)

		records.EXPECT().GetBucket(gomock.Any(), entities.BucketEstimates).
			Return([]entities.Record{{EstimateNumber: "04"}}, nil).Times(2)
		records.EXPECT().GetBucket(gomock.Any(), entities.BucketOpenJobs).Return(nil, nil)
		records.EXPECT().GetBucket(gomock.Any(), entities.BucketClosedJobs).Return(nil, nil)
		records.EXPECT().GetBucket(gomock.Any(), entities.BucketInvoices).Return(nil, nil)
		catalogStore.EXPECT().GetCatalog(gomock.Any(), entities.KeyEstimateCostOptions).Return(nil, nil)

		var saved []entities.Record
		records.EXPECT().PutBucket(gomock.Any(), entities.BucketEstimates, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.Bucket, list []entities.Record) error {
				saved = list
				return nil
			},
		)

		record, err := uc.Save(context.Background(), entities.Record{
			CustomerName: "Jane Doe",
			Rooms:        []entities.RoomLineItem{{RoomName: "Basement", Cost: 100}},
			Extras:       []entities.ExtraLineItem{{Type: "Paint", Cost: 50}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if record.EstimateNumber != "05" {
			t.Fatalf("expected number 05, got %q", record.EstimateNumber)
		}
		if record.Subtotal.Float() != 150 || record.GstHst.Float() != 19.5 || record.Total.Float() != 169.5 {
			t.Fatalf("unexpected totals: %+v", record)
		}
		if len(saved) != 2 || saved[1].EstimateNumber != "05" {
			t.Fatalf("expected append, got %+v", saved)
		}
	})

	t.Run("upsert replaces in place", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, records, catalogStore := newEstimateUseCaseForTest(ctrl)

		existing := []entities.Record{
			{EstimateNumber: "01", CustomerName: "A"},
			{EstimateNumber: "07", CustomerName: "B"},
			{EstimateNumber: "09", CustomerName: "C"},
		}
		catalogStore.EXPECT().GetCatalog(gomock.Any(), entities.KeyEstimateCostOptions).Return(nil, nil)
		records.EXPECT().GetBucket(gomock.Any(), entities.BucketEstimates).Return(existing, nil)

		var saved []entities.Record
		records.EXPECT().PutBucket(gomock.Any(), entities.BucketEstimates, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.Bucket, list []entities.Record) error {
				saved = list
				return nil
			},
		)

		_, err := uc.Save(context.Background(), entities.Record{EstimateNumber: " 07 ", CustomerName: "B2"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(saved) != 3 || saved[1].CustomerName != "B2" {
			t.Fatalf("expected in-place replacement, got %+v", saved)
		}
	})

	t.Run("store error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, records, catalogStore := newEstimateUseCaseForTest(ctrl)

		catalogStore.EXPECT().GetCatalog(gomock.Any(), entities.KeyEstimateCostOptions).Return(nil, nil)
		records.EXPECT().GetBucket(gomock.Any(), entities.BucketEstimates).Return(nil, errors.New("db"))

		_, err := uc.Save(context.Background(), entities.Record{EstimateNumber: "01"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestEstimateUseCase_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, records, _ := newEstimateUseCaseForTest(ctrl)

		records.EXPECT().GetBucket(gomock.Any(), entities.BucketEstimates).
			Return([]entities.Record{{EstimateNumber: "01"}}, nil)

		_, err := uc.Get(context.Background(), "99")
		if !errors.Is(err, ErrRecordNotFound) {
			t.Fatalf("expected ErrRecordNotFound, got %v", err)
		}
	})

	t.Run("found by trimmed number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, records, _ := newEstimateUseCaseForTest(ctrl)

		records.EXPECT().GetBucket(gomock.Any(), entities.BucketEstimates).
			Return([]entities.Record{{EstimateNumber: "01", CustomerName: "Jane"}}, nil)

		record, err := uc.Get(context.Background(), " 01 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if record.CustomerName != "Jane" {
			t.Fatalf("unexpected record: %+v", record)
		}
	})
}

func TestEstimateUseCase_DeleteAt(t *testing.T) {
	t.Run("out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, records, _ := newEstimateUseCaseForTest(ctrl)

		records.EXPECT().GetBucket(gomock.Any(), entities.BucketEstimates).
			Return([]entities.Record{{EstimateNumber: "01"}}, nil)

		if err := uc.DeleteAt(context.Background(), 5); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
		}
	})

	t.Run("removes by position", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, records, _ := newEstimateUseCaseForTest(ctrl)

		records.EXPECT().GetBucket(gomock.Any(), entities.BucketEstimates).Return([]entities.Record{
			{EstimateNumber: "01"},
			{EstimateNumber: "02"},
		}, nil)
		records.EXPECT().PutBucket(gomock.Any(), entities.BucketEstimates, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.Bucket, list []entities.Record) error {
				if len(list) != 1 || list[0].EstimateNumber != "02" {
					t.Fatalf("unexpected remainder: %+v", list)
				}
				return nil
			},
		)

		if err := uc.DeleteAt(context.Background(), 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEstimateUseCase_NextNumber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, records, _ := newEstimateUseCaseForTest(ctrl)

	records.EXPECT().GetBucket(gomock.Any(), entities.BucketEstimates).
		Return([]entities.Record{{EstimateNumber: "02"}}, nil)
	records.EXPECT().GetBucket(gomock.Any(), entities.BucketOpenJobs).
		Return([]entities.Record{{EstimateNumber: "7"}}, nil)
	records.EXPECT().GetBucket(gomock.Any(), entities.BucketClosedJobs).Return(nil, nil)
	records.EXPECT().GetBucket(gomock.Any(), entities.BucketInvoices).
		Return([]entities.Record{{EstimateNumber: "draft"}}, nil)

	number, err := uc.NextNumber(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if number != "08" {
		t.Fatalf("expected 08, got %q", number)
	}
}

func TestEstimateUseCase_Preview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _, catalogStore := newEstimateUseCaseForTest(ctrl)

	catalogStore.EXPECT().GetCatalog(gomock.Any(), entities.KeyEstimateCostOptions).Return(nil, nil)

	totals, err := uc.Preview(context.Background(),
		[]entities.RoomLineItem{{RoomName: "Bedroom", Cost: 200}},
		[]entities.ExtraLineItem{{Type: "Paint", Cost: 100}},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if totals.Subtotal != 300 || totals.GstHst != 39 || totals.Total != 339 {
		t.Fatalf("unexpected totals: %+v", totals)
	}
}
