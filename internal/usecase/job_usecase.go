package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"primefinish/internal/domain/entities"
	"primefinish/internal/usecase/interfaces"
)

var (
	ErrJobAlreadyOpen        = errors.New("job already open")
	ErrJobAlreadyClosed      = errors.New("job already closed")
	ErrInvoiceAlreadyCreated = errors.New("invoice already created for this job")
	ErrUnknownProgressOption = errors.New("unknown progress option")
	ErrRoomIndexOutOfRange   = errors.New("room index out of range")
	ErrInvalidEstimateNumber = errors.New("invalid estimate number")
)

// IJobUseCase moves records through the job lifecycle:
//
//	estimates -> openJobs -> closedJobs -> invoices
//
// Every transition copies the record, guarded by estimate-number uniqueness in
// the target bucket. A duplicate transition is rejected and leaves the target
// bucket unchanged. Closing a job that was never opened is allowed: it appends
// to closedJobs and the openJobs removal is a no-op.

type IJobUseCase interface {
	OpenJob(ctx context.Context, number string) (entities.Record, error)
	CloseJob(ctx context.Context, number string) (entities.Record, error)
	CreateInvoiceFromJob(ctx context.Context, number string) (entities.Record, error)
	ListOpen(ctx context.Context) ([]entities.Record, error)
	ListClosed(ctx context.Context) ([]entities.Record, error)
	DeleteOpenAt(ctx context.Context, index int) error
	DeleteClosedAt(ctx context.Context, index int) error
	ToggleRoomProgress(ctx context.Context, number string, roomIndex int, option string) (entities.Record, error)
	SetRoomNote(ctx context.Context, number string, roomIndex int, note string) (entities.Record, error)
}

type JobUseCase struct {
	records interfaces.IRecordStore
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(records interfaces.IRecordStore) *JobUseCase {
	return &JobUseCase{records: records}
}

func (u *JobUseCase) OpenJob(ctx context.Context, number string) (entities.Record, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return entities.Record{}, ErrInvalidEstimateNumber
	}

	estimate, err := findRecord(ctx, u.records, entities.BucketEstimates, number)
	if err != nil {
		return entities.Record{}, err
	}

	openJobs, err := u.records.GetBucket(ctx, entities.BucketOpenJobs)
	if err != nil {
		return entities.Record{}, err
	}
	if entities.IndexByNumber(openJobs, number) >= 0 {
		return entities.Record{}, ErrJobAlreadyOpen
	}

	openJobs = append(openJobs, estimate)
	if err := u.records.PutBucket(ctx, entities.BucketOpenJobs, openJobs); err != nil {
		return entities.Record{}, err
	}
	log.Printf("[jobs] opened job %s", number)
	return estimate, nil
}

func (u *JobUseCase) CloseJob(ctx context.Context, number string) (entities.Record, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return entities.Record{}, ErrInvalidEstimateNumber
	}

	record, err := findRecord(ctx, u.records, entities.BucketEstimates, number)
	if errors.Is(err, ErrRecordNotFound) {
		// The job may exist only in openJobs (estimate since deleted).
		record, err = findRecord(ctx, u.records, entities.BucketOpenJobs, number)
	}
	if err != nil {
		return entities.Record{}, err
	}

	closedJobs, err := u.records.GetBucket(ctx, entities.BucketClosedJobs)
	if err != nil {
		return entities.Record{}, err
	}
	if entities.IndexByNumber(closedJobs, number) >= 0 {
		return entities.Record{}, ErrJobAlreadyClosed
	}

	closedJobs = append(closedJobs, record)
	if err := u.records.PutBucket(ctx, entities.BucketClosedJobs, closedJobs); err != nil {
		return entities.Record{}, err
	}

	openJobs, err := u.records.GetBucket(ctx, entities.BucketOpenJobs)
	if err != nil {
		return entities.Record{}, err
	}
	remaining := openJobs[:0]
	for _, job := range openJobs {
		if job.EstimateNumber != number {
			remaining = append(remaining, job)
		}
	}
	if err := u.records.PutBucket(ctx, entities.BucketOpenJobs, remaining); err != nil {
		return entities.Record{}, err
	}
	log.Printf("[jobs] closed job %s", number)
	return record, nil
}

// CreateInvoiceFromJob copies a closed job into the invoices bucket exactly
// once, stamping the fixed invoice description over whatever the job carried.
func (u *JobUseCase) CreateInvoiceFromJob(ctx context.Context, number string) (entities.Record, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return entities.Record{}, ErrInvalidEstimateNumber
	}

	job, err := findRecord(ctx, u.records, entities.BucketClosedJobs, number)
	if err != nil {
		return entities.Record{}, err
	}

	invoices, err := u.records.GetBucket(ctx, entities.BucketInvoices)
	if err != nil {
		return entities.Record{}, err
	}
	if entities.IndexByNumber(invoices, number) >= 0 {
		return entities.Record{}, ErrInvoiceAlreadyCreated
	}

	invoice := job
	invoice.Description = entities.InvoiceDescription
	invoice.CustomDescription = ""

	invoices = append(invoices, invoice)
	if err := u.records.PutBucket(ctx, entities.BucketInvoices, invoices); err != nil {
		return entities.Record{}, err
	}
	log.Printf("[jobs] created invoice from job %s", number)
	return invoice, nil
}

func (u *JobUseCase) ListOpen(ctx context.Context) ([]entities.Record, error) {
	return u.records.GetBucket(ctx, entities.BucketOpenJobs)
}

func (u *JobUseCase) ListClosed(ctx context.Context) ([]entities.Record, error) {
	return u.records.GetBucket(ctx, entities.BucketClosedJobs)
}

func (u *JobUseCase) DeleteOpenAt(ctx context.Context, index int) error {
	return deleteAt(ctx, u.records, entities.BucketOpenJobs, index)
}

func (u *JobUseCase) DeleteClosedAt(ctx context.Context, index int) error {
	return deleteAt(ctx, u.records, entities.BucketClosedJobs, index)
}

// ToggleRoomProgress adds the progress option to the room if absent, removes
// it if present. Only options from the fixed checklist are accepted.
func (u *JobUseCase) ToggleRoomProgress(ctx context.Context, number string, roomIndex int, option string) (entities.Record, error) {
	if !isProgressOption(option) {
		return entities.Record{}, ErrUnknownProgressOption
	}
	return u.updateOpenJobRoom(ctx, number, roomIndex, func(room *entities.RoomLineItem) {
		for i, existing := range room.Progress {
			if existing == option {
				room.Progress = append(room.Progress[:i], room.Progress[i+1:]...)
				return
			}
		}
		room.Progress = append(room.Progress, option)
	})
}

func (u *JobUseCase) SetRoomNote(ctx context.Context, number string, roomIndex int, note string) (entities.Record, error) {
	return u.updateOpenJobRoom(ctx, number, roomIndex, func(room *entities.RoomLineItem) {
		room.Note = note
	})
}

func (u *JobUseCase) updateOpenJobRoom(ctx context.Context, number string, roomIndex int, mutate func(*entities.RoomLineItem)) (entities.Record, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return entities.Record{}, ErrInvalidEstimateNumber
	}

	openJobs, err := u.records.GetBucket(ctx, entities.BucketOpenJobs)
	if err != nil {
		return entities.Record{}, err
	}
	idx := entities.IndexByNumber(openJobs, number)
	if idx < 0 {
		return entities.Record{}, ErrRecordNotFound
	}
	if roomIndex < 0 || roomIndex >= len(openJobs[idx].Rooms) {
		return entities.Record{}, ErrRoomIndexOutOfRange
	}

	mutate(&openJobs[idx].Rooms[roomIndex])

	if err := u.records.PutBucket(ctx, entities.BucketOpenJobs, openJobs); err != nil {
		return entities.Record{}, err
	}
	return openJobs[idx], nil
}

func isProgressOption(option string) bool {
	for _, known := range entities.ProgressOptions() {
		if known == option {
			return true
		}
	}
	return false
}
