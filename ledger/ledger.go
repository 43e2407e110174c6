package ledger

import (
	"context"
	"errors"

	"clinic-ledger/models"
)

var (
	// ErrNotFound is returned when no record exists for the given id.
	ErrNotFound = errors.New("appointment not found")
	// ErrAlreadyConfirmed is returned when Confirm targets a record that
	// has already been confirmed. Confirm never resubmits a write for it.
	ErrAlreadyConfirmed = errors.New("appointment already confirmed")
)

// Ledger is the append-only record store holding appointments. Ids are
// assigned by the store, start at 1 and increase by one per Create.
// Records are never deleted; the only permitted mutation is a one-time
// confirmed false -> true flip via Confirm.
//
// The service layer only ever talks to this interface, so a different
// backend (including an actual on-chain contract client) can be swapped
// in without touching the service.
type Ledger interface {
	Create(ctx context.Context, patientName, doctorName, date string) (*models.Appointment, error)
	Get(ctx context.Context, id uint) (*models.Appointment, error)
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context) ([]models.Appointment, error)
	Confirm(ctx context.Context, id uint) error
}
