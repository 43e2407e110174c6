package ledger

import (
	"context"
	"sync"
	"time"

	"clinic-ledger/models"
)

type memoryLedger struct {
	mu      sync.Mutex
	records []models.Appointment
}

// NewMemoryLedger returns an in-process Ledger. It keeps the same
// append-only contract as the database backend and is used by tests and
// as a storage-free dev mode.
func NewMemoryLedger() Ledger {
	return &memoryLedger{}
}

func (l *memoryLedger) Create(ctx context.Context, patientName, doctorName, date string) (*models.Appointment, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	appointment := models.Appointment{
		ID:          uint(len(l.records) + 1),
		PatientName: patientName,
		DoctorName:  doctorName,
		Date:        date,
		Confirmed:   false,
		CreatedAt:   time.Now(),
	}
	l.records = append(l.records, appointment)
	return &appointment, nil
}

func (l *memoryLedger) Get(ctx context.Context, id uint) (*models.Appointment, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if id == 0 || int(id) > len(l.records) {
		return nil, ErrNotFound
	}
	appointment := l.records[id-1]
	return &appointment, nil
}

func (l *memoryLedger) Count(ctx context.Context) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return int64(len(l.records)), nil
}

func (l *memoryLedger) List(ctx context.Context) ([]models.Appointment, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.Appointment, len(l.records))
	copy(out, l.records)
	return out, nil
}

func (l *memoryLedger) Confirm(ctx context.Context, id uint) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if id == 0 || int(id) > len(l.records) {
		return ErrNotFound
	}
	if l.records[id-1].Confirmed {
		return ErrAlreadyConfirmed
	}
	l.records[id-1].Confirmed = true
	return nil
}
