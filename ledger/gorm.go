package ledger

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"clinic-ledger/models"
)

type gormLedger struct {
	db *gorm.DB
}

// NewGormLedger returns a Ledger backed by the relational database.
func NewGormLedger(db *gorm.DB) Ledger {
	return &gormLedger{db: db}
}

func (l *gormLedger) Create(ctx context.Context, patientName, doctorName, date string) (*models.Appointment, error) {
	appointment := models.Appointment{
		PatientName: patientName,
		DoctorName:  doctorName,
		Date:        date,
	}
	if err := l.db.WithContext(ctx).Create(&appointment).Error; err != nil {
		return nil, fmt.Errorf("ledger: create appointment: %w", err)
	}
	return &appointment, nil
}

func (l *gormLedger) Get(ctx context.Context, id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := l.db.WithContext(ctx).First(&appointment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ledger: get appointment %d: %w", id, err)
	}
	return &appointment, nil
}

func (l *gormLedger) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := l.db.WithContext(ctx).Model(&models.Appointment{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("ledger: count appointments: %w", err)
	}
	return count, nil
}

// List reads every record in a single query, ordered by id. The per-id
// read loop the old backend needed is gone on purpose.
func (l *gormLedger) List(ctx context.Context) ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := l.db.WithContext(ctx).Order("id asc").Find(&appointments).Error; err != nil {
		return nil, fmt.Errorf("ledger: list appointments: %w", err)
	}
	return appointments, nil
}

func (l *gormLedger) Confirm(ctx context.Context, id uint) error {
	res := l.db.WithContext(ctx).Model(&models.Appointment{}).
		Where("id = ? AND confirmed = ?", id, false).
		Update("confirmed", true)
	if res.Error != nil {
		return fmt.Errorf("ledger: confirm appointment %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		// Either the id does not exist or it was confirmed earlier.
		if _, err := l.Get(ctx, id); err != nil {
			return err
		}
		return ErrAlreadyConfirmed
	}
	return nil
}
