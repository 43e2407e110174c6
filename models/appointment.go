package models

import (
	"time"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
)

// Appointment is a single record on the appointment ledger. The id is
// assigned by the ledger, starts at 1 and never changes; confirmed is the
// only mutable field and only ever flips false -> true.
type Appointment struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	PatientName string    `json:"patientName"`
	DoctorName  string    `json:"doctorName"`
	Date        string    `json:"date"` // opaque "YYYY-MM-DD HH:MM"
	Confirmed   bool      `json:"confirmed"`
	CreatedAt   time.Time `json:"created_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	a.Confirmed = false
	return nil
}

// Status maps the confirmed flag onto the two lifecycle states.
func (a *Appointment) Status() AppointmentStatus {
	if a.Confirmed {
		return StatusConfirmed
	}
	return StatusPending
}
