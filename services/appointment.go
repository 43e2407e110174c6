package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"clinic-ledger/ledger"
	"clinic-ledger/models"
	"clinic-ledger/utils"
)

// ErrMissingFields is returned by Create when any of the three required
// fields is empty.
var ErrMissingFields = errors.New("patientName, doctorName and date are required")

const (
	listCacheKey = "appointments:all"
	listCacheTTL = 30 * time.Second
)

// AppointmentService orchestrates the appointment ledger: it validates
// requests, drives the ledger, and produces role-scoped views of the
// record list. It holds no appointment state of its own.
type AppointmentService struct {
	ledger ledger.Ledger
	cache  *redis.Client
}

// NewAppointmentService wires the service to a ledger backend. cache may
// be nil; every cache failure falls back to a ledger read.
func NewAppointmentService(l ledger.Ledger, cache *redis.Client) *AppointmentService {
	return &AppointmentService{ledger: l, cache: cache}
}

// Create appends a new pending appointment. All three fields must be
// non-empty; the ledger assigns the id.
func (s *AppointmentService) Create(ctx context.Context, patientName, doctorName, date string) (*models.Appointment, error) {
	if strings.TrimSpace(patientName) == "" ||
		strings.TrimSpace(doctorName) == "" ||
		strings.TrimSpace(date) == "" {
		return nil, ErrMissingFields
	}

	appointment, err := s.ledger.Create(ctx, patientName, doctorName, date)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return appointment, nil
}

// List returns every appointment on the ledger in id order.
func (s *AppointmentService) List(ctx context.Context) ([]models.Appointment, error) {
	if cached, ok := s.fromCache(ctx); ok {
		return cached, nil
	}

	appointments, err := s.ledger.List(ctx)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, appointments)
	return appointments, nil
}

// ListFor returns the appointments visible to the given identity: patients
// see their own rows, doctors see rows addressed to them under the
// normalized-name match, admins see everything.
func (s *AppointmentService) ListFor(ctx context.Context, name, role string) ([]models.Appointment, error) {
	appointments, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if role == models.RoleAdmin {
		return appointments, nil
	}

	filtered := make([]models.Appointment, 0, len(appointments))
	for _, a := range appointments {
		switch role {
		case models.RoleDoctor:
			if utils.SameDoctor(a.DoctorName, name) {
				filtered = append(filtered, a)
			}
		default:
			if utils.SamePatient(a.PatientName, name) {
				filtered = append(filtered, a)
			}
		}
	}
	return filtered, nil
}

// Confirm flips a pending appointment to confirmed. ledger.ErrNotFound and
// ledger.ErrAlreadyConfirmed pass through for the caller to map.
func (s *AppointmentService) Confirm(ctx context.Context, id uint) error {
	if err := s.ledger.Confirm(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *AppointmentService) fromCache(ctx context.Context) ([]models.Appointment, bool) {
	if s.cache == nil {
		return nil, false
	}
	payload, err := s.cache.Get(ctx, listCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var appointments []models.Appointment
	if err := json.Unmarshal(payload, &appointments); err != nil {
		return nil, false
	}
	return appointments, true
}

func (s *AppointmentService) toCache(ctx context.Context, appointments []models.Appointment) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(appointments)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, listCacheKey, payload, listCacheTTL).Err(); err != nil {
		log.Printf("cache set failed: %v", err)
	}
}

func (s *AppointmentService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, listCacheKey).Err(); err != nil {
		log.Printf("cache invalidate failed: %v", err)
	}
}
