package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"clinic-ledger/models"
)

type memoryUsers struct {
	mu     sync.Mutex
	nextID uint
	users  []models.User
}

// NewMemoryUsers returns an in-process Users store for tests and the
// storage-free dev mode.
func NewMemoryUsers() Users {
	return &memoryUsers{nextID: 1}
}

func (s *memoryUsers) Create(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return ErrDuplicateEmail
		}
	}
	user.ID = s.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	s.nextID++
	s.users = append(s.users, *user)
	return nil
}

func (s *memoryUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

func (s *memoryUsers) FindByID(ctx context.Context, id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

func (s *memoryUsers) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.User
	for _, u := range s.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

type memoryDoctors struct {
	mu      sync.Mutex
	doctors []models.Doctor
}

// NewMemoryDoctors returns an in-process doctor catalog pre-filled with
// the given entries.
func NewMemoryDoctors(doctors []models.Doctor) Doctors {
	return &memoryDoctors{doctors: doctors}
}

func (s *memoryDoctors) All(ctx context.Context) ([]models.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Doctor, len(s.doctors))
	copy(out, s.doctors)
	return out, nil
}
