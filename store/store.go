package store

import (
	"context"
	"errors"

	"clinic-ledger/models"
)

// ErrDuplicateEmail is returned by Users.Create when another user already
// holds the email, compared case-insensitively.
var ErrDuplicateEmail = errors.New("email already exists")

// Users is the identity store. There is deliberately no update or delete:
// accounts are created once and live for the lifetime of the data.
type Users interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
	ListByRole(ctx context.Context, role string) ([]models.User, error)
}

// Doctors serves the bookable doctor/slot catalog.
type Doctors interface {
	All(ctx context.Context) ([]models.Doctor, error)
}
