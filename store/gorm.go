package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"clinic-ledger/models"
)

type gormUsers struct {
	db *gorm.DB
}

// NewGormUsers returns a Users store backed by the relational database.
// The users table carries a unique index on email; the case-insensitive
// duplicate check happens here before the insert.
func NewGormUsers(db *gorm.DB) Users {
	return &gormUsers{db: db}
}

func (s *gormUsers) Create(ctx context.Context, user *models.User) error {
	existing, err := s.FindByEmail(ctx, user.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrDuplicateEmail
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// FindByEmail matches case-insensitively and returns (nil, nil) when no
// user exists; the caller decides whether that is an error.
func (s *gormUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

func (s *gormUsers) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &user, nil
}

func (s *gormUsers) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Where("role = ?", role).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users by role: %w", err)
	}
	return users, nil
}

type gormDoctors struct {
	db *gorm.DB
}

// NewGormDoctors returns the doctor catalog backed by the database.
func NewGormDoctors(db *gorm.DB) Doctors {
	return &gormDoctors{db: db}
}

func (s *gormDoctors) All(ctx context.Context) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := s.db.WithContext(ctx).Order("id asc").Find(&doctors).Error; err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	return doctors, nil
}
