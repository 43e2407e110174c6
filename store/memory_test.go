package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-ledger/models"
)

func TestMemoryUsersDuplicateEmailCaseInsensitive(t *testing.T) {
	users := NewMemoryUsers()
	ctx := context.Background()

	first := &models.User{Name: "Abdullah", Email: "a@x.com", Password: "pw1", Role: models.RolePatient}
	require.NoError(t, users.Create(ctx, first))
	assert.NotZero(t, first.ID)

	second := &models.User{Name: "Other", Email: "A@X.COM", Password: "pw2", Role: models.RolePatient}
	assert.ErrorIs(t, users.Create(ctx, second), ErrDuplicateEmail)
}

func TestMemoryUsersFindByEmailCaseInsensitive(t *testing.T) {
	users := NewMemoryUsers()
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, &models.User{Name: "Abdullah", Email: "Abdullah@example.com", Role: models.RolePatient}))

	found, err := users.FindByEmail(ctx, "abdullah@EXAMPLE.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Abdullah", found.Name)

	missing, err := users.FindByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryUsersListByRole(t *testing.T) {
	users := NewMemoryUsers()
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, &models.User{Name: "Dr. Sarah", Email: "sarah@clinic.com", Role: models.RoleDoctor}))
	require.NoError(t, users.Create(ctx, &models.User{Name: "Abdullah", Email: "a@x.com", Role: models.RolePatient}))

	doctors, err := users.ListByRole(ctx, models.RoleDoctor)
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, "Dr. Sarah", doctors[0].Name)
}

func TestMemoryDoctorsAll(t *testing.T) {
	catalog := NewMemoryDoctors([]models.Doctor{
		{Name: "Dr. Ahmed", Specialty: "Dentist", Slots: models.SlotList{"09:00"}},
	})

	doctors, err := catalog.All(context.Background())
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, "Dentist", doctors[0].Specialty)
}
