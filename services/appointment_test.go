package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-ledger/ledger"
	"clinic-ledger/models"
)

func newService() *AppointmentService {
	return NewAppointmentService(ledger.NewMemoryLedger(), nil)
}

func TestCreateRequiresAllFields(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	cases := [][3]string{
		{"", "Dr. Ahmed", "2024-01-01 09:00"},
		{"Abdullah", "", "2024-01-01 09:00"},
		{"Abdullah", "Dr. Ahmed", ""},
		{"   ", "Dr. Ahmed", "2024-01-01 09:00"},
	}
	for _, tc := range cases {
		_, err := svc.Create(ctx, tc[0], tc[1], tc[2])
		assert.ErrorIs(t, err, ErrMissingFields)
	}

	count, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, count)
}

func TestCreateThenListShowsPendingRecord(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "Abdullah", "Dr. Ahmed", "2024-01-01 09:00")
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)

	appointments, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.Equal(t, "Abdullah", appointments[0].PatientName)
	assert.Equal(t, "Dr. Ahmed", appointments[0].DoctorName)
	assert.Equal(t, "2024-01-01 09:00", appointments[0].Date)
	assert.False(t, appointments[0].Confirmed)
	assert.Equal(t, models.StatusPending, appointments[0].Status())
}

func TestListForFiltersByRole(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Create(ctx, "Abdullah", "Dr. Ahmed", "2024-01-01 09:00")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "Fatima", "Dr. Sarah", "2024-01-02 10:00")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "Abdullah", "dr.ahmed", "2024-01-03 11:00")
	require.NoError(t, err)

	// Doctor sees every spelling variant of their own name, nothing else.
	forAhmed, err := svc.ListFor(ctx, "Dr. Ahmed", models.RoleDoctor)
	require.NoError(t, err)
	assert.Len(t, forAhmed, 2)

	// "Ahmed Khan" is a different doctor despite the shared first name.
	forKhan, err := svc.ListFor(ctx, "Ahmed Khan", models.RoleDoctor)
	require.NoError(t, err)
	assert.Empty(t, forKhan)

	forAbdullah, err := svc.ListFor(ctx, " abdullah ", models.RolePatient)
	require.NoError(t, err)
	assert.Len(t, forAbdullah, 2)

	all, err := svc.ListFor(ctx, "Admin", models.RoleAdmin)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestConfirmPassesThroughLedgerOutcomes(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "Abdullah", "Dr. Ahmed", "2024-01-01 09:00")
	require.NoError(t, err)

	require.NoError(t, svc.Confirm(ctx, created.ID))

	appointments, err := svc.List(ctx)
	require.NoError(t, err)
	assert.True(t, appointments[0].Confirmed)
	assert.Equal(t, models.StatusConfirmed, appointments[0].Status())

	assert.ErrorIs(t, svc.Confirm(ctx, created.ID), ledger.ErrAlreadyConfirmed)
	assert.ErrorIs(t, svc.Confirm(ctx, 999), ledger.ErrNotFound)
}
