package appointments

import (
	"context"
	"testing"
	"time"

	"openwindows-service/internal/app/models"
	"openwindows-service/internal/pkg/constvars"
	"openwindows-service/internal/pkg/exceptions"
	"openwindows-service/internal/pkg/fixtures"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAppointmentStore struct {
	appointments []models.Appointment
	err          error

	gotAfter time.Time
	gotLimit int
}

func (f *fakeAppointmentStore) FindUpcomingByPatientID(ctx context.Context, accessToken, patientID string, after time.Time, limit int) ([]models.Appointment, error) {
	f.gotAfter = after
	f.gotLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.appointments, nil
}

func appointmentTestSession() *models.Session {
	return &models.Session{
		SessionID:  "session-1",
		StoreToken: fixtures.AccessToken,
		Patient:    &models.Patient{ID: fixtures.PatientID},
	}
}

func TestAppointmentUsecaseListUpcomingAppointments(t *testing.T) {
	t.Run("store is queried from now with the given limit", func(t *testing.T) {
		store := &fakeAppointmentStore{
			appointments: []models.Appointment{
				{ID: "appt-1", PatientID: fixtures.PatientID, Type: "Nurse visit", ScheduledAt: time.Now().Add(24 * time.Hour)},
			},
		}
		usecase := NewAppointmentUsecase(store, zap.NewNop())
		before := time.Now()

		upcoming, err := usecase.ListUpcomingAppointments(context.Background(), appointmentTestSession(), 3)

		require.NoError(t, err)
		require.Len(t, upcoming, 1)
		assert.Equal(t, 3, store.gotLimit)
		assert.False(t, store.gotAfter.Before(before))
	})

	t.Run("session without a profile gets an empty list", func(t *testing.T) {
		usecase := NewAppointmentUsecase(&fakeAppointmentStore{}, zap.NewNop())
		session := appointmentTestSession()
		session.Patient = nil

		upcoming, err := usecase.ListUpcomingAppointments(context.Background(), session, 0)

		require.NoError(t, err)
		assert.Empty(t, upcoming)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		storeErr := exceptions.ErrStoreSelectRows(nil, constvars.CollectionAppointments, constvars.ResourceLabelAppointments)
		usecase := NewAppointmentUsecase(&fakeAppointmentStore{err: storeErr}, zap.NewNop())

		_, err := usecase.ListUpcomingAppointments(context.Background(), appointmentTestSession(), 0)
		assert.Error(t, err)
	})
}
