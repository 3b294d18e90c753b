package medications

import (
	"context"
	"testing"

	"openwindows-service/internal/app/models"
	"openwindows-service/internal/pkg/constvars"
	"openwindows-service/internal/pkg/exceptions"
	"openwindows-service/internal/pkg/fixtures"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeMedicationStore struct {
	medications []models.Medication
	err         error
}

func (f *fakeMedicationStore) FindByPatientID(ctx context.Context, accessToken, patientID string) ([]models.Medication, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Medication, len(f.medications))
	copy(out, f.medications)
	return out, nil
}

func medicationTestSession() *models.Session {
	return &models.Session{
		SessionID:  "session-1",
		StoreToken: fixtures.AccessToken,
		Patient:    &models.Patient{ID: fixtures.PatientID},
	}
}

func storedMedications() []models.Medication {
	return []models.Medication{
		{ID: "med-001", Name: "Furosemide", Frequency: "Once daily in the morning"},
		{ID: "med-002", Name: "Morphine Sulfate", Frequency: "Every 4 hours as needed for pain"},
		{ID: "med-003", Name: "Metoprolol", Frequency: "Twice daily, morning and evening"},
	}
}

func TestMedicationUsecaseListMedications(t *testing.T) {
	t.Run("time of day is derived for every row", func(t *testing.T) {
		usecase := NewMedicationUsecase(&fakeMedicationStore{medications: storedMedications()}, zap.NewNop())

		medicationList, err := usecase.ListMedications(context.Background(), medicationTestSession())

		require.NoError(t, err)
		require.Len(t, medicationList, 3)
		assert.Equal(t, constvars.TimeOfDayMorning, medicationList[0].TimeOfDay)
		assert.Equal(t, constvars.TimeOfDayAsNeeded, medicationList[1].TimeOfDay)
		assert.Equal(t, constvars.TimeOfDayMorning, medicationList[2].TimeOfDay)
	})

	t.Run("session without a profile gets an empty list", func(t *testing.T) {
		usecase := NewMedicationUsecase(&fakeMedicationStore{medications: storedMedications()}, zap.NewNop())
		session := medicationTestSession()
		session.Patient = nil

		medicationList, err := usecase.ListMedications(context.Background(), session)

		require.NoError(t, err)
		assert.Empty(t, medicationList)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		storeErr := exceptions.ErrStoreSelectRows(nil, constvars.CollectionMedications, constvars.ResourceLabelMedications)
		usecase := NewMedicationUsecase(&fakeMedicationStore{err: storeErr}, zap.NewNop())

		_, err := usecase.ListMedications(context.Background(), medicationTestSession())
		assert.Error(t, err)
	})
}

func TestMedicationUsecaseGetMedicationByID(t *testing.T) {
	usecase := NewMedicationUsecase(&fakeMedicationStore{medications: storedMedications()}, zap.NewNop())

	t.Run("known id returns the normalized row", func(t *testing.T) {
		medication, err := usecase.GetMedicationByID(context.Background(), medicationTestSession(), "med-002")

		require.NoError(t, err)
		assert.Equal(t, "Morphine Sulfate", medication.Name)
		assert.Equal(t, constvars.TimeOfDayAsNeeded, medication.TimeOfDay)
	})

	t.Run("unknown id answers not found", func(t *testing.T) {
		_, err := usecase.GetMedicationByID(context.Background(), medicationTestSession(), "med-999")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("session without a profile answers not found", func(t *testing.T) {
		session := medicationTestSession()
		session.Patient = nil

		_, err := usecase.GetMedicationByID(context.Background(), session, "med-001")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}
