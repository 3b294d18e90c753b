package medications

import (
	"context"

	"openwindows-service/internal/app/models"
)

type MedicationStoreClient interface {
	FindByPatientID(ctx context.Context, accessToken, patientID string) ([]models.Medication, error)
}

type MedicationUsecase interface {
	ListMedications(ctx context.Context, session *models.Session) ([]models.Medication, error)
	GetMedicationByID(ctx context.Context, session *models.Session, medicationID string) (*models.Medication, error)
}
