package medications

import (
	"context"

	"openwindows-service/internal/app/models"
	"openwindows-service/internal/pkg/constvars"
	"openwindows-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type medicationUsecase struct {
	MedicationStoreClient MedicationStoreClient
	Log                   *zap.Logger
}

func NewMedicationUsecase(medicationStoreClient MedicationStoreClient, logger *zap.Logger) MedicationUsecase {
	return &medicationUsecase{
		MedicationStoreClient: medicationStoreClient,
		Log:                   logger,
	}
}

func (uc *medicationUsecase) ListMedications(ctx context.Context, session *models.Session) ([]models.Medication, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	// No linked profile means no rows to fetch; the list renders empty.
	if session.Patient == nil {
		return []models.Medication{}, nil
	}

	medications, err := uc.MedicationStoreClient.FindByPatientID(ctx, session.StoreToken, session.Patient.ID)
	if err != nil {
		return nil, err
	}

	for i := range medications {
		medications[i].TimeOfDay = TimeOfDayFromFrequency(medications[i].Frequency)
	}

	uc.Log.Info("medicationUsecase.ListMedications fetched",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, session.Patient.ID),
		zap.Int(constvars.LoggingCountKey, len(medications)),
	)
	return medications, nil
}

func (uc *medicationUsecase) GetMedicationByID(ctx context.Context, session *models.Session, medicationID string) (*models.Medication, error) {
	medications, err := uc.ListMedications(ctx, session)
	if err != nil {
		return nil, err
	}

	for i := range medications {
		if medications[i].ID == medicationID {
			return &medications[i], nil
		}
	}
	return nil, exceptions.ErrStoreRowNotFound(nil, constvars.CollectionMedications, constvars.ResourceLabelMedication)
}
