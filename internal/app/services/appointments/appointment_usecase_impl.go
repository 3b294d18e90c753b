package appointments

import (
	"context"
	"time"

	"openwindows-service/internal/app/models"
	"openwindows-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentStoreClient AppointmentStoreClient
	Log                    *zap.Logger
}

func NewAppointmentUsecase(appointmentStoreClient AppointmentStoreClient, logger *zap.Logger) AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentStoreClient: appointmentStoreClient,
		Log:                    logger,
	}
}

func (uc *appointmentUsecase) ListUpcomingAppointments(ctx context.Context, session *models.Session, limit int) ([]models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if session.Patient == nil {
		return []models.Appointment{}, nil
	}

	appointments, err := uc.AppointmentStoreClient.FindUpcomingByPatientID(ctx, session.StoreToken, session.Patient.ID, time.Now(), limit)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.ListUpcomingAppointments fetched",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, session.Patient.ID),
		zap.Int(constvars.LoggingCountKey, len(appointments)),
	)
	return appointments, nil
}
