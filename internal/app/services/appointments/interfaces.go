package appointments

import (
	"context"
	"time"

	"openwindows-service/internal/app/models"
)

type AppointmentStoreClient interface {
	FindUpcomingByPatientID(ctx context.Context, accessToken, patientID string, after time.Time, limit int) ([]models.Appointment, error)
}

type AppointmentUsecase interface {
	ListUpcomingAppointments(ctx context.Context, session *models.Session, limit int) ([]models.Appointment, error)
}
