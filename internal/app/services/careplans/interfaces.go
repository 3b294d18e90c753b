package careplans

import (
	"context"

	"openwindows-service/internal/app/models"
)

type CarePlanStoreClient interface {
	FindByPatientID(ctx context.Context, accessToken, patientID string) (*models.CarePlan, error)
	FindGoalsByCarePlanID(ctx context.Context, accessToken, carePlanID string) ([]models.CarePlanGoal, error)
}

type CarePlanUsecase interface {
	GetCarePlan(ctx context.Context, session *models.Session) (*models.CarePlan, error)
}
