package careplans

import (
	"context"

	"openwindows-service/internal/app/models"
	"openwindows-service/internal/pkg/constvars"
	"openwindows-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type carePlanUsecase struct {
	CarePlanStoreClient CarePlanStoreClient
	Log                 *zap.Logger
}

func NewCarePlanUsecase(carePlanStoreClient CarePlanStoreClient, logger *zap.Logger) CarePlanUsecase {
	return &carePlanUsecase{
		CarePlanStoreClient: carePlanStoreClient,
		Log:                 logger,
	}
}

func (uc *carePlanUsecase) GetCarePlan(ctx context.Context, session *models.Session) (*models.CarePlan, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if session.Patient == nil {
		return nil, exceptions.ErrStoreRowNotFound(nil, constvars.CollectionCarePlans, constvars.ResourceLabelCarePlan)
	}

	carePlan, err := uc.CarePlanStoreClient.FindByPatientID(ctx, session.StoreToken, session.Patient.ID)
	if err != nil {
		return nil, err
	}

	goals, err := uc.CarePlanStoreClient.FindGoalsByCarePlanID(ctx, session.StoreToken, carePlan.ID)
	if err != nil {
		return nil, err
	}

	carePlan.ComfortGoals = make([]models.CarePlanGoal, 0)
	carePlan.MedicalGoals = make([]models.CarePlanGoal, 0)
	for _, goal := range goals {
		if goal.Category == models.GoalCategoryMedical {
			carePlan.MedicalGoals = append(carePlan.MedicalGoals, goal)
		} else {
			carePlan.ComfortGoals = append(carePlan.ComfortGoals, goal)
		}
	}

	uc.Log.Info("carePlanUsecase.GetCarePlan fetched",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, session.Patient.ID),
		zap.Int(constvars.LoggingCountKey, len(goals)),
	)
	return carePlan, nil
}
