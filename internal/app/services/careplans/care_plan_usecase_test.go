package careplans

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

type fakeCarePlanStore struct {
	carePlan *models.CarePlan
	goals    []models.CarePlanGoal
	planErr  error
	goalsErr error
}

func (f *fakeCarePlanStore) FindByPatientID(ctx context.Context, accessToken, patientID string) (*models.CarePlan, error) {
	if f.planErr != nil {
		return nil, f.planErr
	}
	copied := *f.carePlan
	return &copied, nil
}

func (f *fakeCarePlanStore) FindGoalsByCarePlanID(ctx context.Context, accessToken, carePlanID string) ([]models.CarePlanGoal, error) {
	if f.goalsErr != nil {
		return nil, f.goalsErr
	}
	return f.goals, nil
}

func carePlanTestSession() *models.Session {
	return &models.Session{
		SessionID:  "session-1",
		StoreToken: fixtures.AccessToken,
		Patient:    &models.Patient{ID: fixtures.PatientID},
	}
}

func TestCarePlanUsecaseGetCarePlan(t *testing.T) {
	t.Run("goals are split by category", func(t *testing.T) {
		store := &fakeCarePlanStore{
			carePlan: &models.CarePlan{ID: "plan-1", PatientID: fixtures.PatientID, Status: "active"},
			goals: []models.CarePlanGoal{
				{ID: "goal-1", Goal: "Pain under control", Category: models.GoalCategoryComfort, Status: models.GoalStatusAchieved},
				{ID: "goal-2", Goal: "Stable weight", Category: models.GoalCategoryMedical, Status: models.GoalStatusInProgress},
				{ID: "goal-3", Goal: "Sleep through the night", Category: models.GoalCategoryComfort, Status: models.GoalStatusInProgress},
			},
		}
		usecase := NewCarePlanUsecase(store, zap.NewNop())

		carePlan, err := usecase.GetCarePlan(context.Background(), carePlanTestSession())

		require.NoError(t, err)
		require.Len(t, carePlan.ComfortGoals, 2)
		require.Len(t, carePlan.MedicalGoals, 1)
		assert.Equal(t, "goal-1", carePlan.ComfortGoals[0].ID)
		assert.Equal(t, "goal-2", carePlan.MedicalGoals[0].ID)
	})

	t.Run("uncategorized goals land with the comfort goals", func(t *testing.T) {
		store := &fakeCarePlanStore{
			carePlan: &models.CarePlan{ID: "plan-1", PatientID: fixtures.PatientID},
			goals: []models.CarePlanGoal{
				{ID: "goal-1", Goal: "Pain under control", Category: "", Status: models.GoalStatusInProgress},
			},
		}
		usecase := NewCarePlanUsecase(store, zap.NewNop())

		carePlan, err := usecase.GetCarePlan(context.Background(), carePlanTestSession())

		require.NoError(t, err)
		assert.Len(t, carePlan.ComfortGoals, 1)
		assert.Empty(t, carePlan.MedicalGoals)
	})

	t.Run("plan without goals keeps empty non-nil slices", func(t *testing.T) {
		store := &fakeCarePlanStore{
			carePlan: &models.CarePlan{ID: "plan-1", PatientID: fixtures.PatientID},
			goals:    []models.CarePlanGoal{},
		}
		usecase := NewCarePlanUsecase(store, zap.NewNop())

		carePlan, err := usecase.GetCarePlan(context.Background(), carePlanTestSession())

		require.NoError(t, err)
		assert.NotNil(t, carePlan.ComfortGoals)
		assert.NotNil(t, carePlan.MedicalGoals)
	})

	t.Run("session without a profile answers not found", func(t *testing.T) {
		usecase := NewCarePlanUsecase(&fakeCarePlanStore{}, zap.NewNop())
		session := carePlanTestSession()
		session.Patient = nil

		_, err := usecase.GetCarePlan(context.Background(), session)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("missing plan row surfaces not found", func(t *testing.T) {
		store := &fakeCarePlanStore{
			planErr: exceptions.ErrStoreRowNotFound(nil, constvars.CollectionCarePlans, constvars.ResourceLabelCarePlan),
		}
		usecase := NewCarePlanUsecase(store, zap.NewNop())

		_, err := usecase.GetCarePlan(context.Background(), carePlanTestSession())

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("goal fetch failure fails the plan", func(t *testing.T) {
		store := &fakeCarePlanStore{
			carePlan: &models.CarePlan{ID: "plan-1", PatientID: fixtures.PatientID},
			goalsErr: exceptions.ErrStoreSelectRows(nil, constvars.CollectionCareGoals, constvars.ResourceLabelCarePlan),
		}
		usecase := NewCarePlanUsecase(store, zap.NewNop())

		_, err := usecase.GetCarePlan(context.Background(), carePlanTestSession())
		assert.Error(t, err)
	})
}
