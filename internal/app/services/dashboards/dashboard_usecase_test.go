package dashboards

import (
	"context"
	"testing"
	"time"

	"openwindows-service/internal/app/config"
	"openwindows-service/internal/app/models"
	"openwindows-service/internal/pkg/constvars"
	"openwindows-service/internal/pkg/dto/requests"
	"openwindows-service/internal/pkg/exceptions"
	"openwindows-service/internal/pkg/fixtures"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAppointmentUsecase struct {
	appointments []models.Appointment
	err          error
}

func (f *fakeAppointmentUsecase) ListUpcomingAppointments(ctx context.Context, session *models.Session, limit int) ([]models.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit > 0 && len(f.appointments) > limit {
		return f.appointments[:limit], nil
	}
	return f.appointments, nil
}

type fakeMedicationUsecase struct {
	medications []models.Medication
	err         error
}

func (f *fakeMedicationUsecase) ListMedications(ctx context.Context, session *models.Session) ([]models.Medication, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.medications, nil
}

func (f *fakeMedicationUsecase) GetMedicationByID(ctx context.Context, session *models.Session, medicationID string) (*models.Medication, error) {
	return nil, exceptions.ErrStoreRowNotFound(nil, constvars.CollectionMedications, constvars.ResourceLabelMedication)
}

type fakeMessageCounter struct {
	unread int
	err    error
}

func (f *fakeMessageCounter) ListMessages(ctx context.Context, session *models.Session) ([]models.Message, error) {
	return []models.Message{}, nil
}

func (f *fakeMessageCounter) MarkIncomingAsRead(ctx context.Context, session *models.Session) ([]models.Message, error) {
	return []models.Message{}, nil
}

func (f *fakeMessageCounter) SendMessage(ctx context.Context, session *models.Session, request *requests.SendMessage) (*models.Message, error) {
	return nil, nil
}

func (f *fakeMessageCounter) CountUnread(ctx context.Context, session *models.Session) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.unread, nil
}

type fakeCarePlanUsecase struct {
	carePlan *models.CarePlan
	err      error
}

func (f *fakeCarePlanUsecase) GetCarePlan(ctx context.Context, session *models.Session) (*models.CarePlan, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.carePlan, nil
}

func dashboardTestConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{DashboardWidgetTimeoutInSeconds: 5},
	}
}

func dashboardTestSession() *models.Session {
	return &models.Session{
		SessionID:  "session-1",
		IdentityID: fixtures.IdentityID,
		StoreToken: fixtures.AccessToken,
		Patient:    &models.Patient{ID: fixtures.PatientID, FirstName: "Margaret", LastName: "Chen"},
	}
}

func testCarePlan() *models.CarePlan {
	return &models.CarePlan{
		ID:        "plan-1",
		PatientID: fixtures.PatientID,
		Status:    "active",
		ComfortGoals: []models.CarePlanGoal{
			{ID: "goal-1", Goal: "Pain under control", Category: models.GoalCategoryComfort, Status: models.GoalStatusAchieved},
			{ID: "goal-2", Goal: "Sleep through the night", Category: models.GoalCategoryComfort, Status: models.GoalStatusInProgress},
		},
		MedicalGoals: []models.CarePlanGoal{
			{ID: "goal-3", Goal: "Stable weight", Category: models.GoalCategoryMedical, Status: models.GoalStatusAchieved},
		},
	}
}

func TestDashboardUsecaseGetDashboard(t *testing.T) {
	appointmentList := []models.Appointment{
		{ID: "appt-1", PatientID: fixtures.PatientID, Type: "Nurse visit", ScheduledAt: time.Now().Add(24 * time.Hour)},
		{ID: "appt-2", PatientID: fixtures.PatientID, Type: "Chaplain visit", ScheduledAt: time.Now().Add(72 * time.Hour)},
	}
	medicationList := []models.Medication{{ID: "med-1"}, {ID: "med-2"}, {ID: "med-3"}}

	t.Run("all widgets land on a healthy dashboard", func(t *testing.T) {
		usecase := NewDashboardUsecase(
			&fakeAppointmentUsecase{appointments: appointmentList},
			&fakeMedicationUsecase{medications: medicationList},
			&fakeMessageCounter{unread: 2},
			&fakeCarePlanUsecase{carePlan: testCarePlan()},
			dashboardTestConfig(),
			zap.NewNop(),
		)

		dashboard, err := usecase.GetDashboard(context.Background(), dashboardTestSession())

		require.NoError(t, err)
		assert.Empty(t, dashboard.UnavailableWidgets)

		require.NotNil(t, dashboard.NextAppointment)
		assert.Equal(t, "appt-1", dashboard.NextAppointment.ID)
		assert.Len(t, dashboard.UpcomingAppointments, 2)

		require.NotNil(t, dashboard.MedicationCount)
		assert.Equal(t, 3, *dashboard.MedicationCount)

		require.NotNil(t, dashboard.UnreadMessageCount)
		assert.Equal(t, 2, *dashboard.UnreadMessageCount)

		require.NotNil(t, dashboard.CarePlanSummary)
		assert.Equal(t, "active", dashboard.CarePlanSummary.Status)
		assert.Equal(t, 2, dashboard.CarePlanSummary.GoalsAchieved)
		assert.Equal(t, 3, dashboard.CarePlanSummary.GoalsTotal)
	})

	t.Run("one failed widget leaves the rest standing", func(t *testing.T) {
		usecase := NewDashboardUsecase(
			&fakeAppointmentUsecase{appointments: appointmentList},
			&fakeMedicationUsecase{err: exceptions.ErrStoreSelectRows(nil, constvars.CollectionMedications, constvars.ResourceLabelMedications)},
			&fakeMessageCounter{unread: 2},
			&fakeCarePlanUsecase{carePlan: testCarePlan()},
			dashboardTestConfig(),
			zap.NewNop(),
		)

		dashboard, err := usecase.GetDashboard(context.Background(), dashboardTestSession())

		require.NoError(t, err)
		assert.Equal(t, []string{constvars.ResourceLabelMedications}, dashboard.UnavailableWidgets)
		assert.Nil(t, dashboard.MedicationCount)

		require.NotNil(t, dashboard.NextAppointment)
		require.NotNil(t, dashboard.UnreadMessageCount)
		require.NotNil(t, dashboard.CarePlanSummary)
	})

	t.Run("every widget failing still returns a dashboard", func(t *testing.T) {
		widgetErr := exceptions.ErrSendHTTPRequest(nil)
		usecase := NewDashboardUsecase(
			&fakeAppointmentUsecase{err: widgetErr},
			&fakeMedicationUsecase{err: widgetErr},
			&fakeMessageCounter{err: widgetErr},
			&fakeCarePlanUsecase{err: widgetErr},
			dashboardTestConfig(),
			zap.NewNop(),
		)

		dashboard, err := usecase.GetDashboard(context.Background(), dashboardTestSession())

		require.NoError(t, err)
		assert.Len(t, dashboard.UnavailableWidgets, 4)
		assert.ElementsMatch(t, []string{
			constvars.ResourceLabelAppointments,
			constvars.ResourceLabelMedications,
			constvars.ResourceLabelMessages,
			constvars.ResourceLabelCarePlan,
		}, dashboard.UnavailableWidgets)
		assert.Nil(t, dashboard.NextAppointment)
		assert.Nil(t, dashboard.MedicationCount)
		assert.Nil(t, dashboard.UnreadMessageCount)
		assert.Nil(t, dashboard.CarePlanSummary)
	})

	t.Run("no appointments means no next appointment", func(t *testing.T) {
		usecase := NewDashboardUsecase(
			&fakeAppointmentUsecase{appointments: []models.Appointment{}},
			&fakeMedicationUsecase{medications: medicationList},
			&fakeMessageCounter{},
			&fakeCarePlanUsecase{carePlan: testCarePlan()},
			dashboardTestConfig(),
			zap.NewNop(),
		)

		dashboard, err := usecase.GetDashboard(context.Background(), dashboardTestSession())

		require.NoError(t, err)
		assert.Nil(t, dashboard.NextAppointment)
		assert.Empty(t, dashboard.UpcomingAppointments)
	})

	t.Run("session without a profile gets neutral zero counts", func(t *testing.T) {
		usecase := NewDashboardUsecase(
			&fakeAppointmentUsecase{err: exceptions.ErrSendHTTPRequest(nil)},
			&fakeMedicationUsecase{err: exceptions.ErrSendHTTPRequest(nil)},
			&fakeMessageCounter{err: exceptions.ErrSendHTTPRequest(nil)},
			&fakeCarePlanUsecase{err: exceptions.ErrSendHTTPRequest(nil)},
			dashboardTestConfig(),
			zap.NewNop(),
		)
		session := dashboardTestSession()
		session.Patient = nil

		dashboard, err := usecase.GetDashboard(context.Background(), session)

		require.NoError(t, err)
		assert.Empty(t, dashboard.UnavailableWidgets)
		require.NotNil(t, dashboard.MedicationCount)
		assert.Equal(t, 0, *dashboard.MedicationCount)
		require.NotNil(t, dashboard.UnreadMessageCount)
		assert.Equal(t, 0, *dashboard.UnreadMessageCount)
		assert.Nil(t, dashboard.NextAppointment)
		assert.Nil(t, dashboard.CarePlanSummary)
	})
}
