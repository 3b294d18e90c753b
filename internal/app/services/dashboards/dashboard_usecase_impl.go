package dashboards

import (
	"context"
	"sync"
	"time"

	"openwindows-service/internal/app/config"
	"openwindows-service/internal/app/models"
	"openwindows-service/internal/app/services/appointments"
	"openwindows-service/internal/app/services/careplans"
	"openwindows-service/internal/app/services/medications"
	"openwindows-service/internal/app/services/messages"
	"openwindows-service/internal/pkg/constvars"
	"openwindows-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type dashboardUsecase struct {
	AppointmentUsecase appointments.AppointmentUsecase
	MedicationUsecase  medications.MedicationUsecase
	MessageUsecase     messages.MessageUsecase
	CarePlanUsecase    careplans.CarePlanUsecase
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

func NewDashboardUsecase(
	appointmentUsecase appointments.AppointmentUsecase,
	medicationUsecase medications.MedicationUsecase,
	messageUsecase messages.MessageUsecase,
	carePlanUsecase careplans.CarePlanUsecase,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) DashboardUsecase {
	return &dashboardUsecase{
		AppointmentUsecase: appointmentUsecase,
		MedicationUsecase:  medicationUsecase,
		MessageUsecase:     messageUsecase,
		CarePlanUsecase:    carePlanUsecase,
		InternalConfig:     internalConfig,
		Log:                logger,
	}
}

// GetDashboard assembles the four widgets in parallel. A widget that fails is
// reported in UnavailableWidgets and leaves its field at the neutral zero
// value; the dashboard itself only errors when the session is unusable.
func (uc *dashboardUsecase) GetDashboard(ctx context.Context, session *models.Session) (*responses.Dashboard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	dashboard := &responses.Dashboard{
		UpcomingAppointments: []models.Appointment{},
		UnavailableWidgets:   []string{},
	}

	if session.Patient == nil {
		zero := 0
		dashboard.MedicationCount = &zero
		dashboard.UnreadMessageCount = &zero
		return dashboard, nil
	}

	widgetTimeout := time.Duration(uc.InternalConfig.App.DashboardWidgetTimeoutInSeconds) * time.Second

	var mu sync.Mutex
	var wg sync.WaitGroup
	markUnavailable := func(widget string, err error) {
		mu.Lock()
		dashboard.UnavailableWidgets = append(dashboard.UnavailableWidgets, widget)
		mu.Unlock()
		uc.Log.Warn("dashboardUsecase.GetDashboard widget unavailable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, widget),
			zap.Error(err),
		)
	}

	wg.Add(4)

	go func() {
		defer wg.Done()
		widgetCtx, cancel := context.WithTimeout(ctx, widgetTimeout)
		defer cancel()

		upcoming, err := uc.AppointmentUsecase.ListUpcomingAppointments(widgetCtx, session, constvars.DashboardAppointmentLimit)
		if err != nil {
			markUnavailable(constvars.ResourceLabelAppointments, err)
			return
		}
		mu.Lock()
		dashboard.UpcomingAppointments = upcoming
		if len(upcoming) > 0 {
			dashboard.NextAppointment = &upcoming[0]
		}
		mu.Unlock()
	}()

	go func() {
		defer wg.Done()
		widgetCtx, cancel := context.WithTimeout(ctx, widgetTimeout)
		defer cancel()

		medicationList, err := uc.MedicationUsecase.ListMedications(widgetCtx, session)
		if err != nil {
			markUnavailable(constvars.ResourceLabelMedications, err)
			return
		}
		count := len(medicationList)
		mu.Lock()
		dashboard.MedicationCount = &count
		mu.Unlock()
	}()

	go func() {
		defer wg.Done()
		widgetCtx, cancel := context.WithTimeout(ctx, widgetTimeout)
		defer cancel()

		unread, err := uc.MessageUsecase.CountUnread(widgetCtx, session)
		if err != nil {
			markUnavailable(constvars.ResourceLabelMessages, err)
			return
		}
		mu.Lock()
		dashboard.UnreadMessageCount = &unread
		mu.Unlock()
	}()

	go func() {
		defer wg.Done()
		widgetCtx, cancel := context.WithTimeout(ctx, widgetTimeout)
		defer cancel()

		carePlan, err := uc.CarePlanUsecase.GetCarePlan(widgetCtx, session)
		if err != nil {
			markUnavailable(constvars.ResourceLabelCarePlan, err)
			return
		}
		summary := summarizeCarePlan(carePlan)
		mu.Lock()
		dashboard.CarePlanSummary = summary
		mu.Unlock()
	}()

	wg.Wait()

	uc.Log.Info("dashboardUsecase.GetDashboard assembled",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, session.Patient.ID),
		zap.Int(constvars.LoggingCountKey, len(dashboard.UnavailableWidgets)),
	)
	return dashboard, nil
}

func summarizeCarePlan(carePlan *models.CarePlan) *responses.CarePlanSummary {
	summary := &responses.CarePlanSummary{Status: carePlan.Status}
	for _, goals := range [][]models.CarePlanGoal{carePlan.ComfortGoals, carePlan.MedicalGoals} {
		for _, goal := range goals {
			summary.GoalsTotal++
			if goal.Status == models.GoalStatusAchieved {
				summary.GoalsAchieved++
			}
		}
	}
	return summary
}
