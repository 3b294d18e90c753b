package responses

import "openwindows-service/internal/app/models"

// Dashboard composes four independent widget fetches. A nil widget field
// means that sub-fetch failed and the page renders a neutral placeholder
// for it instead of a page-level error.
type Dashboard struct {
	NextAppointment      *models.Appointment  `json:"next_appointment,omitempty"`
	UpcomingAppointments []models.Appointment `json:"upcoming_appointments,omitempty"`
	MedicationCount      *int                 `json:"medication_count,omitempty"`
	UnreadMessageCount   *int                 `json:"unread_message_count,omitempty"`
	CarePlanSummary      *CarePlanSummary     `json:"care_plan_summary,omitempty"`
	UnavailableWidgets   []string             `json:"unavailable_widgets,omitempty"`
}

type CarePlanSummary struct {
	Status        string `json:"status"`
	GoalsAchieved int    `json:"goals_achieved"`
	GoalsTotal    int    `json:"goals_total"`
}
