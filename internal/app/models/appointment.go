package models

import "time"

type Appointment struct {
	ID                 string    `json:"id"`
	PatientID          string    `json:"patient_id"`
	Type               string    `json:"type"`
	CareTeamMemberID   string    `json:"care_team_member_id,omitempty"`
	CareTeamMemberName string    `json:"care_team_member_name,omitempty"`
	ScheduledAt        time.Time `json:"scheduled_at"`
	DurationMinutes    int       `json:"duration_minutes,omitempty"`
	Location           string    `json:"location,omitempty"`
	Notes              string    `json:"notes,omitempty"`
	Confirmed          bool      `json:"confirmed"`
}
