package models

type CarePlan struct {
	ID               string            `json:"id"`
	PatientID        string            `json:"patient_id"`
	Status           string            `json:"status,omitempty"`
	LastUpdated      string            `json:"last_updated,omitempty"`
	LastUpdatedBy    string            `json:"last_updated_by,omitempty"`
	ComfortGoals     []CarePlanGoal    `json:"comfort_goals"`
	MedicalGoals     []CarePlanGoal    `json:"medical_goals"`
	AdvanceDirective *AdvanceDirective `json:"advance_directive,omitempty"`
}

type CarePlanGoal struct {
	ID       string `json:"id"`
	Goal     string `json:"goal"`
	Category string `json:"category"`
	Status   string `json:"status"`
	Progress int    `json:"progress"`
	Notes    string `json:"notes,omitempty"`
}

type AdvanceDirective struct {
	Text                 string `json:"text"`
	SignedDate           string `json:"signed_date,omitempty"`
	HealthcareProxyName  string `json:"healthcare_proxy_name,omitempty"`
	HealthcareProxyPhone string `json:"healthcare_proxy_phone,omitempty"`
}

const (
	GoalStatusAchieved   = "achieved"
	GoalStatusInProgress = "in-progress"

	GoalCategoryComfort = "comfort"
	GoalCategoryMedical = "medical"
)
