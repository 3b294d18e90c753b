package models

type CareTeamMember struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Role          string `json:"role"`
	RoleLabel     string `json:"role_label"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	Bio           string `json:"bio,omitempty"`
	VisitSchedule string `json:"visit_schedule,omitempty"`
	// PhotoObject is the storage object name; PhotoURL is the short-lived
	// presigned link attached during normalization. Either may be empty.
	PhotoObject string `json:"-"`
	PhotoURL    string `json:"photo_url,omitempty"`
}
