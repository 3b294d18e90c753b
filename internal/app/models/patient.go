package models

type Patient struct {
	ID            string `json:"id"`
	IdentityID    string `json:"identity_id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	DateOfBirth   string `json:"date_of_birth,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
	Diagnosis     string `json:"diagnosis,omitempty"`
	CurrentStatus string `json:"current_status,omitempty"`
}

func (p *Patient) FullName() string {
	if p == nil {
		return ""
	}
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
