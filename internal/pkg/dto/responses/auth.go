package responses

import (
	"openwindows-service/internal/app/models"
	"openwindows-service/internal/pkg/constvars"
)

type Login struct {
	Token   string   `json:"token"`
	Session *Session `json:"session"`
}

type Session struct {
	AuthState  string          `json:"auth_state"`
	IdentityID string          `json:"identity_id,omitempty"`
	Email      string          `json:"email,omitempty"`
	Role       string          `json:"role,omitempty"`
	Patient    *models.Patient `json:"patient,omitempty"`
}

func NewSessionResponse(session *models.Session) *Session {
	if session == nil {
		return &Session{AuthState: constvars.AuthStateUnauthenticated}
	}
	state := constvars.AuthStateAuthenticated
	if session.Patient == nil {
		state = constvars.AuthStateAuthenticatedNoProfile
	}
	return &Session{
		AuthState:  state,
		IdentityID: session.IdentityID,
		Email:      session.Email,
		Role:       session.Role,
		Patient:    session.Patient,
	}
}
