package models

import "time"

// Session is the authenticated-identity state for one signed-in client.
// It is owned by the auth usecase and exposed read-only everywhere else.
// Patient is nil when the identity has no linked patient record; that is a
// valid state and never fails the session flow.
type Session struct {
	SessionID  string    `json:"session_id"`
	IdentityID string    `json:"identity_id"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Patient    *Patient  `json:"patient,omitempty"`
	StoreToken string    `json:"store_token"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}
