package fixtures

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"openwindows-service/internal/pkg/constvars"
	"openwindows-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

const (
	AnonKey     = "anon-key-for-tests"
	AccessToken = "access-token-for-tests"
)

// CareStore is an in-memory stand-in for the hosted care store. It serves the
// identity endpoints and a thin slice of the row API over the fixture dataset.
// Passwords are verified against a real bcrypt hash so the sign-in path runs
// the same comparison production would.
type CareStore struct {
	Server *httptest.Server

	mu           sync.Mutex
	passwordHash string
	rateLimited  bool
	messages     []MessageRow
}

func NewCareStore() (*CareStore, error) {
	hash, err := utils.HashPassword(Password)
	if err != nil {
		return nil, err
	}

	store := &CareStore{
		passwordHash: hash,
		messages:     Messages(time.Now().UTC()),
	}
	store.Server = httptest.NewServer(http.HandlerFunc(store.handle))
	return store, nil
}

func (s *CareStore) Close() {
	s.Server.Close()
}

func (s *CareStore) BaseURL() string {
	return s.Server.URL
}

// RateLimit makes every subsequent sign-in attempt answer 429.
func (s *CareStore) RateLimit() {
	s.mu.Lock()
	s.rateLimited = true
	s.mu.Unlock()
}

func (s *CareStore) StoredMessages() []MessageRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]MessageRow, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *CareStore) handle(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get(constvars.HeaderAPIKey) == "" {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"msg": "No API key found in request"})
		return
	}

	switch {
	case r.Method == http.MethodPost && r.URL.Path == constvars.CareStoreAuthPath+"/token":
		s.handleToken(w, r)
	case r.Method == http.MethodGet && r.URL.Path == constvars.CareStoreAuthPath+"/user":
		s.handleUser(w, r)
	case r.Method == http.MethodPost && r.URL.Path == constvars.CareStoreAuthPath+"/logout":
		w.WriteHeader(http.StatusNoContent)
	case strings.HasPrefix(r.URL.Path, constvars.CareStoreRestPath+"/"):
		s.handleRows(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (s *CareStore) handleToken(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	rateLimited := s.rateLimited
	s.mu.Unlock()
	if rateLimited {
		writeJSON(w, http.StatusTooManyRequests, map[string]string{
			"error_code": "over_request_rate_limit",
			"msg":        "Request rate limit reached",
		})
		return
	}

	var credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"msg": "could not read body"})
		return
	}

	if credentials.Email == UnconfirmedEmail {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error_code": "email_not_confirmed",
			"msg":        "Email not confirmed",
		})
		return
	}

	if credentials.Email != Email || !utils.CheckPasswordHash(credentials.Password, s.passwordHash) {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error_code": "invalid_credentials",
			"msg":        "Invalid login credentials",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"access_token":  AccessToken,
		"token_type":    "bearer",
		"expires_in":    3600,
		"refresh_token": "refresh-token-for-tests",
		"user": map[string]string{
			"id":    IdentityID,
			"email": Email,
			"role":  "authenticated",
		},
	})
}

func (s *CareStore) handleUser(w http.ResponseWriter, r *http.Request) {
	if !s.bearerValid(r) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"msg": "invalid JWT"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"id":    IdentityID,
		"email": Email,
		"role":  "authenticated",
	})
}

func (s *CareStore) handleRows(w http.ResponseWriter, r *http.Request) {
	if !s.bearerValid(r) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"msg": "invalid JWT"})
		return
	}

	collection := strings.TrimPrefix(r.URL.Path, constvars.CareStoreRestPath+"/")
	switch {
	case r.Method == http.MethodGet && collection == constvars.CollectionPatients:
		rows := []PatientRow{}
		if r.URL.Query().Get("user_id") == "eq."+IdentityID {
			rows = append(rows, Patient())
		}
		writeJSON(w, http.StatusOK, rows)
	case r.Method == http.MethodGet && collection == constvars.CollectionMedications:
		s.writeFiltered(w, r, func() interface{} { return Medications() })
	case r.Method == http.MethodGet && collection == constvars.CollectionArticles:
		writeJSON(w, http.StatusOK, Articles())
	case r.Method == http.MethodGet && collection == constvars.CollectionMessages:
		s.writeFiltered(w, r, func() interface{} { return s.StoredMessages() })
	case r.Method == http.MethodPost && collection == constvars.CollectionMessages:
		s.handleInsertMessage(w, r)
	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"message": fmt.Sprintf("relation %q does not exist", collection)})
	}
}

// writeFiltered serves patient-scoped collections: an unmatched patient_id
// filter answers an empty array the way the row API does.
func (s *CareStore) writeFiltered(w http.ResponseWriter, r *http.Request, rows func() interface{}) {
	filter := r.URL.Query().Get("patient_id")
	if filter != "" && filter != "eq."+PatientID {
		writeJSON(w, http.StatusOK, []struct{}{})
		return
	}
	writeJSON(w, http.StatusOK, rows())
}

func (s *CareStore) handleInsertMessage(w http.ResponseWriter, r *http.Request) {
	var row MessageRow
	if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "could not read body"})
		return
	}
	row.ID = uuid.New().String()
	row.SentAt = time.Now().UTC()

	s.mu.Lock()
	s.messages = append(s.messages, row)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, []MessageRow{row})
}

func (s *CareStore) bearerValid(r *http.Request) bool {
	return r.Header.Get(constvars.HeaderAuthorization) == constvars.AuthorizationBearerPrefix+AccessToken
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}
