package auth

import (
	"context"
	"testing"
	"time"

	"openwindows-service/internal/app/config"
	"openwindows-service/internal/app/models"
	"openwindows-service/internal/app/services/carestore"
	"openwindows-service/internal/pkg/constvars"
	"openwindows-service/internal/pkg/dto/requests"
	"openwindows-service/internal/pkg/dto/responses"
	"openwindows-service/internal/pkg/exceptions"
	"openwindows-service/internal/pkg/fixtures"
	"openwindows-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAuthClient struct {
	signInErr   error
	getUserErr  error
	signOutErr  error
	includeUser bool

	signInCalls  int
	signOutCalls int
}

func (f *fakeAuthClient) SignInWithPassword(ctx context.Context, email, password string) (*carestore.TokenResult, error) {
	f.signInCalls++
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	tokenResult := &carestore.TokenResult{AccessToken: fixtures.AccessToken, TokenType: "bearer", ExpiresIn: 3600}
	if f.includeUser {
		tokenResult.User = &carestore.StoreUser{ID: fixtures.IdentityID, Email: fixtures.Email, Role: "authenticated"}
	}
	return tokenResult, nil
}

func (f *fakeAuthClient) GetUser(ctx context.Context, accessToken string) (*carestore.StoreUser, error) {
	if f.getUserErr != nil {
		return nil, f.getUserErr
	}
	return &carestore.StoreUser{ID: fixtures.IdentityID, Email: fixtures.Email, Role: "authenticated"}, nil
}

func (f *fakeAuthClient) SignOut(ctx context.Context, accessToken string) error {
	f.signOutCalls++
	return f.signOutErr
}

type fakePatientStore struct {
	patient *models.Patient
	err     error
}

func (f *fakePatientStore) FindByIdentityID(ctx context.Context, accessToken, identityID string) (*models.Patient, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.patient, nil
}

type fakeRedisRepository struct {
	sessions map[string]*models.Session
	values   map[string]string

	createErr error
	deleteErr error
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{
		sessions: make(map[string]*models.Session),
		values:   make(map[string]string),
	}
}

func (f *fakeRedisRepository) CreateSession(ctx context.Context, session *models.Session, exp time.Duration) error {
	if f.createErr != nil {
		return f.createErr
	}
	stored := *session
	f.sessions[session.SessionID] = &stored
	return nil
}

func (f *fakeRedisRepository) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	session, ok := f.sessions[sessionID]
	if !ok {
		return nil, exceptions.ErrInvalidSession(nil)
	}
	stored := *session
	return &stored, nil
}

func (f *fakeRedisRepository) DeleteSession(ctx context.Context, sessionID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.sessions, sessionID)
	return nil
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	f.values[key] = value.(string)
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return f.values[key], nil
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{
			LoginSessionExpiredTimeInHours: 24,
			LoginMaxAttemptsPerMinute:      10,
		},
		JWT: config.JWT{
			Secret:        "unit-test-secret",
			ExpTimeInHour: 24,
		},
	}
}

func testPatient() *models.Patient {
	return &models.Patient{
		ID:         fixtures.PatientID,
		IdentityID: fixtures.IdentityID,
		FirstName:  "Margaret",
		LastName:   "Chen",
	}
}

func TestAuthUsecaseLogin(t *testing.T) {
	t.Run("valid credentials establish a session with a linked profile", func(t *testing.T) {
		redisRepository := newFakeRedisRepository()
		usecase := NewAuthUsecase(
			&fakeAuthClient{includeUser: true},
			&fakePatientStore{patient: testPatient()},
			redisRepository,
			testInternalConfig(),
			zap.NewNop(),
		)

		loginResponse, err := usecase.Login(context.Background(), &requests.Login{Email: fixtures.Email, Password: fixtures.Password})

		require.NoError(t, err)
		assert.Equal(t, constvars.AuthStateAuthenticated, loginResponse.Session.AuthState)
		require.NotNil(t, loginResponse.Session.Patient)
		assert.Equal(t, fixtures.PatientID, loginResponse.Session.Patient.ID)

		sessionID, err := utils.ParseSessionJWT(loginResponse.Token, "unit-test-secret")
		require.NoError(t, err)
		stored, err := redisRepository.GetSession(context.Background(), sessionID)
		require.NoError(t, err)
		assert.Equal(t, fixtures.AccessToken, stored.StoreToken)
		assert.Equal(t, constvars.RolePatient, stored.Role)
	})

	t.Run("sign-in response without a user falls back to the user endpoint", func(t *testing.T) {
		usecase := NewAuthUsecase(
			&fakeAuthClient{includeUser: false},
			&fakePatientStore{patient: testPatient()},
			newFakeRedisRepository(),
			testInternalConfig(),
			zap.NewNop(),
		)

		loginResponse, err := usecase.Login(context.Background(), &requests.Login{Email: fixtures.Email, Password: fixtures.Password})

		require.NoError(t, err)
		assert.Equal(t, fixtures.IdentityID, loginResponse.Session.IdentityID)
	})

	t.Run("missing profile still signs in without a profile", func(t *testing.T) {
		usecase := NewAuthUsecase(
			&fakeAuthClient{includeUser: true},
			&fakePatientStore{patient: nil},
			newFakeRedisRepository(),
			testInternalConfig(),
			zap.NewNop(),
		)

		loginResponse, err := usecase.Login(context.Background(), &requests.Login{Email: fixtures.Email, Password: fixtures.Password})

		require.NoError(t, err)
		assert.Equal(t, constvars.AuthStateAuthenticatedNoProfile, loginResponse.Session.AuthState)
		assert.Nil(t, loginResponse.Session.Patient)
	})

	t.Run("profile fetch failure still signs in without a profile", func(t *testing.T) {
		usecase := NewAuthUsecase(
			&fakeAuthClient{includeUser: true},
			&fakePatientStore{err: exceptions.ErrStoreSelectRows(nil, constvars.CollectionPatients, constvars.ResourceLabelProfile)},
			newFakeRedisRepository(),
			testInternalConfig(),
			zap.NewNop(),
		)

		loginResponse, err := usecase.Login(context.Background(), &requests.Login{Email: fixtures.Email, Password: fixtures.Password})

		require.NoError(t, err)
		assert.Equal(t, constvars.AuthStateAuthenticatedNoProfile, loginResponse.Session.AuthState)
	})

	t.Run("classified sign-in failures pass through unchanged", func(t *testing.T) {
		signInErr := exceptions.ErrAuthInvalidCredentials(nil)
		usecase := NewAuthUsecase(
			&fakeAuthClient{signInErr: signInErr},
			&fakePatientStore{},
			newFakeRedisRepository(),
			testInternalConfig(),
			zap.NewNop(),
		)

		_, err := usecase.Login(context.Background(), &requests.Login{Email: fixtures.Email, Password: "wrong"})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrClientInvalidCredentials, customErr.ClientMessage)
	})

	t.Run("local limiter throttles before the care store is contacted", func(t *testing.T) {
		internalConfig := testInternalConfig()
		internalConfig.App.LoginMaxAttemptsPerMinute = 2
		authClient := &fakeAuthClient{signInErr: exceptions.ErrAuthInvalidCredentials(nil)}
		usecase := NewAuthUsecase(authClient, &fakePatientStore{}, newFakeRedisRepository(), internalConfig, zap.NewNop())

		request := &requests.Login{Email: fixtures.Email, Password: "wrong"}
		for i := 0; i < 2; i++ {
			_, err := usecase.Login(context.Background(), request)
			require.Error(t, err)
		}

		_, err := usecase.Login(context.Background(), request)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusTooManyRequests, customErr.StatusCode)
		assert.Equal(t, 2, authClient.signInCalls)
	})
}

func TestAuthUsecaseRestoreSession(t *testing.T) {
	seedSession := func(redisRepository *fakeRedisRepository, patient *models.Patient) *models.Session {
		session := &models.Session{
			SessionID:  utils.GenerateSessionID(),
			IdentityID: fixtures.IdentityID,
			Email:      fixtures.Email,
			Role:       constvars.RolePatient,
			Patient:    patient,
			StoreToken: fixtures.AccessToken,
			CreatedAt:  time.Now(),
			ExpiresAt:  time.Now().Add(24 * time.Hour),
		}
		redisRepository.sessions[session.SessionID] = session
		return session
	}

	t.Run("unknown session restores to unauthenticated without an error", func(t *testing.T) {
		usecase := NewAuthUsecase(&fakeAuthClient{}, &fakePatientStore{}, newFakeRedisRepository(), testInternalConfig(), zap.NewNop())

		sessionResponse, err := usecase.RestoreSession(context.Background(), "no-such-session")

		require.NoError(t, err)
		assert.Equal(t, constvars.AuthStateUnauthenticated, sessionResponse.AuthState)
	})

	t.Run("valid session restores as authenticated", func(t *testing.T) {
		redisRepository := newFakeRedisRepository()
		session := seedSession(redisRepository, testPatient())
		usecase := NewAuthUsecase(&fakeAuthClient{}, &fakePatientStore{}, redisRepository, testInternalConfig(), zap.NewNop())

		sessionResponse, err := usecase.RestoreSession(context.Background(), session.SessionID)

		require.NoError(t, err)
		assert.Equal(t, constvars.AuthStateAuthenticated, sessionResponse.AuthState)
		assert.Equal(t, fixtures.IdentityID, sessionResponse.IdentityID)
	})

	t.Run("rejected store token clears the session and restores to unauthenticated", func(t *testing.T) {
		redisRepository := newFakeRedisRepository()
		session := seedSession(redisRepository, testPatient())
		authClient := &fakeAuthClient{getUserErr: exceptions.ErrTokenInvalidOrExpired(nil)}
		usecase := NewAuthUsecase(authClient, &fakePatientStore{}, redisRepository, testInternalConfig(), zap.NewNop())

		sessionResponse, err := usecase.RestoreSession(context.Background(), session.SessionID)

		require.NoError(t, err)
		assert.Equal(t, constvars.AuthStateUnauthenticated, sessionResponse.AuthState)
		_, getErr := redisRepository.GetSession(context.Background(), session.SessionID)
		assert.Error(t, getErr)
	})

	t.Run("session without a profile picks one up on restore", func(t *testing.T) {
		redisRepository := newFakeRedisRepository()
		session := seedSession(redisRepository, nil)
		usecase := NewAuthUsecase(&fakeAuthClient{}, &fakePatientStore{patient: testPatient()}, redisRepository, testInternalConfig(), zap.NewNop())

		sessionResponse, err := usecase.RestoreSession(context.Background(), session.SessionID)

		require.NoError(t, err)
		assert.Equal(t, constvars.AuthStateAuthenticated, sessionResponse.AuthState)

		stored, err := redisRepository.GetSession(context.Background(), session.SessionID)
		require.NoError(t, err)
		require.NotNil(t, stored.Patient)
		assert.Equal(t, fixtures.PatientID, stored.Patient.ID)
	})
}

func TestAuthUsecaseLogout(t *testing.T) {
	t.Run("logout clears the local session", func(t *testing.T) {
		redisRepository := newFakeRedisRepository()
		session := &models.Session{SessionID: "session-1", StoreToken: fixtures.AccessToken}
		redisRepository.sessions[session.SessionID] = session
		authClient := &fakeAuthClient{}
		usecase := NewAuthUsecase(authClient, &fakePatientStore{}, redisRepository, testInternalConfig(), zap.NewNop())

		err := usecase.Logout(context.Background(), session.SessionID)

		require.NoError(t, err)
		assert.Equal(t, 1, authClient.signOutCalls)
		_, getErr := redisRepository.GetSession(context.Background(), session.SessionID)
		assert.Error(t, getErr)
	})

	t.Run("remote sign-out failure does not fail the logout", func(t *testing.T) {
		redisRepository := newFakeRedisRepository()
		session := &models.Session{SessionID: "session-1", StoreToken: fixtures.AccessToken}
		redisRepository.sessions[session.SessionID] = session
		authClient := &fakeAuthClient{signOutErr: exceptions.ErrSendHTTPRequest(nil)}
		usecase := NewAuthUsecase(authClient, &fakePatientStore{}, redisRepository, testInternalConfig(), zap.NewNop())

		err := usecase.Logout(context.Background(), session.SessionID)

		require.NoError(t, err)
		_, getErr := redisRepository.GetSession(context.Background(), session.SessionID)
		assert.Error(t, getErr)
	})

	t.Run("logout of an unknown session still succeeds", func(t *testing.T) {
		usecase := NewAuthUsecase(&fakeAuthClient{}, &fakePatientStore{}, newFakeRedisRepository(), testInternalConfig(), zap.NewNop())

		assert.NoError(t, usecase.Logout(context.Background(), "no-such-session"))
	})
}

func TestAuthUsecaseSubscribe(t *testing.T) {
	usecase := NewAuthUsecase(
		&fakeAuthClient{includeUser: true},
		&fakePatientStore{patient: testPatient()},
		newFakeRedisRepository(),
		testInternalConfig(),
		zap.NewNop(),
	)

	var published []*responses.Session
	unsubscribe := usecase.Subscribe(func(session *responses.Session) {
		published = append(published, session)
	})

	loginResponse, err := usecase.Login(context.Background(), &requests.Login{Email: fixtures.Email, Password: fixtures.Password})
	require.NoError(t, err)

	sessionID, err := utils.ParseSessionJWT(loginResponse.Token, "unit-test-secret")
	require.NoError(t, err)
	require.NoError(t, usecase.Logout(context.Background(), sessionID))

	require.Len(t, published, 2)
	assert.Equal(t, constvars.AuthStateAuthenticated, published[0].AuthState)
	assert.Equal(t, constvars.AuthStateUnauthenticated, published[1].AuthState)

	unsubscribe()
	_, err = usecase.Login(context.Background(), &requests.Login{Email: fixtures.Email, Password: fixtures.Password})
	require.NoError(t, err)
	assert.Len(t, published, 2)
}
