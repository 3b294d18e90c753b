package auth

import (
	"context"
	"errors"
	"time"

	"openwindows-service/internal/app/config"
	"openwindows-service/internal/app/models"
	"openwindows-service/internal/app/services/carestore"
	"openwindows-service/internal/app/services/patients"
	"openwindows-service/internal/app/services/shared/redis"
	"openwindows-service/internal/pkg/constvars"
	"openwindows-service/internal/pkg/dto/requests"
	"openwindows-service/internal/pkg/dto/responses"
	"openwindows-service/internal/pkg/exceptions"
	"openwindows-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	AuthClient         carestore.AuthClient
	PatientStoreClient patients.PatientStoreClient
	RedisRepository    redis.RedisRepository
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
	Limiter            *loginLimiter
	Broadcast          *sessionBroadcast
}

func NewAuthUsecase(
	authClient carestore.AuthClient,
	patientStoreClient patients.PatientStoreClient,
	redisRepository redis.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) AuthUsecase {
	return &authUsecase{
		AuthClient:         authClient,
		PatientStoreClient: patientStoreClient,
		RedisRepository:    redisRepository,
		InternalConfig:     internalConfig,
		Log:                logger,
		Limiter:            newLoginLimiter(internalConfig.App.LoginMaxAttemptsPerMinute),
		Broadcast:          newSessionBroadcast(),
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	// Local throttle runs before the care store sees the attempt so a
	// hammered account never reaches the remote limiter.
	if !uc.Limiter.Allow(request.Email) {
		uc.Log.Warn("authUsecase.Login attempts throttled locally",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrAuthRateLimited(nil)
	}

	tokenResult, err := uc.AuthClient.SignInWithPassword(ctx, request.Email, request.Password)
	if err != nil {
		return nil, err
	}

	storeUser := tokenResult.User
	if storeUser == nil {
		storeUser, err = uc.AuthClient.GetUser(ctx, tokenResult.AccessToken)
		if err != nil {
			return nil, err
		}
	}

	// A missing or unreadable profile still yields a signed-in session; the
	// portal renders it as authenticated-without-profile.
	patient, err := uc.PatientStoreClient.FindByIdentityID(ctx, tokenResult.AccessToken, storeUser.ID)
	if err != nil {
		uc.Log.Warn("authUsecase.Login profile fetch failed, continuing without profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingIdentityIDKey, storeUser.ID),
			zap.Error(err),
		)
		patient = nil
	}

	now := time.Now()
	sessionExpiry := time.Duration(uc.InternalConfig.App.LoginSessionExpiredTimeInHours) * time.Hour
	session := &models.Session{
		SessionID:  utils.GenerateSessionID(),
		IdentityID: storeUser.ID,
		Email:      storeUser.Email,
		Role:       constvars.RolePatient,
		Patient:    patient,
		StoreToken: tokenResult.AccessToken,
		CreatedAt:  now,
		ExpiresAt:  now.Add(sessionExpiry),
	}

	err = uc.RedisRepository.CreateSession(ctx, session, sessionExpiry)
	if err != nil {
		return nil, err
	}

	tokenString, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	sessionResponse := responses.NewSessionResponse(session)
	uc.Broadcast.publish(sessionResponse)

	uc.Log.Info("authUsecase.Login session established",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
		zap.String(constvars.LoggingIdentityIDKey, session.IdentityID),
		zap.String(constvars.LoggingAuthStateKey, sessionResponse.AuthState),
	)

	return &responses.Login{
		Token:   tokenString,
		Session: sessionResponse,
	}, nil
}

func (uc *authUsecase) RestoreSession(ctx context.Context, sessionID string) (*responses.Session, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	session, err := uc.RedisRepository.GetSession(ctx, sessionID)
	if err != nil {
		if isUnauthorized(err) {
			return uc.publishUnauthenticated(), nil
		}
		return nil, err
	}

	// The stored token is revalidated against the care store; a revoked or
	// expired token tears the local session down instead of restoring it.
	_, err = uc.AuthClient.GetUser(ctx, session.StoreToken)
	if err != nil {
		if isUnauthorized(err) {
			uc.Log.Info("authUsecase.RestoreSession store token rejected, clearing session",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSessionIDKey, sessionID),
			)
			if delErr := uc.RedisRepository.DeleteSession(ctx, sessionID); delErr != nil {
				uc.Log.Warn("authUsecase.RestoreSession failed to delete stale session",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(delErr),
				)
			}
			return uc.publishUnauthenticated(), nil
		}
		return nil, err
	}

	// Sessions created before the profile row existed pick it up on restore.
	if session.Patient == nil {
		patient, profileErr := uc.PatientStoreClient.FindByIdentityID(ctx, session.StoreToken, session.IdentityID)
		if profileErr != nil {
			uc.Log.Warn("authUsecase.RestoreSession profile fetch failed, continuing without profile",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(profileErr),
			)
		} else if patient != nil {
			session.Patient = patient
			exp := time.Until(session.ExpiresAt)
			if exp > 0 {
				if setErr := uc.RedisRepository.CreateSession(ctx, session, exp); setErr != nil {
					uc.Log.Warn("authUsecase.RestoreSession failed to persist refreshed profile",
						zap.String(constvars.LoggingRequestIDKey, requestID),
						zap.Error(setErr),
					)
				}
			}
		}
	}

	sessionResponse := responses.NewSessionResponse(session)
	uc.Broadcast.publish(sessionResponse)

	uc.Log.Info("authUsecase.RestoreSession session restored",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingAuthStateKey, sessionResponse.AuthState),
	)
	return sessionResponse, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	session, err := uc.RedisRepository.GetSession(ctx, sessionID)
	if err != nil && !isUnauthorized(err) {
		return err
	}

	// The local session goes first so the client is signed out even when the
	// care store sign-out fails afterwards.
	if err := uc.RedisRepository.DeleteSession(ctx, sessionID); err != nil {
		return err
	}

	if session != nil {
		if signOutErr := uc.AuthClient.SignOut(ctx, session.StoreToken); signOutErr != nil {
			uc.Log.Warn("authUsecase.Logout care store sign-out failed, local session already cleared",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSessionIDKey, sessionID),
				zap.Error(signOutErr),
			)
		}
	}

	uc.publishUnauthenticated()

	uc.Log.Info("authUsecase.Logout session cleared",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return nil
}

func (uc *authUsecase) Subscribe(listener SessionListener) func() {
	return uc.Broadcast.subscribe(listener)
}

func (uc *authUsecase) publishUnauthenticated() *responses.Session {
	sessionResponse := responses.NewSessionResponse(nil)
	uc.Broadcast.publish(sessionResponse)
	return sessionResponse
}

func isUnauthorized(err error) bool {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr.StatusCode == constvars.StatusUnauthorized
	}
	return false
}
