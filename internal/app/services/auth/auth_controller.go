package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"openwindows-service/internal/pkg/constvars"
	"openwindows-service/internal/pkg/dto/requests"
	"openwindows-service/internal/pkg/dto/responses"
	"openwindows-service/internal/pkg/exceptions"
	"openwindows-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AuthController struct {
	Log         *zap.Logger
	AuthUsecase AuthUsecase
	JWTSecret   string
}

func NewAuthController(logger *zap.Logger, authUsecase AuthUsecase, jwtSecret string) *AuthController {
	return &AuthController{
		Log:         logger,
		AuthUsecase: authUsecase,
		JWTSecret:   jwtSecret,
	}
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	request := new(requests.Login)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeLoginRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AuthUsecase.Login(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccess, response)
}

// RestoreSession never fails on a missing or bad token; those cases restore
// to the unauthenticated state with a 200 so the portal can render signed-out.
func (ctrl *AuthController) RestoreSession(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get(constvars.HeaderAuthorization)
	if !strings.HasPrefix(authHeader, constvars.AuthorizationBearerPrefix) {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SessionRestoreSuccess, responses.NewSessionResponse(nil))
		return
	}

	tokenString := strings.TrimPrefix(authHeader, constvars.AuthorizationBearerPrefix)
	sessionID, err := utils.ParseSessionJWT(tokenString, ctrl.JWTSecret)
	if err != nil {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SessionRestoreSuccess, responses.NewSessionResponse(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AuthUsecase.RestoreSession(ctx, sessionID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SessionRestoreSuccess, response)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
	if sessionID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.AuthUsecase.Logout(ctx, sessionID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccess, nil)
}
