package careteams

import (
	"context"
	"net/http"
	"time"

	"openwindows-service/internal/app/models"
	"openwindows-service/internal/pkg/constvars"
	"openwindows-service/internal/pkg/exceptions"
	"openwindows-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type CareTeamController struct {
	Log             *zap.Logger
	CareTeamUsecase CareTeamUsecase
}

func NewCareTeamController(logger *zap.Logger, careTeamUsecase CareTeamUsecase) *CareTeamController {
	return &CareTeamController{
		Log:             logger,
		CareTeamUsecase: careTeamUsecase,
	}
}

func (ctrl *CareTeamController) ListCareTeam(w http.ResponseWriter, r *http.Request) {
	session, _ := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.CareTeamUsecase.ListCareTeam(ctx, session)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CareTeamGetSuccess, response)
}
