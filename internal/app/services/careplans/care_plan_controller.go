package careplans

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

type CarePlanController struct {
	Log             *zap.Logger
	CarePlanUsecase CarePlanUsecase
}

func NewCarePlanController(logger *zap.Logger, carePlanUsecase CarePlanUsecase) *CarePlanController {
	return &CarePlanController{
		Log:             logger,
		CarePlanUsecase: carePlanUsecase,
	}
}

func (ctrl *CarePlanController) GetCarePlan(w http.ResponseWriter, r *http.Request) {
	session, _ := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.CarePlanUsecase.GetCarePlan(ctx, session)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CarePlanGetSuccess, response)
}
