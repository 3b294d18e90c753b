package articles

import (
	"context"
	"net/http"
	"time"

	"openwindows-service/internal/app/models"
	"openwindows-service/internal/pkg/constvars"
	"openwindows-service/internal/pkg/exceptions"
	"openwindows-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ArticleController struct {
	Log            *zap.Logger
	ArticleUsecase ArticleUsecase
}

func NewArticleController(logger *zap.Logger, articleUsecase ArticleUsecase) *ArticleController {
	return &ArticleController{
		Log:            logger,
		ArticleUsecase: articleUsecase,
	}
}

func (ctrl *ArticleController) ListArticles(w http.ResponseWriter, r *http.Request) {
	session, _ := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ArticleUsecase.ListArticles(ctx, session)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ArticlesGetSuccess, response)
}

func (ctrl *ArticleController) GetArticleByID(w http.ResponseWriter, r *http.Request) {
	session, _ := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)

	articleID := chi.URLParam(r, "articleID")
	if articleID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "articleID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ArticleUsecase.GetArticleByID(ctx, session, articleID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ArticleGetSuccess, response)
}
