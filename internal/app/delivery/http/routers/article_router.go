package routers

import (
	"openwindows-service/internal/app/delivery/http/middlewares"
	"openwindows-service/internal/app/services/articles"

	"github.com/go-chi/chi/v5"
)

func attachArticleRoutes(r chi.Router, m *middlewares.Middlewares, articleController *articles.ArticleController) {
	r.Use(m.Authenticate)
	r.Get("/", articleController.ListArticles)
	r.Get("/{articleID}", articleController.GetArticleByID)
}
