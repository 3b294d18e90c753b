package routers

import (
	"openwindows-service/internal/app/delivery/http/middlewares"
	"openwindows-service/internal/app/services/preferences"

	"github.com/go-chi/chi/v5"
)

func attachPreferenceRoutes(r chi.Router, m *middlewares.Middlewares, preferenceController *preferences.PreferenceController) {
	r.Use(m.Authenticate)
	r.Get("/", preferenceController.GetPreferences)
	r.Put("/", preferenceController.UpdatePreferences)
	r.Put("/favorites/{articleID}", preferenceController.ToggleFavoriteArticle)
}
