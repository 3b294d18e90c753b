package routers

import (
	"openwindows-service/internal/app/delivery/http/middlewares"
	"openwindows-service/internal/app/services/careteams"

	"github.com/go-chi/chi/v5"
)

func attachCareTeamRoutes(r chi.Router, m *middlewares.Middlewares, careTeamController *careteams.CareTeamController) {
	r.Use(m.Authenticate)
	r.Get("/", careTeamController.ListCareTeam)
}
