package routers

import (
	"openwindows-service/internal/app/delivery/http/middlewares"
	"openwindows-service/internal/app/services/careplans"

	"github.com/go-chi/chi/v5"
)

func attachCarePlanRoutes(r chi.Router, m *middlewares.Middlewares, carePlanController *careplans.CarePlanController) {
	r.Use(m.Authenticate)
	r.Get("/", carePlanController.GetCarePlan)
}
