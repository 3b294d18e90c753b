package routers

import (
	"openwindows-service/internal/app/delivery/http/middlewares"
	"openwindows-service/internal/app/services/dashboards"

	"github.com/go-chi/chi/v5"
)

func attachDashboardRoutes(r chi.Router, m *middlewares.Middlewares, dashboardController *dashboards.DashboardController) {
	r.Use(m.Authenticate)
	r.Get("/", dashboardController.GetDashboard)
}
