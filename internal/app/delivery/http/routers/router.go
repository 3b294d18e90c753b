package routers

import (
	"time"

	"openwindows-service/internal/app/config"
	"openwindows-service/internal/app/delivery/http/middlewares"
	"openwindows-service/internal/app/services/appointments"
	"openwindows-service/internal/app/services/articles"
	"openwindows-service/internal/app/services/auth"
	"openwindows-service/internal/app/services/careplans"
	"openwindows-service/internal/app/services/careteams"
	"openwindows-service/internal/app/services/dashboards"
	"openwindows-service/internal/app/services/medications"
	"openwindows-service/internal/app/services/messages"
	"openwindows-service/internal/app/services/preferences"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	dashboardController *dashboards.DashboardController,
	medicationController *medications.MedicationController,
	carePlanController *careplans.CarePlanController,
	careTeamController *careteams.CareTeamController,
	appointmentController *appointments.AppointmentController,
	messageController *messages.MessageController,
	articleController *articles.ArticleController,
	preferenceController *preferences.PreferenceController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, middlewares, authController)
		})

		r.Route("/dashboard", func(r chi.Router) {
			attachDashboardRoutes(r, middlewares, dashboardController)
		})

		r.Route("/medications", func(r chi.Router) {
			attachMedicationRoutes(r, middlewares, medicationController)
		})

		r.Route("/care-plan", func(r chi.Router) {
			attachCarePlanRoutes(r, middlewares, carePlanController)
		})

		r.Route("/care-team", func(r chi.Router) {
			attachCareTeamRoutes(r, middlewares, careTeamController)
		})

		r.Route("/appointments", func(r chi.Router) {
			attachAppointmentRoutes(r, middlewares, appointmentController)
		})

		r.Route("/messages", func(r chi.Router) {
			attachMessageRoutes(r, middlewares, messageController)
		})

		r.Route("/articles", func(r chi.Router) {
			attachArticleRoutes(r, middlewares, articleController)
		})

		r.Route("/preferences", func(r chi.Router) {
			attachPreferenceRoutes(r, middlewares, preferenceController)
		})
	})
}
