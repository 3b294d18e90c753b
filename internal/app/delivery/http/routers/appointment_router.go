package routers

import (
	"openwindows-service/internal/app/delivery/http/middlewares"
	"openwindows-service/internal/app/services/appointments"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(r chi.Router, m *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	r.Use(m.Authenticate)
	r.Get("/", appointmentController.ListUpcomingAppointments)
}
