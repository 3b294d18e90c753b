package routers

import (
	"openwindows-service/internal/app/delivery/http/middlewares"
	"openwindows-service/internal/app/services/medications"

	"github.com/go-chi/chi/v5"
)

func attachMedicationRoutes(r chi.Router, m *middlewares.Middlewares, medicationController *medications.MedicationController) {
	r.Use(m.Authenticate)
	r.Get("/", medicationController.ListMedications)
	r.Get("/{medicationID}", medicationController.GetMedicationByID)
}
