package routers

import (
	"openwindows-service/internal/app/delivery/http/middlewares"
	"openwindows-service/internal/app/services/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(r chi.Router, m *middlewares.Middlewares, authController *auth.AuthController) {
	r.Post("/login", authController.Login)
	r.Get("/session", authController.RestoreSession)

	r.Group(func(r chi.Router) {
		r.Use(m.Authenticate)
		r.Post("/logout", authController.Logout)
	})
}
