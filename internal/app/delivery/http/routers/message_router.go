package routers

import (
	"openwindows-service/internal/app/delivery/http/middlewares"
	"openwindows-service/internal/app/services/messages"

	"github.com/go-chi/chi/v5"
)

func attachMessageRoutes(r chi.Router, m *middlewares.Middlewares, messageController *messages.MessageController) {
	r.Use(m.Authenticate)
	r.Get("/", messageController.ListMessages)
	r.Post("/", messageController.SendMessage)
	r.Post("/read", messageController.MarkIncomingAsRead)
}
