package routes

import (
	"github.com/go-chi/chi/v5"

	"Blogicum/internal/api/handlers/auth"
	"Blogicum/internal/api/middleware"
	"Blogicum/internal/core/users"
	"Blogicum/internal/web"
)

// RegisterAuthRoutes registers registration, login, and logout.
func RegisterAuthRoutes(r chi.Router, service users.Service, sessions *middleware.SessionAuth, templates *web.Templates) {
	handlers := auth.NewHandlers(service, sessions, templates)

	r.Get("/auth/login", handlers.HandleLoginForm)
	r.Post("/auth/login", handlers.HandleLogin)
	r.Get("/auth/registration", handlers.HandleRegistrationForm)
	r.Post("/auth/registration", handlers.HandleRegistration)
	r.Post("/auth/logout", handlers.HandleLogout)
}
