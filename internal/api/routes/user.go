package routes

import (
	"github.com/go-chi/chi/v5"

	"Blogicum/internal/api/handlers/user"
	"Blogicum/internal/api/middleware"
	"Blogicum/internal/core/users"
	"Blogicum/internal/web"
)

// RegisterUserRoutes registers the profile edit pages on the router.
// The profile feed itself lives with the post routes.
func RegisterUserRoutes(r chi.Router, service users.Service, templates *web.Templates, auth *middleware.SessionAuth) {
	editHandler := user.NewProfileEditHandler(service, templates)

	r.With(auth.RequireAuth).Get("/profile/{username}/edit", editHandler.HandleForm)
	r.With(auth.RequireAuth).Post("/profile/{username}/edit", editHandler.HandleEdit)
}
