package routes

import (
	"github.com/go-chi/chi/v5"

	"Blogicum/internal/api/handlers/post"
	"Blogicum/internal/api/middleware"
	"Blogicum/internal/core/categories"
	"Blogicum/internal/core/posts"
	"Blogicum/internal/web"
)

// RegisterPostRoutes registers the post feeds, detail page, and post
// mutations on the router. Mutations sit behind RequireAuth, which
// redirects anonymous users to the login page before any ownership
// check runs.
func RegisterPostRoutes(r chi.Router, service posts.Service, categoryRepo categories.Repository, templates *web.Templates, auth *middleware.SessionAuth) {
	feedHandler := post.NewFeedHandler(service, templates)
	detailHandler := post.NewDetailHandler(service, templates)
	createHandler := post.NewCreateHandler(service, categoryRepo, templates)
	editHandler := post.NewEditHandler(service, categoryRepo, templates)
	deleteHandler := post.NewDeleteHandler(service)

	r.Get("/", feedHandler.HandleHome)
	r.Get("/category/{slug}", feedHandler.HandleCategory)
	r.Get("/profile/{username}", feedHandler.HandleProfile)

	// /posts/create must be registered before /posts/{postID} so chi
	// does not try to parse "create" as an id
	r.With(auth.RequireAuth).Get("/posts/create", createHandler.HandleForm)
	r.With(auth.RequireAuth).Post("/posts/create", createHandler.HandleCreate)

	r.Get("/posts/{postID}", detailHandler.HandleDetail)
	r.With(auth.RequireAuth).Get("/posts/{postID}/edit", editHandler.HandleForm)
	r.With(auth.RequireAuth).Post("/posts/{postID}/edit", editHandler.HandleEdit)
	r.With(auth.RequireAuth).Post("/posts/{postID}/delete", deleteHandler.HandleDelete)
}
