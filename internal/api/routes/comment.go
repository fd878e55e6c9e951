package routes

import (
	"github.com/go-chi/chi/v5"

	"Blogicum/internal/api/handlers/comment"
	"Blogicum/internal/api/middleware"
	"Blogicum/internal/core/comments"
	"Blogicum/internal/web"
)

// RegisterCommentRoutes registers the comment mutations on the
// router. All of them require authentication.
func RegisterCommentRoutes(r chi.Router, service comments.Service, templates *web.Templates, auth *middleware.SessionAuth) {
	createHandler := comment.NewCreateHandler(service)
	editHandler := comment.NewEditHandler(service, templates)
	deleteHandler := comment.NewDeleteHandler(service)

	r.With(auth.RequireAuth).Post("/posts/{postID}/comment", createHandler.HandleCreate)
	r.With(auth.RequireAuth).Get("/posts/{postID}/edit_comment/{commentID}", editHandler.HandleForm)
	r.With(auth.RequireAuth).Post("/posts/{postID}/edit_comment/{commentID}", editHandler.HandleEdit)
	r.With(auth.RequireAuth).Post("/posts/{postID}/delete_comment/{commentID}", deleteHandler.HandleDelete)
}
