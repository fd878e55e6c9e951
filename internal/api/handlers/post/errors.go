package post

import (
	"errors"
	"log/slog"
	"net/http"

	"Blogicum/internal/core/categories"
	"Blogicum/internal/core/posts"
	"Blogicum/internal/core/users"
)

// handleServiceError maps service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, posts.ErrPostNotFound),
		errors.Is(err, posts.ErrPageNotFound),
		errors.Is(err, categories.ErrCategoryNotFound),
		errors.Is(err, users.ErrUserNotFound):
		http.NotFound(w, r)

	case posts.IsValidationError(err):
		http.Error(w, err.Error(), http.StatusBadRequest)

	default:
		// Don't leak internal error details to clients
		slog.Error("unexpected error in post handler", "path", r.URL.Path, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func renderError(w http.ResponseWriter, err error) {
	slog.Error("failed to render template", "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
