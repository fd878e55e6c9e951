package comment

import (
	"errors"
	"log/slog"
	"net/http"

	"Blogicum/internal/core/comments"
)

// handleServiceError maps service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, comments.ErrCommentNotFound),
		errors.Is(err, comments.ErrPostNotFound):
		http.NotFound(w, r)

	case errors.Is(err, comments.ErrEmptyText):
		http.Error(w, err.Error(), http.StatusBadRequest)

	default:
		slog.Error("unexpected error in comment handler", "path", r.URL.Path, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func renderError(w http.ResponseWriter, err error) {
	slog.Error("failed to render template", "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
