package comment

import (
	"net/http"

	"Blogicum/internal/api/middleware"
	"Blogicum/internal/core/comments"
)

// DeleteHandler removes comments
type DeleteHandler struct {
	service comments.Service
}

// NewDeleteHandler creates a new delete handler
func NewDeleteHandler(service comments.Service) *DeleteHandler {
	return &DeleteHandler{service: service}
}

// HandleDelete handles POST /posts/{postID}/delete_comment/{commentID}
func (h *DeleteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	commentID, err := idParam(r, "commentID")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	result, err := h.service.Delete(r.Context(), middleware.GetUserID(r), commentID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	redirectToPost(w, r, result.Comment.PostID)
}
