package post

import (
	"fmt"
	"net/http"

	"Blogicum/internal/api/middleware"
	"Blogicum/internal/core/posts"
)

// DeleteHandler removes posts
type DeleteHandler struct {
	service posts.Service
}

// NewDeleteHandler creates a new delete handler
func NewDeleteHandler(service posts.Service) *DeleteHandler {
	return &DeleteHandler{service: service}
}

// HandleDelete handles POST /posts/{postID}/delete. A foreign actor
// is bounced to the post's page with the post intact; the author
// lands on their profile with the post gone.
func (h *DeleteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	postID, err := idParam(r, "postID")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	result, err := h.service.Delete(r.Context(), middleware.GetUserID(r), postID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	if result.Denied {
		redirectToPost(w, r, result.Post.ID)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/profile/%s", middleware.GetUsername(r)), http.StatusSeeOther)
}
