package comment

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Blogicum/internal/api/middleware"
	"Blogicum/internal/core/comments"
)

// CreateHandler attaches comments to posts
type CreateHandler struct {
	service comments.Service
}

// NewCreateHandler creates a new create handler
func NewCreateHandler(service comments.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

// HandleCreate handles POST /posts/{postID}/comment
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	postID, err := idParam(r, "postID")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	comment, err := h.service.Create(r.Context(), comments.CreateRequest{
		Text:    r.PostFormValue("text"),
		PostID:  postID,
		ActorID: middleware.GetUserID(r),
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	redirectToPost(w, r, comment.PostID)
}

// idParam parses a numeric chi path parameter
func idParam(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

// redirectToPost sends the browser to the parent post's detail page
func redirectToPost(w http.ResponseWriter, r *http.Request, postID int64) {
	http.Redirect(w, r, fmt.Sprintf("/posts/%d", postID), http.StatusSeeOther)
}
