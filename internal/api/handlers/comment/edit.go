package comment

import (
	"fmt"
	"net/http"

	"Blogicum/internal/api/middleware"
	"Blogicum/internal/core/comments"
	"Blogicum/internal/core/ownership"
	"Blogicum/internal/web"
)

// EditHandler serves the comment edit form and applies edits
type EditHandler struct {
	service   comments.Service
	templates *web.Templates
}

// NewEditHandler creates a new edit handler
func NewEditHandler(service comments.Service, templates *web.Templates) *EditHandler {
	return &EditHandler{service: service, templates: templates}
}

type commentFormData struct {
	Comment         *comments.Comment
	Action          string
	Error           string
	CurrentUsername string
}

// HandleForm handles GET /posts/{postID}/edit_comment/{commentID}.
// Opening someone else's comment bounces to the post page, same as a
// denied submit.
func (h *EditHandler) HandleForm(w http.ResponseWriter, r *http.Request) {
	commentID, err := idParam(r, "commentID")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	comment, err := h.service.GetByID(r.Context(), commentID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	if !ownership.CanMutate(middleware.GetUserID(r), comment.AuthorID) {
		redirectToPost(w, r, comment.PostID)
		return
	}

	data := commentFormData{
		Comment:         comment,
		Action:          fmt.Sprintf("/posts/%d/edit_comment/%d", comment.PostID, comment.ID),
		CurrentUsername: middleware.GetUsername(r),
	}
	if err := h.templates.Render(w, "comment_form.html", data); err != nil {
		renderError(w, err)
	}
}

// HandleEdit handles POST /posts/{postID}/edit_comment/{commentID}
func (h *EditHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	commentID, err := idParam(r, "commentID")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Update(r.Context(), comments.UpdateRequest{
		CommentID: commentID,
		Text:      r.PostFormValue("text"),
		ActorID:   middleware.GetUserID(r),
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	// Denied or not, the destination is the parent post's page
	redirectToPost(w, r, result.Comment.PostID)
}
