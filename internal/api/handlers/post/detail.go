package post

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Blogicum/internal/api/middleware"
	"Blogicum/internal/core/posts"
	"Blogicum/internal/web"
)

// DetailHandler serves a single post with its comments
type DetailHandler struct {
	service   posts.Service
	templates *web.Templates
}

// NewDetailHandler creates a new detail handler
func NewDetailHandler(service posts.Service, templates *web.Templates) *DetailHandler {
	return &DetailHandler{service: service, templates: templates}
}

type detailPageData struct {
	Detail          *posts.Detail
	CurrentUsername string
	IsOwner         bool
}

// HandleDetail handles GET /posts/{postID}. Lookup is by bare id:
// unpublished and future-dated posts resolve here too.
func (h *DetailHandler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	postID, err := idParam(r, "postID")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	detail, err := h.service.GetDetail(r.Context(), postID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	data := detailPageData{
		Detail:          detail,
		CurrentUsername: middleware.GetUsername(r),
		IsOwner:         middleware.GetUserID(r) == detail.Post.AuthorID,
	}
	if err := h.templates.Render(w, "detail.html", data); err != nil {
		renderError(w, err)
	}
}

// idParam parses a numeric chi path parameter
func idParam(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}
