package post

import (
	"fmt"
	"net/http"

	"Blogicum/internal/api/middleware"
	"Blogicum/internal/core/categories"
	"Blogicum/internal/core/posts"
	"Blogicum/internal/web"
)

// CreateHandler serves the new-post form and creates posts
type CreateHandler struct {
	service    posts.Service
	categories categories.Repository
	templates  *web.Templates
}

// NewCreateHandler creates a new create handler
func NewCreateHandler(service posts.Service, categoryRepo categories.Repository, templates *web.Templates) *CreateHandler {
	return &CreateHandler{service: service, categories: categoryRepo, templates: templates}
}

type postFormData struct {
	Post            *posts.Post
	Categories      []*categories.Category
	Action          string
	Error           string
	CurrentUsername string
}

// HandleForm handles GET /posts/create
func (h *CreateHandler) HandleForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "")
}

// HandleCreate handles POST /posts/create. The author is always the
// acting user; success lands on their profile, where the new post is
// visible even if it is a draft.
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	form, err := parsePostForm(r)
	if err != nil {
		h.render(w, r, err.Error())
		return
	}

	_, err = h.service.Create(r.Context(), posts.CreateRequest{
		Title:       form.Title,
		Body:        form.Body,
		CategoryID:  form.CategoryID,
		PubDate:     form.PubDate,
		IsPublished: form.IsPublished,
		ActorID:     middleware.GetUserID(r),
	})
	if err != nil {
		if posts.IsValidationError(err) {
			h.render(w, r, err.Error())
			return
		}
		handleServiceError(w, r, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/profile/%s", middleware.GetUsername(r)), http.StatusSeeOther)
}

func (h *CreateHandler) render(w http.ResponseWriter, r *http.Request, formError string) {
	categoryList, err := h.categories.List(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	data := postFormData{
		Categories:      categoryList,
		Action:          "/posts/create",
		Error:           formError,
		CurrentUsername: middleware.GetUsername(r),
	}
	if err := h.templates.Render(w, "post_form.html", data); err != nil {
		renderError(w, err)
	}
}
