package post

import (
	"fmt"
	"net/http"

	"Blogicum/internal/api/middleware"
	"Blogicum/internal/core/categories"
	"Blogicum/internal/core/ownership"
	"Blogicum/internal/core/posts"
	"Blogicum/internal/web"
)

// EditHandler serves the edit form and applies post edits
type EditHandler struct {
	service    posts.Service
	categories categories.Repository
	templates  *web.Templates
}

// NewEditHandler creates a new edit handler
func NewEditHandler(service posts.Service, categoryRepo categories.Repository, templates *web.Templates) *EditHandler {
	return &EditHandler{service: service, categories: categoryRepo, templates: templates}
}

// HandleForm handles GET /posts/{postID}/edit. Someone else's post
// is not an error to open: the browser is sent to the post's page
// instead, same as a denied submit.
func (h *EditHandler) HandleForm(w http.ResponseWriter, r *http.Request) {
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

	if !ownership.CanMutate(middleware.GetUserID(r), detail.Post.AuthorID) {
		redirectToPost(w, r, postID)
		return
	}

	h.render(w, r, detail.Post, "")
}

// HandleEdit handles POST /posts/{postID}/edit
func (h *EditHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	postID, err := idParam(r, "postID")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	form, err := parsePostForm(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.service.Update(r.Context(), posts.UpdateRequest{
		PostID:      postID,
		Title:       form.Title,
		Body:        form.Body,
		CategoryID:  form.CategoryID,
		PubDate:     form.PubDate,
		IsPublished: form.IsPublished,
		ActorID:     middleware.GetUserID(r),
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	// Denied or not, the destination is the post's own page
	redirectToPost(w, r, result.Post.ID)
}

func (h *EditHandler) render(w http.ResponseWriter, r *http.Request, post *posts.Post, formError string) {
	categoryList, err := h.categories.List(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	data := postFormData{
		Post:            post,
		Categories:      categoryList,
		Action:          fmt.Sprintf("/posts/%d/edit", post.ID),
		Error:           formError,
		CurrentUsername: middleware.GetUsername(r),
	}
	if err := h.templates.Render(w, "post_form.html", data); err != nil {
		renderError(w, err)
	}
}

// redirectToPost sends the browser to a post's detail page
func redirectToPost(w http.ResponseWriter, r *http.Request, postID int64) {
	http.Redirect(w, r, fmt.Sprintf("/posts/%d", postID), http.StatusSeeOther)
}
