package post

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"Blogicum/internal/api/middleware"
	"Blogicum/internal/core/categories"
	"Blogicum/internal/core/posts"
	"Blogicum/internal/core/users"
	"Blogicum/internal/web"
)

// FeedHandler serves the three post listings: home, category, and
// author profile. Each reads "now" fresh per request so the publish
// cutoff can never go stale.
type FeedHandler struct {
	service   posts.Service
	templates *web.Templates
}

// NewFeedHandler creates a new feed handler
func NewFeedHandler(service posts.Service, templates *web.Templates) *FeedHandler {
	return &FeedHandler{service: service, templates: templates}
}

// homePageData holds data for the home feed template
type homePageData struct {
	Page            *posts.Page
	CurrentUsername string
}

// categoryPageData holds data for the category feed template
type categoryPageData struct {
	Page            *posts.Page
	Category        *categories.Category
	CurrentUsername string
}

// profilePageData holds data for the profile feed template
type profilePageData struct {
	Page            *posts.Page
	Profile         *users.User
	CurrentUsername string
	IsOwner         bool
}

// HandleHome handles GET /
func (h *FeedHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	page, err := pageParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	feed, err := h.service.ListHome(r.Context(), time.Now().UTC(), page)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	data := homePageData{
		Page:            feed,
		CurrentUsername: middleware.GetUsername(r),
	}
	if err := h.templates.Render(w, "index.html", data); err != nil {
		renderError(w, err)
	}
}

// HandleCategory handles GET /category/{slug}
func (h *FeedHandler) HandleCategory(w http.ResponseWriter, r *http.Request) {
	page, err := pageParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	slug := chi.URLParam(r, "slug")
	feed, category, err := h.service.ListByCategory(r.Context(), slug, time.Now().UTC(), page)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	data := categoryPageData{
		Page:            feed,
		Category:        category,
		CurrentUsername: middleware.GetUsername(r),
	}
	if err := h.templates.Render(w, "category.html", data); err != nil {
		renderError(w, err)
	}
}

// HandleProfile handles GET /profile/{username}. The profile feed is
// unfiltered: authors see their drafts and scheduled posts here.
func (h *FeedHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	page, err := pageParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	username := chi.URLParam(r, "username")
	feed, profile, err := h.service.ListByAuthor(r.Context(), username, page)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	data := profilePageData{
		Page:            feed,
		Profile:         profile,
		CurrentUsername: middleware.GetUsername(r),
		IsOwner:         middleware.GetUserID(r) == profile.ID,
	}
	if err := h.templates.Render(w, "profile.html", data); err != nil {
		renderError(w, err)
	}
}

// pageParam reads the 1-based ?page= query parameter. Absent means
// page 1; anything that is not a positive integer is a 404, matching
// the strict paginator contract.
func pageParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, posts.ErrPageNotFound
	}
	return page, nil
}
