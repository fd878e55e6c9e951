package user

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Blogicum/internal/api/middleware"
	"Blogicum/internal/core/users"
	"Blogicum/internal/web"
)

// ProfileEditHandler lets users edit their own profile. The lookup
// is strict: a path username that does not belong to the acting user
// is a 404, not a forbidden page.
type ProfileEditHandler struct {
	service   users.Service
	templates *web.Templates
}

// NewProfileEditHandler creates a new profile edit handler
func NewProfileEditHandler(service users.Service, templates *web.Templates) *ProfileEditHandler {
	return &ProfileEditHandler{service: service, templates: templates}
}

type profileFormData struct {
	Profile         *users.User
	Error           string
	CurrentUsername string
}

// HandleForm handles GET /profile/{username}/edit
func (h *ProfileEditHandler) HandleForm(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	profile, err := h.service.GetByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			http.NotFound(w, r)
			return
		}
		slog.Error("unexpected error in profile handler", "path", r.URL.Path, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if profile.ID != middleware.GetUserID(r) {
		http.NotFound(w, r)
		return
	}

	data := profileFormData{
		Profile:         profile,
		CurrentUsername: middleware.GetUsername(r),
	}
	if err := h.templates.Render(w, "profile_form.html", data); err != nil {
		slog.Error("failed to render template", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// HandleEdit handles POST /profile/{username}/edit
func (h *ProfileEditHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), users.UpdateProfileRequest{
		Username:  chi.URLParam(r, "username"),
		Email:     r.PostFormValue("email"),
		FirstName: r.PostFormValue("first_name"),
		LastName:  r.PostFormValue("last_name"),
		ActorID:   middleware.GetUserID(r),
	})
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			http.NotFound(w, r)
			return
		}
		if users.IsValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		slog.Error("unexpected error in profile handler", "path", r.URL.Path, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/profile/%s", profile.Username), http.StatusSeeOther)
}
