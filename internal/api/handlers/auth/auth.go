package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"Blogicum/internal/api/middleware"
	"Blogicum/internal/core/users"
	"Blogicum/internal/web"
)

// Handlers serves registration, login, and logout.
type Handlers struct {
	service   users.Service
	sessions  *middleware.SessionAuth
	templates *web.Templates
}

// NewHandlers creates the auth handler set
func NewHandlers(service users.Service, sessions *middleware.SessionAuth, templates *web.Templates) *Handlers {
	return &Handlers{service: service, sessions: sessions, templates: templates}
}

type authFormData struct {
	Error           string
	CurrentUsername string
}

// HandleLoginForm handles GET /auth/login
func (h *Handlers) HandleLoginForm(w http.ResponseWriter, r *http.Request) {
	h.renderAuth(w, r, "login.html", "")
}

// HandleLogin handles POST /auth/login. Failed attempts re-render the
// form with one message for both bad usernames and bad passwords.
func (h *Handlers) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	user, err := h.service.Authenticate(r.Context(), r.PostFormValue("username"), r.PostFormValue("password"))
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			h.renderAuth(w, r, "login.html", "Invalid username or password.")
			return
		}
		h.serverError(w, r, err)
		return
	}

	if err := h.sessions.SignIn(w, r, user); err != nil {
		h.serverError(w, r, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/profile/%s", user.Username), http.StatusSeeOther)
}

// HandleRegistrationForm handles GET /auth/registration
func (h *Handlers) HandleRegistrationForm(w http.ResponseWriter, r *http.Request) {
	h.renderAuth(w, r, "registration.html", "")
}

// HandleRegistration handles POST /auth/registration. A successful
// signup logs the user straight in.
func (h *Handlers) HandleRegistration(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	user, err := h.service.Register(r.Context(), users.RegisterRequest{
		Username:  r.PostFormValue("username"),
		Email:     r.PostFormValue("email"),
		FirstName: r.PostFormValue("first_name"),
		LastName:  r.PostFormValue("last_name"),
		Password:  r.PostFormValue("password"),
	})
	if err != nil {
		if errors.Is(err, users.ErrUsernameTaken) {
			h.renderAuth(w, r, "registration.html", "That username is already taken.")
			return
		}
		if users.IsValidationError(err) {
			h.renderAuth(w, r, "registration.html", err.Error())
			return
		}
		h.serverError(w, r, err)
		return
	}

	if err := h.sessions.SignIn(w, r, user); err != nil {
		h.serverError(w, r, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/profile/%s", user.Username), http.StatusSeeOther)
}

// HandleLogout handles POST /auth/logout
func (h *Handlers) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.SignOut(w, r); err != nil {
		h.serverError(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handlers) renderAuth(w http.ResponseWriter, r *http.Request, name, formError string) {
	data := authFormData{
		Error:           formError,
		CurrentUsername: middleware.GetUsername(r),
	}
	if err := h.templates.Render(w, name, data); err != nil {
		h.serverError(w, r, err)
	}
}

func (h *Handlers) serverError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("unexpected error in auth handler", "path", r.URL.Path, "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
