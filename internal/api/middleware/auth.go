package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"

	"Blogicum/internal/core/users"
)

// Context keys for storing the acting user
type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	UsernameKey contextKey = "username"
)

const (
	// SessionName is the cookie holding the login session
	SessionName = "blogicum_session"

	// LoginPath is where anonymous users are sent when a page
	// requires authentication
	LoginPath = "/auth/login"

	// MinSessionSecretLength guards against weak cookie signing keys
	MinSessionSecretLength = 32

	sessionMaxAge = 30 * 24 * 60 * 60 // 30 days
)

// SessionAuth authenticates requests from a signed session cookie.
// CurrentUser loads the acting user into the request context on every
// request; RequireAuth additionally redirects anonymous users to the
// login page before any ownership check can run.
type SessionAuth struct {
	store *sessions.CookieStore
}

// NewSessionAuth creates session-cookie auth middleware
func NewSessionAuth(secret string) (*SessionAuth, error) {
	if len(secret) < MinSessionSecretLength {
		return nil, fmt.Errorf("SESSION_SECRET must be at least %d bytes", MinSessionSecretLength)
	}

	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionAuth{store: store}, nil
}

// SignIn writes a login session for the user
func (m *SessionAuth) SignIn(w http.ResponseWriter, r *http.Request, user *users.User) error {
	session, _ := m.store.Get(r, SessionName)
	session.Values["user_id"] = user.ID
	session.Values["username"] = user.Username
	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// SignOut clears the login session
func (m *SessionAuth) SignOut(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, SessionName)
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// CurrentUser loads the acting user from the session cookie into the
// request context. Requests without a valid session pass through
// anonymous; pages that render differently for logged-in users read
// the context, they never touch the cookie themselves.
func (m *SessionAuth) CurrentUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.store.Get(r, SessionName)
		if err != nil {
			// Tampered or stale cookie: treat as anonymous
			slog.Warn("discarding invalid session cookie", "error", err)
			next.ServeHTTP(w, r)
			return
		}

		userID, ok := session.Values["user_id"].(int64)
		if !ok || userID == 0 {
			next.ServeHTTP(w, r)
			return
		}
		username, _ := session.Values["username"].(string)

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), userID, username)))
	})
}

// RequireAuth redirects anonymous users to the login page. It runs
// after CurrentUser, so authentication is checked before any
// ownership guard sees the request.
func (m *SessionAuth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetUserID(r) == 0 {
			http.Redirect(w, r, LoginPath, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithUser returns a context carrying the acting user's identity
func WithUser(ctx context.Context, userID int64, username string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID)
	return context.WithValue(ctx, UsernameKey, username)
}

// GetUserID returns the acting user's id, or 0 for anonymous requests
func GetUserID(r *http.Request) int64 {
	if id, ok := r.Context().Value(UserIDKey).(int64); ok {
		return id
	}
	return 0
}

// GetUsername returns the acting user's username, or "" for anonymous
// requests
func GetUsername(r *http.Request) string {
	if name, ok := r.Context().Value(UsernameKey).(string); ok {
		return name
	}
	return ""
}
