package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Blogicum/internal/core/users"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestNewSessionAuth_RejectsShortSecret(t *testing.T) {
	_, err := NewSessionAuth("too-short")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")

	_, err = NewSessionAuth(testSecret)
	assert.NoError(t, err)
}

func TestRequireAuth_RedirectsAnonymousToLogin(t *testing.T) {
	auth, err := NewSessionAuth(testSecret)
	require.NoError(t, err)

	called := false
	handler := auth.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodPost, "/posts/create", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.False(t, called, "protected handler must not run for anonymous requests")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, LoginPath, rec.Header().Get("Location"))
}

func TestRequireAuth_PassesAuthenticatedRequests(t *testing.T) {
	auth, err := NewSessionAuth(testSecret)
	require.NoError(t, err)

	called := false
	handler := auth.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodPost, "/posts/create", nil)
	req = req.WithContext(WithUser(req.Context(), 7, "alice"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.True(t, called)
}

// Sign in through one request, replay the cookie on a second, and the
// middleware should recover the same identity.
func TestCurrentUser_SessionRoundTrip(t *testing.T) {
	auth, err := NewSessionAuth(testSecret)
	require.NoError(t, err)

	signinReq := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	signinRec := httptest.NewRecorder()
	require.NoError(t, auth.SignIn(signinRec, signinReq, &users.User{ID: 7, Username: "alice"}))

	cookies := signinRec.Result().Cookies()
	require.NotEmpty(t, cookies)

	var gotID int64
	var gotName string
	handler := auth.CurrentUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = GetUserID(r)
		gotName = GetUsername(r)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, int64(7), gotID)
	assert.Equal(t, "alice", gotName)
}

func TestCurrentUser_NoCookieIsAnonymous(t *testing.T) {
	auth, err := NewSessionAuth(testSecret)
	require.NoError(t, err)

	handler := auth.CurrentUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Zero(t, GetUserID(r))
		assert.Empty(t, GetUsername(r))
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}

// A cookie signed with a different secret must not authenticate, but
// it must not break the request either.
func TestCurrentUser_TamperedCookieIsAnonymous(t *testing.T) {
	other, err := NewSessionAuth(strings.Repeat("x", MinSessionSecretLength))
	require.NoError(t, err)

	signinRec := httptest.NewRecorder()
	require.NoError(t, other.SignIn(signinRec, httptest.NewRequest(http.MethodPost, "/auth/login", nil), &users.User{ID: 9, Username: "mallory"}))

	auth, err := NewSessionAuth(testSecret)
	require.NoError(t, err)

	called := false
	handler := auth.CurrentUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Zero(t, GetUserID(r))
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range signinRec.Result().Cookies() {
		req.AddCookie(c)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, called, "invalid cookies degrade to anonymous, they do not error")
}

func TestSignOut_ExpiresCookie(t *testing.T) {
	auth, err := NewSessionAuth(testSecret)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, auth.SignOut(rec, httptest.NewRequest(http.MethodPost, "/auth/logout", nil)))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, SessionName, cookies[0].Name)
	assert.Negative(t, cookies[0].MaxAge)
}
