package users

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// Usernames: alphanumeric plus ._- with an alphanumeric first rune,
// 3-150 characters. Matches what the registration form accepts.
var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

const minPasswordLength = 8

type userService struct {
	repo Repository
}

// NewService creates a new user service
func NewService(repo Repository) Service {
	return &userService{repo: repo}
}

// Register creates a new account with a hashed password
func (s *userService) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	if err := validateRegisterRequest(req); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &User{
		Username:     strings.TrimSpace(strings.ToLower(req.Username)),
		Email:        strings.TrimSpace(req.Email),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		PasswordHash: string(hash),
	}

	// Repository maps the unique constraint to ErrUsernameTaken
	return s.repo.Create(ctx, user)
}

// Authenticate verifies a username/password pair
func (s *userService) Authenticate(ctx context.Context, username, password string) (*User, error) {
	username = strings.TrimSpace(strings.ToLower(username))
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			// Unknown user reads the same as a wrong password
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}

	return user, nil
}

// GetByID retrieves a user by primary key
func (s *userService) GetByID(ctx context.Context, id int64) (*User, error) {
	if id == 0 {
		return nil, ErrUserNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// GetByUsername retrieves a user by username
func (s *userService) GetByUsername(ctx context.Context, username string) (*User, error) {
	username = strings.TrimSpace(strings.ToLower(username))
	if username == "" {
		return nil, ErrUserNotFound
	}
	return s.repo.GetByUsername(ctx, username)
}

// UpdateProfile edits the acting user's own profile. The lookup is
// strict: if the path username does not belong to the actor the
// profile does not resolve at all (not-found, not forbidden).
func (s *userService) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*User, error) {
	user, err := s.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	if user.ID != req.ActorID {
		return nil, ErrUserNotFound
	}

	if email := strings.TrimSpace(req.Email); email != "" && !strings.Contains(email, "@") {
		return nil, NewValidationError("email", "invalid email address")
	}

	user.Email = strings.TrimSpace(req.Email)
	user.FirstName = strings.TrimSpace(req.FirstName)
	user.LastName = strings.TrimSpace(req.LastName)

	return s.repo.Update(ctx, user)
}

func validateRegisterRequest(req RegisterRequest) error {
	username := strings.TrimSpace(strings.ToLower(req.Username))

	if username == "" {
		return NewValidationError("username", "username is required")
	}

	if n := utf8.RuneCountInString(username); n < 3 || n > 150 {
		return NewValidationError("username", "username must be between 3 and 150 characters")
	}

	if !usernameRegex.MatchString(username) {
		return NewValidationError("username", "must start with a letter or digit and contain only letters, digits, dots, hyphens, and underscores")
	}

	if len(req.Password) < minPasswordLength {
		return NewValidationError("password", fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	if email := strings.TrimSpace(req.Email); email != "" && !strings.Contains(email, "@") {
		return NewValidationError("email", "invalid email address")
	}

	return nil
}
