package users

import (
	"errors"
	"fmt"
)

// Sentinel errors for account operations
var (
	// ErrUserNotFound is returned when no user matches the given
	// id or username. Profile edits by anyone other than the
	// profile's owner also surface as not-found: the lookup is
	// scoped to the acting user, so foreign profiles simply do not
	// resolve.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when registering with a
	// username that already exists.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials is returned on login when the username
	// is unknown or the password does not match. The two cases are
	// deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ValidationError represents a validation error with field context.
// Its message is safe to show back on the form.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (%s): %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}
