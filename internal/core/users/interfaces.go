package users

import "context"

// Repository defines the interface for user data persistence
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	Update(ctx context.Context, user *User) (*User, error)
}

// Service defines the interface for account business logic
type Service interface {
	// Register creates a new account with a bcrypt-hashed password.
	Register(ctx context.Context, req RegisterRequest) (*User, error)

	// Authenticate verifies a username/password pair and returns
	// the matching user, or ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, password string) (*User, error)

	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)

	// UpdateProfile edits the acting user's own profile. The path
	// username must resolve to the actor, otherwise ErrUserNotFound.
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*User, error)
}
