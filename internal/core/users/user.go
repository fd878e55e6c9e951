package users

import "time"

// User represents a registered account. Identity (session handling,
// cookies) lives in the API layer; this core only reads identity and
// stamps author references on posts and comments.
type User struct {
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	FirstName    string    `json:"firstName,omitempty" db:"first_name"`
	LastName     string    `json:"lastName,omitempty" db:"last_name"`
	PasswordHash string    `json:"-" db:"password_hash"`
	ID           int64     `json:"id" db:"id"`
}

// RegisterRequest represents input for creating a new account.
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
}

// UpdateProfileRequest represents input for editing a profile.
// ActorID is derived from the session, never from the client;
// Username is the path parameter of the page being edited.
type UpdateProfileRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	ActorID   int64  `json:"-"`
}
