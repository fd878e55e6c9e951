package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"Blogicum/internal/core/users"
)

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) users.Repository {
	return &postgresUserRepo{db: db}
}

// Create inserts a new user into the users table
func (r *postgresUserRepo) Create(ctx context.Context, user *users.User) (*users.User, error) {
	query := `
		INSERT INTO users (username, email, first_name, last_name, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		user.Username, user.Email, user.FirstName, user.LastName, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		// Check for unique constraint violations
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "users_username_key") {
			return nil, users.ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetByID retrieves a user by primary key
func (r *postgresUserRepo) GetByID(ctx context.Context, id int64) (*users.User, error) {
	user := &users.User{}
	query := `
		SELECT id, username, email, first_name, last_name, password_hash, created_at
		FROM users
		WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&user.ID, &user.Username, &user.Email, &user.FirstName,
			&user.LastName, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// GetByUsername retrieves a user by username
func (r *postgresUserRepo) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	user := &users.User{}
	query := `
		SELECT id, username, email, first_name, last_name, password_hash, created_at
		FROM users
		WHERE username = $1`

	err := r.db.QueryRowContext(ctx, query, username).
		Scan(&user.ID, &user.Username, &user.Email, &user.FirstName,
			&user.LastName, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user, nil
}

// Update rewrites a user's profile fields
func (r *postgresUserRepo) Update(ctx context.Context, user *users.User) (*users.User, error) {
	query := `
		UPDATE users
		SET email = $2, first_name = $3, last_name = $4
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		user.ID, user.Email, user.FirstName, user.LastName)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if affected == 0 {
		return nil, users.ErrUserNotFound
	}

	return user, nil
}
