package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"Blogicum/internal/core/categories"
)

type postgresCategoryRepo struct {
	db *sql.DB
}

// NewCategoryRepository creates a new PostgreSQL category repository
func NewCategoryRepository(db *sql.DB) categories.Repository {
	return &postgresCategoryRepo{db: db}
}

// GetBySlug retrieves a category by slug regardless of publish state
func (r *postgresCategoryRepo) GetBySlug(ctx context.Context, slug string) (*categories.Category, error) {
	category := &categories.Category{}
	query := `
		SELECT id, title, slug, description, is_published, created_at
		FROM categories
		WHERE slug = $1`

	err := r.db.QueryRowContext(ctx, query, slug).
		Scan(&category.ID, &category.Title, &category.Slug,
			&category.Description, &category.IsPublished, &category.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, categories.ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category by slug: %w", err)
	}

	return category, nil
}

// List returns all published categories ordered by title
func (r *postgresCategoryRepo) List(ctx context.Context) ([]*categories.Category, error) {
	query := `
		SELECT id, title, slug, description, is_published, created_at
		FROM categories
		WHERE is_published
		ORDER BY title ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	result := make([]*categories.Category, 0)
	for rows.Next() {
		category := &categories.Category{}
		if err := rows.Scan(&category.ID, &category.Title, &category.Slug,
			&category.Description, &category.IsPublished, &category.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		result = append(result, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}

	return result, nil
}
