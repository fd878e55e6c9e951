package categories

import "context"

// Repository defines the interface for category data access.
// Categories are read-only from the application's point of view.
type Repository interface {
	// GetBySlug retrieves a category by its slug regardless of its
	// publish state. Callers decide whether unpublished categories
	// are acceptable (the public feeds treat them as missing).
	GetBySlug(ctx context.Context, slug string) (*Category, error)

	// List returns all published categories ordered by title.
	// Used for navigation rendering.
	List(ctx context.Context) ([]*Category, error)
}
