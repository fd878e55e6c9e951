package posts

import (
	"context"
	"time"

	"Blogicum/internal/core/categories"
	"Blogicum/internal/core/users"
)

// Repository defines the interface for post data persistence.
// Every listing method returns posts ordered by publication timestamp
// descending with ascending title as the tie-break, each with its
// author's username, category attributes, and live comment count
// joined in. The visible variants take the reference instant as a
// parameter so the publish cutoff is always the caller's "now".
type Repository interface {
	Create(ctx context.Context, post *Post) (*Post, error)
	GetByID(ctx context.Context, id int64) (*Post, error)
	Update(ctx context.Context, post *Post) (*Post, error)
	Delete(ctx context.Context, id int64) error

	// Exists reports whether a post row exists for the id. Used by
	// the comment service before attaching a comment.
	Exists(ctx context.Context, id int64) (bool, error)

	// ListVisible returns the publicly visible slice of the home feed.
	ListVisible(ctx context.Context, now time.Time, limit, offset int) ([]*Post, error)
	CountVisible(ctx context.Context, now time.Time) (int, error)

	// ListVisibleByCategory narrows ListVisible to one category.
	ListVisibleByCategory(ctx context.Context, categoryID int64, now time.Time, limit, offset int) ([]*Post, error)
	CountVisibleByCategory(ctx context.Context, categoryID int64, now time.Time) (int, error)

	// ListByAuthor returns every post by the author with no
	// visibility filter: a profile shows drafts and future-dated
	// posts alongside published ones.
	ListByAuthor(ctx context.Context, authorID int64, limit, offset int) ([]*Post, error)
	CountByAuthor(ctx context.Context, authorID int64) (int, error)
}

// Service defines the interface for post business logic
type Service interface {
	// ListHome returns one page of the public home feed as of now.
	ListHome(ctx context.Context, now time.Time, page int) (*Page, error)

	// ListByCategory resolves a published category by slug and
	// returns one page of its public feed plus the category itself.
	// Missing and unpublished categories both yield
	// categories.ErrCategoryNotFound.
	ListByCategory(ctx context.Context, slug string, now time.Time, page int) (*Page, *categories.Category, error)

	// ListByAuthor resolves a user by username and returns one page
	// of all their posts, published or not, plus the profile user.
	ListByAuthor(ctx context.Context, username string, page int) (*Page, *users.User, error)

	// GetDetail fetches a post by id regardless of its publish
	// state, together with its comments in insertion order.
	GetDetail(ctx context.Context, postID int64) (*Detail, error)

	// Create persists a new post authored by the acting user.
	Create(ctx context.Context, req CreateRequest) (*Post, error)

	// Update edits a post under the ownership guard; the author is
	// re-stamped to the acting user (a no-op, since the guard
	// already required the actor to be the author). Foreign actors
	// get a Denied result, never an error.
	Update(ctx context.Context, req UpdateRequest) (*MutationResult, error)

	// Delete removes a post under the same guard as Update.
	Delete(ctx context.Context, actorID, postID int64) (*MutationResult, error)
}
