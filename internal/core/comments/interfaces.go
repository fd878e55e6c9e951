package comments

import "context"

// Repository defines the interface for comment data persistence
type Repository interface {
	Create(ctx context.Context, comment *Comment) (*Comment, error)

	// GetByID retrieves a comment with its author's username joined in
	GetByID(ctx context.Context, id int64) (*Comment, error)

	Update(ctx context.Context, comment *Comment) (*Comment, error)
	Delete(ctx context.Context, id int64) error

	// ListByPost returns all comments on a post ordered by creation
	// time ascending, each with its author's username joined in.
	ListByPost(ctx context.Context, postID int64) ([]*Comment, error)
}

// PostFinder is the narrow view of the post store this package needs:
// creating a comment requires the parent post to exist.
type PostFinder interface {
	Exists(ctx context.Context, postID int64) (bool, error)
}

// Service defines the interface for comment business logic
type Service interface {
	// Create attaches a new comment by the acting user to a post.
	// Fails with ErrPostNotFound when the post does not exist.
	Create(ctx context.Context, req CreateRequest) (*Comment, error)

	GetByID(ctx context.Context, id int64) (*Comment, error)

	// Update edits a comment's text. Only the comment's author may
	// edit; a foreign actor gets a Denied result, never an error.
	Update(ctx context.Context, req UpdateRequest) (*MutationResult, error)

	// Delete removes a comment under the same guard as Update.
	Delete(ctx context.Context, actorID, commentID int64) (*MutationResult, error)
}
