package comments

import "time"

// Comment is a reply attached to a post. Comments carry no publish
// flag: every comment on a post is shown on that post's detail page
// in insertion order.
type Comment struct {
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	Text           string    `json:"text" db:"text"`
	AuthorUsername string    `json:"authorUsername" db:"author_username"`
	ID             int64     `json:"id" db:"id"`
	PostID         int64     `json:"postId" db:"post_id"`
	AuthorID       int64     `json:"authorId" db:"author_id"`
}

// Form is the empty comment-submission descriptor handed to the
// rendering layer alongside a post detail page.
type Form struct {
	Text string `json:"text"`
}

// CreateRequest represents input for creating a comment.
// ActorID is derived from the session, never from the client.
type CreateRequest struct {
	Text    string `json:"text"`
	PostID  int64  `json:"postId"`
	ActorID int64  `json:"-"`
}

// UpdateRequest represents input for editing a comment.
type UpdateRequest struct {
	Text      string `json:"text"`
	CommentID int64  `json:"commentId"`
	ActorID   int64  `json:"-"`
}

// MutationResult reports the outcome of a guarded comment mutation.
// Denied mutations are not errors: the comment is left untouched and
// the caller redirects to the parent post's detail page, which is
// always reachable through Comment.PostID.
type MutationResult struct {
	Comment *Comment
	Denied  bool
}
