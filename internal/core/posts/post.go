package posts

import (
	"time"

	"Blogicum/internal/core/comments"
)

// PostsPerPage is the fixed page size for every post listing.
const PostsPerPage = 10

// Post represents a blog post as read from the database. Author and
// category attributes are joined in by the repository; CommentCount
// is computed live per query, never cached in a column.
type Post struct {
	PubDate           time.Time  `json:"pubDate" db:"pub_date"`
	CreatedAt         time.Time  `json:"createdAt" db:"created_at"`
	CategoryID        *int64     `json:"categoryId,omitempty" db:"category_id"`
	CategoryTitle     *string    `json:"categoryTitle,omitempty" db:"category_title"`
	CategorySlug      *string    `json:"categorySlug,omitempty" db:"category_slug"`
	CategoryPublished *bool      `json:"-" db:"category_is_published"`
	Title             string     `json:"title" db:"title"`
	Body              string     `json:"body" db:"body"`
	AuthorUsername    string     `json:"authorUsername" db:"author_username"`
	ID                int64      `json:"id" db:"id"`
	AuthorID          int64      `json:"authorId" db:"author_id"`
	CommentCount      int        `json:"commentCount" db:"comment_count"`
	IsPublished       bool       `json:"isPublished" db:"is_published"`
}

// Page is a bounded slice of a post listing plus paginator metadata.
type Page struct {
	Posts      []*Post `json:"posts"`
	Number     int     `json:"number"`
	TotalPages int     `json:"totalPages"`
	TotalCount int     `json:"totalCount"`
}

// HasNext reports whether a later page exists.
func (p *Page) HasNext() bool { return p.Number < p.TotalPages }

// HasPrev reports whether an earlier page exists.
func (p *Page) HasPrev() bool { return p.Number > 1 }

// NextNumber returns the following page number (only meaningful when
// HasNext is true).
func (p *Page) NextNumber() int { return p.Number + 1 }

// PrevNumber returns the preceding page number (only meaningful when
// HasPrev is true).
func (p *Page) PrevNumber() int { return p.Number - 1 }

// Detail is everything the post detail page renders: the post itself
// (no visibility filter applies to direct-id lookups), its comments in
// insertion order, and an empty comment form descriptor.
type Detail struct {
	Post     *Post               `json:"post"`
	Comments []*comments.Comment `json:"comments"`
	Form     comments.Form       `json:"form"`
}

// CreateRequest represents input for creating a post. ActorID is
// derived from the session, never from the client.
type CreateRequest struct {
	PubDate     time.Time `json:"pubDate"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	CategoryID  *int64    `json:"categoryId,omitempty"`
	ActorID     int64     `json:"-"`
	IsPublished bool      `json:"isPublished"`
}

// UpdateRequest represents input for editing a post.
type UpdateRequest struct {
	PubDate     time.Time `json:"pubDate"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	CategoryID  *int64    `json:"categoryId,omitempty"`
	PostID      int64     `json:"postId"`
	ActorID     int64     `json:"-"`
	IsPublished bool      `json:"isPublished"`
}

// MutationResult reports the outcome of a guarded post mutation.
// Denied mutations are not errors: the post is left untouched and the
// caller redirects to its detail page.
type MutationResult struct {
	Post   *Post
	Denied bool
}
