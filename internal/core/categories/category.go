package categories

import "time"

// Category groups posts under a slug-addressed topic.
// Categories are created by administrators (seeded via migrations);
// the application only reads them. Unpublishing a category hides
// every post in it from the public feeds without touching the posts.
type Category struct {
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	Title       string    `json:"title" db:"title"`
	Slug        string    `json:"slug" db:"slug"`
	Description string    `json:"description,omitempty" db:"description"`
	ID          int64     `json:"id" db:"id"`
	IsPublished bool      `json:"isPublished" db:"is_published"`
}
