package posts

import (
	"time"

	"Blogicum/internal/core/categories"
)

// IsPubliclyVisible reports whether a post appears in the public
// feeds at the given instant: it must be published, its publication
// timestamp must not lie in the future, and its category (if any)
// must itself be published. The predicate is evaluated per request,
// so a post whose category is unpublished drops out of the feeds
// immediately and a future-dated post surfaces the moment its
// pub date passes.
//
// The SQL listing queries express the same predicate; this function
// is the reference form used by the service and the tests.
func IsPubliclyVisible(p *Post, now time.Time) bool {
	if !p.IsPublished {
		return false
	}
	if p.PubDate.After(now) {
		return false
	}
	if p.CategoryPublished != nil && !*p.CategoryPublished {
		return false
	}
	return true
}

// IsCategoryVisible reports whether a category may be browsed
// publicly. Unpublished categories behave as if they do not exist.
func IsCategoryVisible(c *categories.Category) bool {
	return c.IsPublished
}
