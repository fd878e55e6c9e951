package post

import (
	"net/http"
	"strconv"
	"time"

	"Blogicum/internal/core/posts"
)

// pubDateLayout matches the browser's datetime-local input format
const pubDateLayout = "2006-01-02T15:04"

// postForm holds the parsed fields of the post create/edit form
type postForm struct {
	PubDate     time.Time
	Title       string
	Body        string
	CategoryID  *int64
	IsPublished bool
}

// parsePostForm decodes the create/edit form body. An empty pub_date
// stays zero; the service defaults it to the current time on create.
func parsePostForm(r *http.Request) (postForm, error) {
	if err := r.ParseForm(); err != nil {
		return postForm{}, posts.NewValidationError("form", "invalid form body")
	}

	form := postForm{
		Title:       r.PostFormValue("title"),
		Body:        r.PostFormValue("body"),
		IsPublished: r.PostFormValue("is_published") != "",
	}

	if raw := r.PostFormValue("category_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return postForm{}, posts.NewValidationError("category_id", "invalid category")
		}
		form.CategoryID = &id
	}

	if raw := r.PostFormValue("pub_date"); raw != "" {
		pubDate, err := time.ParseInLocation(pubDateLayout, raw, time.UTC)
		if err != nil {
			return postForm{}, posts.NewValidationError("pub_date", "invalid publication date")
		}
		form.PubDate = pubDate
	}

	return form, nil
}
