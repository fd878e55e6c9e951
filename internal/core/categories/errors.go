package categories

import "errors"

// ErrCategoryNotFound is returned when no category exists for a slug,
// or when the category exists but is unpublished. Unpublished
// categories are indistinguishable from missing ones to callers.
var ErrCategoryNotFound = errors.New("category not found")
