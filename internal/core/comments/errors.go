package comments

import "errors"

var (
	// ErrCommentNotFound is returned when no comment exists for an id
	ErrCommentNotFound = errors.New("comment not found")

	// ErrPostNotFound is returned when commenting on a post that
	// does not exist
	ErrPostNotFound = errors.New("post not found")

	// ErrEmptyText is returned when a comment body is blank
	ErrEmptyText = errors.New("comment text must not be empty")
)
