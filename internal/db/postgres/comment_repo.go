package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"Blogicum/internal/core/comments"
)

type postgresCommentRepo struct {
	db *sql.DB
}

// NewCommentRepository creates a new PostgreSQL comment repository
func NewCommentRepository(db *sql.DB) comments.Repository {
	return &postgresCommentRepo{db: db}
}

const commentSelect = `
	SELECT cm.id, cm.text, cm.post_id, cm.author_id, u.username, cm.created_at
	FROM comments cm
	JOIN users u ON u.id = cm.author_id`

// Create inserts a new comment
func (r *postgresCommentRepo) Create(ctx context.Context, comment *comments.Comment) (*comments.Comment, error) {
	query := `
		INSERT INTO comments (text, post_id, author_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, comment.Text, comment.PostID, comment.AuthorID).
		Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return r.GetByID(ctx, comment.ID)
}

// GetByID retrieves a comment with its author's username
func (r *postgresCommentRepo) GetByID(ctx context.Context, id int64) (*comments.Comment, error) {
	comment := &comments.Comment{}
	err := r.db.QueryRowContext(ctx, commentSelect+` WHERE cm.id = $1`, id).
		Scan(&comment.ID, &comment.Text, &comment.PostID, &comment.AuthorID,
			&comment.AuthorUsername, &comment.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, comments.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment by id: %w", err)
	}

	return comment, nil
}

// Update rewrites a comment's text
func (r *postgresCommentRepo) Update(ctx context.Context, comment *comments.Comment) (*comments.Comment, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE comments SET text = $2 WHERE id = $1`, comment.ID, comment.Text)
	if err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	if affected == 0 {
		return nil, comments.ErrCommentNotFound
	}

	return r.GetByID(ctx, comment.ID)
}

// Delete removes a comment
func (r *postgresCommentRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if affected == 0 {
		return comments.ErrCommentNotFound
	}

	return nil
}

// ListByPost returns all comments on a post in insertion order
func (r *postgresCommentRepo) ListByPost(ctx context.Context, postID int64) ([]*comments.Comment, error) {
	query := commentSelect + ` WHERE cm.post_id = $1 ORDER BY cm.created_at ASC, cm.id ASC`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	result := make([]*comments.Comment, 0)
	for rows.Next() {
		comment := &comments.Comment{}
		if err := rows.Scan(&comment.ID, &comment.Text, &comment.PostID,
			&comment.AuthorID, &comment.AuthorUsername, &comment.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		result = append(result, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read comments: %w", err)
	}

	return result, nil
}
