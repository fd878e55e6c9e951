package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"Blogicum/internal/core/posts"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// postSelect is the shared projection for every post query: author
// username and category attributes joined in, comment_count computed
// live from the comments table. Both feed queries and the detail
// lookup read through it so a post always carries the same shape.
const postSelect = `
	SELECT p.id, p.title, p.body, p.author_id, u.username,
	       p.category_id, c.title, c.slug, c.is_published,
	       p.pub_date, p.is_published, p.created_at,
	       (SELECT COUNT(*) FROM comments cm WHERE cm.post_id = p.id) AS comment_count
	FROM posts p
	JOIN users u ON u.id = p.author_id
	LEFT JOIN categories c ON c.id = p.category_id`

// visibleWhere is the SQL form of posts.IsPubliclyVisible. The
// reference instant arrives as a bind parameter on every call so the
// publish cutoff is never frozen at process start.
const visibleWhere = `p.is_published AND p.pub_date <= %s AND (p.category_id IS NULL OR c.is_published)`

// feedOrder sorts newest first with the title as a stable tie-break.
const feedOrder = ` ORDER BY p.pub_date DESC, p.title ASC`

// Create inserts a new post
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	query := `
		INSERT INTO posts (title, body, author_id, category_id, pub_date, is_published)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		post.Title, post.Body, post.AuthorID, post.CategoryID, post.PubDate, post.IsPublished).
		Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return r.GetByID(ctx, post.ID)
}

// GetByID retrieves a post by primary key with no visibility filter
func (r *postgresPostRepo) GetByID(ctx context.Context, id int64) (*posts.Post, error) {
	row := r.db.QueryRowContext(ctx, postSelect+` WHERE p.id = $1`, id)

	post, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

// Update rewrites a post's mutable columns
func (r *postgresPostRepo) Update(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	query := `
		UPDATE posts
		SET title = $2, body = $3, author_id = $4, category_id = $5,
		    pub_date = $6, is_published = $7
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		post.ID, post.Title, post.Body, post.AuthorID, post.CategoryID,
		post.PubDate, post.IsPublished)
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	if affected == 0 {
		return nil, posts.ErrPostNotFound
	}

	return r.GetByID(ctx, post.ID)
}

// Delete removes a post; comments go with it via ON DELETE CASCADE
func (r *postgresPostRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if affected == 0 {
		return posts.ErrPostNotFound
	}

	return nil
}

// Exists reports whether a post row exists for the id
func (r *postgresPostRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM posts WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check post existence: %w", err)
	}
	return exists, nil
}

// ListVisible returns one window of the public home feed
func (r *postgresPostRepo) ListVisible(ctx context.Context, now time.Time, limit, offset int) ([]*posts.Post, error) {
	query := postSelect + ` WHERE ` + fmt.Sprintf(visibleWhere, "$1") + feedOrder + ` LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, query, now, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list visible posts: %w", err)
	}
	defer rows.Close()

	return collectPosts(rows)
}

// CountVisible counts the public home feed
func (r *postgresPostRepo) CountVisible(ctx context.Context, now time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM posts p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE ` + fmt.Sprintf(visibleWhere, "$1")

	var count int
	if err := r.db.QueryRowContext(ctx, query, now).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count visible posts: %w", err)
	}
	return count, nil
}

// ListVisibleByCategory narrows the public feed to one category
func (r *postgresPostRepo) ListVisibleByCategory(ctx context.Context, categoryID int64, now time.Time, limit, offset int) ([]*posts.Post, error) {
	query := postSelect + ` WHERE p.category_id = $1 AND ` + fmt.Sprintf(visibleWhere, "$2") + feedOrder + ` LIMIT $3 OFFSET $4`

	rows, err := r.db.QueryContext(ctx, query, categoryID, now, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list category posts: %w", err)
	}
	defer rows.Close()

	return collectPosts(rows)
}

// CountVisibleByCategory counts one category's public feed
func (r *postgresPostRepo) CountVisibleByCategory(ctx context.Context, categoryID int64, now time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM posts p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.category_id = $1 AND ` + fmt.Sprintf(visibleWhere, "$2")

	var count int
	if err := r.db.QueryRowContext(ctx, query, categoryID, now).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count category posts: %w", err)
	}
	return count, nil
}

// ListByAuthor returns one window of everything a user wrote,
// drafts and future-dated posts included
func (r *postgresPostRepo) ListByAuthor(ctx context.Context, authorID int64, limit, offset int) ([]*posts.Post, error) {
	query := postSelect + ` WHERE p.author_id = $1` + feedOrder + ` LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, query, authorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list author posts: %w", err)
	}
	defer rows.Close()

	return collectPosts(rows)
}

// CountByAuthor counts every post a user wrote
func (r *postgresPostRepo) CountByAuthor(ctx context.Context, authorID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM posts WHERE author_id = $1`, authorID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count author posts: %w", err)
	}
	return count, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPost(row rowScanner) (*posts.Post, error) {
	post := &posts.Post{}
	var categoryID sql.NullInt64
	var categoryTitle, categorySlug sql.NullString
	var categoryPublished sql.NullBool

	err := row.Scan(
		&post.ID, &post.Title, &post.Body, &post.AuthorID, &post.AuthorUsername,
		&categoryID, &categoryTitle, &categorySlug, &categoryPublished,
		&post.PubDate, &post.IsPublished, &post.CreatedAt, &post.CommentCount)
	if err != nil {
		return nil, err
	}

	if categoryID.Valid {
		post.CategoryID = &categoryID.Int64
		post.CategoryTitle = &categoryTitle.String
		post.CategorySlug = &categorySlug.String
		post.CategoryPublished = &categoryPublished.Bool
	}

	return post, nil
}

func collectPosts(rows *sql.Rows) ([]*posts.Post, error) {
	result := make([]*posts.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		result = append(result, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read posts: %w", err)
	}
	return result, nil
}
