package posts

import (
	"context"
	"strings"
	"time"

	"Blogicum/internal/core/categories"
	"Blogicum/internal/core/comments"
	"Blogicum/internal/core/ownership"
	"Blogicum/internal/core/users"
)

type postService struct {
	repo       Repository
	categories categories.Repository
	users      users.Repository
	comments   comments.Repository
}

// NewService creates a new post service
func NewService(repo Repository, categoryRepo categories.Repository, userRepo users.Repository, commentRepo comments.Repository) Service {
	return &postService{
		repo:       repo,
		categories: categoryRepo,
		users:      userRepo,
		comments:   commentRepo,
	}
}

// ListHome returns one page of the public home feed
func (s *postService) ListHome(ctx context.Context, now time.Time, page int) (*Page, error) {
	count, err := s.repo.CountVisible(ctx, now)
	if err != nil {
		return nil, err
	}

	offset, totalPages, err := paginate(count, page)
	if err != nil {
		return nil, err
	}

	posts, err := s.repo.ListVisible(ctx, now, PostsPerPage, offset)
	if err != nil {
		return nil, err
	}

	return &Page{Posts: posts, Number: page, TotalPages: totalPages, TotalCount: count}, nil
}

// ListByCategory returns one page of a published category's feed
func (s *postService) ListByCategory(ctx context.Context, slug string, now time.Time, page int) (*Page, *categories.Category, error) {
	category, err := s.categories.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}

	// Unpublished categories are hidden, not forbidden
	if !IsCategoryVisible(category) {
		return nil, nil, categories.ErrCategoryNotFound
	}

	count, err := s.repo.CountVisibleByCategory(ctx, category.ID, now)
	if err != nil {
		return nil, nil, err
	}

	offset, totalPages, err := paginate(count, page)
	if err != nil {
		return nil, nil, err
	}

	posts, err := s.repo.ListVisibleByCategory(ctx, category.ID, now, PostsPerPage, offset)
	if err != nil {
		return nil, nil, err
	}

	return &Page{Posts: posts, Number: page, TotalPages: totalPages, TotalCount: count}, category, nil
}

// ListByAuthor returns one page of everything a user has written.
// No visibility filter applies: the profile page is where an author
// sees their own drafts and scheduled posts.
func (s *postService) ListByAuthor(ctx context.Context, username string, page int) (*Page, *users.User, error) {
	profile, err := s.users.GetByUsername(ctx, strings.TrimSpace(strings.ToLower(username)))
	if err != nil {
		return nil, nil, err
	}

	count, err := s.repo.CountByAuthor(ctx, profile.ID)
	if err != nil {
		return nil, nil, err
	}

	offset, totalPages, err := paginate(count, page)
	if err != nil {
		return nil, nil, err
	}

	posts, err := s.repo.ListByAuthor(ctx, profile.ID, PostsPerPage, offset)
	if err != nil {
		return nil, nil, err
	}

	return &Page{Posts: posts, Number: page, TotalPages: totalPages, TotalCount: count}, profile, nil
}

// GetDetail fetches a post by id with its comments. Direct-id
// lookups apply no visibility filter, so drafts and future-dated
// posts resolve here even though the feeds hide them.
func (s *postService) GetDetail(ctx context.Context, postID int64) (*Detail, error) {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	postComments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	return &Detail{Post: post, Comments: postComments, Form: comments.Form{}}, nil
}

// Create persists a new post authored by the acting user
func (s *postService) Create(ctx context.Context, req CreateRequest) (*Post, error) {
	if err := validatePostFields(req.Title, req.Body); err != nil {
		return nil, err
	}

	pubDate := req.PubDate
	if pubDate.IsZero() {
		pubDate = time.Now().UTC()
	}

	post := &Post{
		Title:       strings.TrimSpace(req.Title),
		Body:        req.Body,
		AuthorID:    req.ActorID,
		CategoryID:  req.CategoryID,
		PubDate:     pubDate,
		IsPublished: req.IsPublished,
	}

	return s.repo.Create(ctx, post)
}

// Update edits a post under the ownership guard
func (s *postService) Update(ctx context.Context, req UpdateRequest) (*MutationResult, error) {
	post, err := s.repo.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	if !ownership.CanMutate(req.ActorID, post.AuthorID) {
		return &MutationResult{Post: post, Denied: true}, nil
	}

	if err := validatePostFields(req.Title, req.Body); err != nil {
		return nil, err
	}

	post.Title = strings.TrimSpace(req.Title)
	post.Body = req.Body
	post.CategoryID = req.CategoryID
	post.IsPublished = req.IsPublished
	if !req.PubDate.IsZero() {
		post.PubDate = req.PubDate
	}
	// Author re-stamped on every edit; the guard already pinned the
	// actor to the original author
	post.AuthorID = req.ActorID

	updated, err := s.repo.Update(ctx, post)
	if err != nil {
		return nil, err
	}

	return &MutationResult{Post: updated}, nil
}

// Delete removes a post under the ownership guard
func (s *postService) Delete(ctx context.Context, actorID, postID int64) (*MutationResult, error) {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if !ownership.CanMutate(actorID, post.AuthorID) {
		return &MutationResult{Post: post, Denied: true}, nil
	}

	if err := s.repo.Delete(ctx, postID); err != nil {
		return nil, err
	}

	return &MutationResult{Post: post}, nil
}

// paginate converts a row count and 1-based page number into an
// offset. Out-of-range pages fail with ErrPageNotFound; an empty
// result set still has a valid (empty) first page.
func paginate(count, page int) (offset, totalPages int, err error) {
	totalPages = (count + PostsPerPage - 1) / PostsPerPage
	if totalPages == 0 {
		totalPages = 1
	}

	if page < 1 || page > totalPages {
		return 0, 0, ErrPageNotFound
	}

	return (page - 1) * PostsPerPage, totalPages, nil
}

func validatePostFields(title, body string) error {
	if strings.TrimSpace(title) == "" {
		return NewValidationError("title", "title is required")
	}
	if len(title) > 256 {
		return NewValidationError("title", "title must be at most 256 characters")
	}
	if strings.TrimSpace(body) == "" {
		return NewValidationError("body", "body is required")
	}
	return nil
}
