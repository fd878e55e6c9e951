package comments

import (
	"context"
	"strings"

	"Blogicum/internal/core/ownership"
)

type commentService struct {
	repo  Repository
	posts PostFinder
}

// NewService creates a new comment service
func NewService(repo Repository, posts PostFinder) Service {
	return &commentService{repo: repo, posts: posts}
}

// Create attaches a new comment to an existing post
func (s *commentService) Create(ctx context.Context, req CreateRequest) (*Comment, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ErrEmptyText
	}

	exists, err := s.posts.Exists(ctx, req.PostID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrPostNotFound
	}

	comment := &Comment{
		Text:     text,
		PostID:   req.PostID,
		AuthorID: req.ActorID,
	}

	return s.repo.Create(ctx, comment)
}

// GetByID retrieves a comment by primary key
func (s *commentService) GetByID(ctx context.Context, id int64) (*Comment, error) {
	return s.repo.GetByID(ctx, id)
}

// Update edits a comment's text under the ownership guard
func (s *commentService) Update(ctx context.Context, req UpdateRequest) (*MutationResult, error) {
	comment, err := s.repo.GetByID(ctx, req.CommentID)
	if err != nil {
		return nil, err
	}

	if !ownership.CanMutate(req.ActorID, comment.AuthorID) {
		return &MutationResult{Comment: comment, Denied: true}, nil
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ErrEmptyText
	}

	comment.Text = text
	updated, err := s.repo.Update(ctx, comment)
	if err != nil {
		return nil, err
	}

	return &MutationResult{Comment: updated}, nil
}

// Delete removes a comment under the ownership guard
func (s *commentService) Delete(ctx context.Context, actorID, commentID int64) (*MutationResult, error) {
	comment, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	if !ownership.CanMutate(actorID, comment.AuthorID) {
		return &MutationResult{Comment: comment, Denied: true}, nil
	}

	if err := s.repo.Delete(ctx, commentID); err != nil {
		return nil, err
	}

	return &MutationResult{Comment: comment}, nil
}
