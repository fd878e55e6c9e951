package posts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"Blogicum/internal/core/categories"
	"Blogicum/internal/core/comments"
	"Blogicum/internal/core/users"
)

// MockPostRepository is a mock implementation of Repository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *Post) (*Post, error) {
	args := m.Called(ctx, post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Post), args.Error(1)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id int64) (*Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Post), args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, post *Post) (*Post, error) {
	args := m.Called(ctx, post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Post), args.Error(1)
}

func (m *MockPostRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) ListVisible(ctx context.Context, now time.Time, limit, offset int) ([]*Post, error) {
	args := m.Called(ctx, now, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Post), args.Error(1)
}

func (m *MockPostRepository) CountVisible(ctx context.Context, now time.Time) (int, error) {
	args := m.Called(ctx, now)
	return args.Int(0), args.Error(1)
}

func (m *MockPostRepository) ListVisibleByCategory(ctx context.Context, categoryID int64, now time.Time, limit, offset int) ([]*Post, error) {
	args := m.Called(ctx, categoryID, now, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Post), args.Error(1)
}

func (m *MockPostRepository) CountVisibleByCategory(ctx context.Context, categoryID int64, now time.Time) (int, error) {
	args := m.Called(ctx, categoryID, now)
	return args.Int(0), args.Error(1)
}

func (m *MockPostRepository) ListByAuthor(ctx context.Context, authorID int64, limit, offset int) ([]*Post, error) {
	args := m.Called(ctx, authorID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Post), args.Error(1)
}

func (m *MockPostRepository) CountByAuthor(ctx context.Context, authorID int64) (int, error) {
	args := m.Called(ctx, authorID)
	return args.Int(0), args.Error(1)
}

// MockCategoryRepository is a mock implementation of categories.Repository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetBySlug(ctx context.Context, slug string) (*categories.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*categories.Category), args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]*categories.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*categories.Category), args.Error(1)
}

// MockUserRepository is a mock implementation of users.Repository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *users.User) (*users.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*users.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *users.User) (*users.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

// MockCommentRepository is a mock implementation of comments.Repository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *comments.Comment) (*comments.Comment, error) {
	args := m.Called(ctx, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*comments.Comment), args.Error(1)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id int64) (*comments.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*comments.Comment), args.Error(1)
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *comments.Comment) (*comments.Comment, error) {
	args := m.Called(ctx, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*comments.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCommentRepository) ListByPost(ctx context.Context, postID int64) ([]*comments.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*comments.Comment), args.Error(1)
}

func newTestService() (Service, *MockPostRepository, *MockCategoryRepository, *MockUserRepository, *MockCommentRepository) {
	postRepo := new(MockPostRepository)
	categoryRepo := new(MockCategoryRepository)
	userRepo := new(MockUserRepository)
	commentRepo := new(MockCommentRepository)
	return NewService(postRepo, categoryRepo, userRepo, commentRepo), postRepo, categoryRepo, userRepo, commentRepo
}

func TestListHome_PaginatesWithFixedPageSize(t *testing.T) {
	svc, postRepo, _, _, _ := newTestService()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	listed := []*Post{{ID: 21}, {ID: 22}}
	postRepo.On("CountVisible", mock.Anything, now).Return(25, nil)
	postRepo.On("ListVisible", mock.Anything, now, PostsPerPage, 20).Return(listed, nil)

	page, err := svc.ListHome(context.Background(), now, 3)
	require.NoError(t, err)

	assert.Equal(t, 3, page.Number)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 25, page.TotalCount)
	assert.Equal(t, listed, page.Posts)
	assert.False(t, page.HasNext())
	assert.True(t, page.HasPrev())
	postRepo.AssertExpectations(t)
}

func TestListHome_PageBeyondLastIsNotFound(t *testing.T) {
	svc, postRepo, _, _, _ := newTestService()
	now := time.Now().UTC()

	postRepo.On("CountVisible", mock.Anything, now).Return(5, nil)

	_, err := svc.ListHome(context.Background(), now, 2)
	assert.ErrorIs(t, err, ErrPageNotFound)
	postRepo.AssertNotCalled(t, "ListVisible", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListHome_FirstPageOfEmptyFeed(t *testing.T) {
	svc, postRepo, _, _, _ := newTestService()
	now := time.Now().UTC()

	postRepo.On("CountVisible", mock.Anything, now).Return(0, nil)
	postRepo.On("ListVisible", mock.Anything, now, PostsPerPage, 0).Return([]*Post{}, nil)

	page, err := svc.ListHome(context.Background(), now, 1)
	require.NoError(t, err)
	assert.Empty(t, page.Posts)
	assert.Equal(t, 1, page.TotalPages)
}

func TestListByCategory_Success(t *testing.T) {
	svc, postRepo, categoryRepo, _, _ := newTestService()
	now := time.Now().UTC()

	news := &categories.Category{ID: 4, Title: "News", Slug: "news", IsPublished: true}
	listed := []*Post{{ID: 1}, {ID: 2}}

	categoryRepo.On("GetBySlug", mock.Anything, "news").Return(news, nil)
	postRepo.On("CountVisibleByCategory", mock.Anything, int64(4), now).Return(2, nil)
	postRepo.On("ListVisibleByCategory", mock.Anything, int64(4), now, PostsPerPage, 0).Return(listed, nil)

	page, category, err := svc.ListByCategory(context.Background(), "news", now, 1)
	require.NoError(t, err)
	assert.Equal(t, news, category)
	assert.Equal(t, listed, page.Posts)
}

func TestListByCategory_UnpublishedCategoryIsNotFound(t *testing.T) {
	svc, postRepo, categoryRepo, _, _ := newTestService()

	hidden := &categories.Category{ID: 9, Slug: "secret", IsPublished: false}
	categoryRepo.On("GetBySlug", mock.Anything, "secret").Return(hidden, nil)

	_, _, err := svc.ListByCategory(context.Background(), "secret", time.Now().UTC(), 1)
	assert.ErrorIs(t, err, categories.ErrCategoryNotFound)
	postRepo.AssertNotCalled(t, "CountVisibleByCategory", mock.Anything, mock.Anything, mock.Anything)
}

func TestListByCategory_MissingCategoryIsNotFound(t *testing.T) {
	svc, _, categoryRepo, _, _ := newTestService()

	categoryRepo.On("GetBySlug", mock.Anything, "gone").Return(nil, categories.ErrCategoryNotFound)

	_, _, err := svc.ListByCategory(context.Background(), "gone", time.Now().UTC(), 1)
	assert.ErrorIs(t, err, categories.ErrCategoryNotFound)
}

// The author feed must bypass the visibility filter entirely: only
// the ListByAuthor repository methods may be touched, and drafts and
// future-dated posts flow through unchanged.
func TestListByAuthor_NoVisibilityFilter(t *testing.T) {
	svc, postRepo, _, userRepo, _ := newTestService()

	alice := &users.User{ID: 7, Username: "alice"}
	draft := &Post{ID: 1, AuthorID: 7, IsPublished: false}
	future := &Post{ID: 2, AuthorID: 7, IsPublished: true, PubDate: time.Now().Add(48 * time.Hour)}

	userRepo.On("GetByUsername", mock.Anything, "alice").Return(alice, nil)
	postRepo.On("CountByAuthor", mock.Anything, int64(7)).Return(2, nil)
	postRepo.On("ListByAuthor", mock.Anything, int64(7), PostsPerPage, 0).Return([]*Post{future, draft}, nil)

	page, profile, err := svc.ListByAuthor(context.Background(), "alice", 1)
	require.NoError(t, err)
	assert.Equal(t, alice, profile)
	assert.Equal(t, []*Post{future, draft}, page.Posts)
	postRepo.AssertNotCalled(t, "ListVisible", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListByAuthor_UnknownUserIsNotFound(t *testing.T) {
	svc, _, _, userRepo, _ := newTestService()

	userRepo.On("GetByUsername", mock.Anything, "ghost").Return(nil, users.ErrUserNotFound)

	_, _, err := svc.ListByAuthor(context.Background(), "ghost", 1)
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}

// Detail lookups apply no visibility filter: a draft resolves fine.
func TestGetDetail_ReturnsDraftWithComments(t *testing.T) {
	svc, postRepo, _, _, commentRepo := newTestService()

	draft := &Post{ID: 5, AuthorID: 7, IsPublished: false, PubDate: time.Now().Add(time.Hour)}
	thread := []*comments.Comment{
		{ID: 1, PostID: 5, Text: "first"},
		{ID: 2, PostID: 5, Text: "second"},
	}

	postRepo.On("GetByID", mock.Anything, int64(5)).Return(draft, nil)
	commentRepo.On("ListByPost", mock.Anything, int64(5)).Return(thread, nil)

	detail, err := svc.GetDetail(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, draft, detail.Post)
	assert.Equal(t, thread, detail.Comments)
	assert.Equal(t, comments.Form{}, detail.Form)
}

func TestGetDetail_MissingPost(t *testing.T) {
	svc, postRepo, _, _, _ := newTestService()

	postRepo.On("GetByID", mock.Anything, int64(404)).Return(nil, ErrPostNotFound)

	_, err := svc.GetDetail(context.Background(), 404)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestCreate_StampsActingUserAsAuthor(t *testing.T) {
	svc, postRepo, _, _, _ := newTestService()

	postRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *Post) bool {
		return p.AuthorID == 7 && p.Title == "Hello" && !p.PubDate.IsZero()
	})).Return(&Post{ID: 1, AuthorID: 7, Title: "Hello"}, nil)

	created, err := svc.Create(context.Background(), CreateRequest{
		Title:       "Hello",
		Body:        "world",
		IsPublished: true,
		ActorID:     7,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.AuthorID)
	postRepo.AssertExpectations(t)
}

func TestCreate_RejectsEmptyTitle(t *testing.T) {
	svc, postRepo, _, _, _ := newTestService()

	_, err := svc.Create(context.Background(), CreateRequest{Title: "  ", Body: "b", ActorID: 7})
	assert.True(t, IsValidationError(err))
	postRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdate_DeniedForForeignActor(t *testing.T) {
	svc, postRepo, _, _, _ := newTestService()

	existing := &Post{ID: 5, AuthorID: 1, Title: "Alice's post"}
	postRepo.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)

	result, err := svc.Update(context.Background(), UpdateRequest{
		PostID:  5,
		Title:   "hijacked",
		Body:    "x",
		ActorID: 2,
	})
	require.NoError(t, err, "a denied edit is not an error")
	assert.True(t, result.Denied)
	assert.Equal(t, existing, result.Post)
	postRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdate_AuthorEditsOwnPost(t *testing.T) {
	svc, postRepo, _, _, _ := newTestService()

	existing := &Post{ID: 5, AuthorID: 7, Title: "old", Body: "old"}
	postRepo.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
	postRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *Post) bool {
		return p.ID == 5 && p.Title == "new" && p.AuthorID == 7
	})).Return(&Post{ID: 5, AuthorID: 7, Title: "new", Body: "new"}, nil)

	result, err := svc.Update(context.Background(), UpdateRequest{
		PostID:      5,
		Title:       "new",
		Body:        "new",
		IsPublished: true,
		ActorID:     7,
	})
	require.NoError(t, err)
	assert.False(t, result.Denied)
	assert.Equal(t, "new", result.Post.Title)
}

func TestDelete_DeniedForForeignActor(t *testing.T) {
	svc, postRepo, _, _, _ := newTestService()

	existing := &Post{ID: 5, AuthorID: 1}
	postRepo.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)

	result, err := svc.Delete(context.Background(), 2, 5)
	require.NoError(t, err)
	assert.True(t, result.Denied)
	postRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDelete_AuthorDeletesOwnPost(t *testing.T) {
	svc, postRepo, _, _, _ := newTestService()

	existing := &Post{ID: 5, AuthorID: 7}
	postRepo.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
	postRepo.On("Delete", mock.Anything, int64(5)).Return(nil)

	result, err := svc.Delete(context.Background(), 7, 5)
	require.NoError(t, err)
	assert.False(t, result.Denied)
	postRepo.AssertExpectations(t)
}

func TestDelete_MissingPost(t *testing.T) {
	svc, postRepo, _, _, _ := newTestService()

	postRepo.On("GetByID", mock.Anything, int64(404)).Return(nil, ErrPostNotFound)

	_, err := svc.Delete(context.Background(), 7, 404)
	assert.ErrorIs(t, err, ErrPostNotFound)
}
