package post

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/tpdoyle87/tomanddeb-sub001/internal/domain/user"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, p *Post) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockRepository) Get(ctx context.Context, id uuid.UUID) (*Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Post), args.Error(1)
}

func (m *MockRepository) GetBySlug(ctx context.Context, kind Kind, slug string) (*Post, error) {
	args := m.Called(ctx, kind, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Post), args.Error(1)
}

func (m *MockRepository) ListPublished(ctx context.Context, filter Filter) ([]Post, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]Post), args.Error(1)
}

func (m *MockRepository) ListAll(ctx context.Context, authorID *uuid.UUID, limit, offset int) ([]Post, error) {
	args := m.Called(ctx, authorID, limit, offset)
	return args.Get(0).([]Post), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, p *Post) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Ten Days in Hanoi", "ten-days-in-hanoi"},
		{"  Packing — what we ACTUALLY brought!  ", "packing-what-we-actually-brought"},
		{"北京 2024", "2024"},
		{"---", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), tt.in)
	}
}

func TestService_Create_DefaultsAndSlug(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())
	author := user.User{ID: uuid.New(), Role: user.RoleAuthor}

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *Post) bool {
		return p.Kind == KindPost && p.Slug == "ten-days-in-hanoi" &&
			p.Status == StatusDraft && p.AuthorID == author.ID
	})).Return(nil)

	p, err := service.Create(context.Background(), author, Draft{
		Title: "Ten Days in Hanoi",
		Body:  "We arrived by night train...",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusDraft, p.Status)
	mockRepo.AssertExpectations(t)
}

func TestService_Create_Invalid(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())
	author := user.User{ID: uuid.New(), Role: user.RoleAuthor}

	_, err := service.Create(context.Background(), author, Draft{Title: "", Body: "x"})
	assert.ErrorIs(t, err, ErrInvalidData)

	_, err = service.Create(context.Background(), author, Draft{Title: "x", Body: "y", Kind: Kind("newsletter")})
	assert.ErrorIs(t, err, ErrInvalidData)
}

func TestService_Update_OwnershipRules(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	owner := user.User{ID: uuid.New(), Role: user.RoleAuthor}
	otherAuthor := user.User{ID: uuid.New(), Role: user.RoleAuthor}
	editor := user.User{ID: uuid.New(), Role: user.RoleEditor}

	existing := &Post{ID: uuid.New(), AuthorID: owner.ID, Title: "Old", Body: "old", Status: StatusDraft}
	mockRepo.On("Get", mock.Anything, existing.ID).Return(existing, nil)

	// Another author cannot touch it.
	_, err := service.Update(context.Background(), otherAuthor, existing.ID, Draft{Title: "New", Body: "new"})
	assert.ErrorIs(t, err, ErrNotOwner)

	// An editor can.
	mockRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
	_, err = service.Update(context.Background(), editor, existing.ID, Draft{Title: "New", Body: "new"})
	assert.NoError(t, err)

	// So can the owner.
	_, err = service.Update(context.Background(), owner, existing.ID, Draft{Title: "Newer", Body: "newer"})
	assert.NoError(t, err)
}

func TestService_Publish(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())
	owner := user.User{ID: uuid.New(), Role: user.RoleAuthor}

	draft := &Post{ID: uuid.New(), AuthorID: owner.ID, Title: "T", Body: "b", Status: StatusDraft}
	mockRepo.On("Get", mock.Anything, draft.ID).Return(draft, nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *Post) bool {
		return p.Status == StatusPublished && p.PublishedAt != nil
	})).Return(nil)

	p, err := service.Publish(context.Background(), owner, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPublished, p.Status)
}

func TestService_GetPublishedBySlug_HidesDrafts(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("GetBySlug", mock.Anything, KindPost, "hidden-draft").
		Return(&Post{Slug: "hidden-draft", Status: StatusDraft}, nil)

	_, err := service.GetPublishedBySlug(context.Background(), KindPost, "hidden-draft")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_ListForActor(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	author := user.User{ID: uuid.New(), Role: user.RoleAuthor}
	editor := user.User{ID: uuid.New(), Role: user.RoleEditor}

	mockRepo.On("ListAll", mock.Anything, &author.ID, 20, 0).Return([]Post{}, nil).Once()
	_, err := service.ListForActor(context.Background(), author, 0, 0)
	require.NoError(t, err)

	mockRepo.On("ListAll", mock.Anything, (*uuid.UUID)(nil), 20, 0).Return([]Post{}, nil).Once()
	_, err = service.ListForActor(context.Background(), editor, 0, 0)
	require.NoError(t, err)

	mockRepo.AssertExpectations(t)
}
