package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/huycopper/flashmind/internal/interfaces/mocks"
	"github.com/huycopper/flashmind/internal/models"
)

type commentServiceMocks struct {
	commentRepo *mocks.MockCommentRepository
	deckRepo    *mocks.MockDeckRepository
	userRepo    *mocks.MockUserRepository
}

func newCommentService(t *testing.T) (CommentService, commentServiceMocks) {
	m := commentServiceMocks{
		commentRepo: mocks.NewMockCommentRepository(t),
		deckRepo:    mocks.NewMockDeckRepository(t),
		userRepo:    mocks.NewMockUserRepository(t),
	}
	return NewCommentService(m.commentRepo, m.deckRepo, m.userRepo, zap.NewNop()), m
}

func TestCommentService_ListComments(t *testing.T) {
	ctx := context.Background()
	deckID := uuid.New()
	publicDeck := &models.Deck{ID: deckID, OwnerID: uuid.New(), IsPublic: true}

	t.Run("RegularUserSkipsHiddenComments", func(t *testing.T) {
		svc, m := newCommentService(t)
		m.deckRepo.On("GetByID", ctx, deckID).Return(publicDeck, nil).Once()
		m.commentRepo.On("ListByDeck", ctx, deckID, false).Return([]models.Comment{}, nil).Once()

		_, err := svc.ListComments(ctx, models.Caller{ID: uuid.New()}, deckID)
		assert.NoError(t, err)
	})

	t.Run("AdminSeesHiddenComments", func(t *testing.T) {
		svc, m := newCommentService(t)
		m.deckRepo.On("GetByID", ctx, deckID).Return(publicDeck, nil).Once()
		m.commentRepo.On("ListByDeck", ctx, deckID, true).Return([]models.Comment{}, nil).Once()

		_, err := svc.ListComments(ctx, models.Caller{ID: uuid.New(), IsAdmin: true}, deckID)
		assert.NoError(t, err)
	})

	t.Run("InvisibleDeckMaskedAsNotFound", func(t *testing.T) {
		svc, m := newCommentService(t)
		m.deckRepo.On("GetByID", ctx, deckID).
			Return(&models.Deck{ID: deckID, OwnerID: uuid.New(), IsPublic: false}, nil).Once()

		_, err := svc.ListComments(ctx, models.Caller{ID: uuid.New()}, deckID)
		assert.ErrorIs(t, err, models.ErrDeckNotFound)
	})
}

func TestCommentService_AddComment(t *testing.T) {
	ctx := context.Background()
	deckID := uuid.New()
	authorID := uuid.New()
	author := models.Caller{ID: authorID}
	publicDeck := &models.Deck{ID: deckID, OwnerID: uuid.New(), IsPublic: true}

	t.Run("PostsUnderCurrentDisplayName", func(t *testing.T) {
		svc, m := newCommentService(t)
		m.deckRepo.On("GetByID", ctx, deckID).Return(publicDeck, nil).Once()
		m.userRepo.On("GetByID", ctx, authorID).
			Return(&models.User{ID: authorID, DisplayName: "Carol"}, nil).Once()
		m.commentRepo.On("Create", ctx, mock.MatchedBy(func(c *models.Comment) bool {
			return c.UserName == "Carol" && c.Content == "great deck"
		})).Return(nil).Once()

		comment, err := svc.AddComment(ctx, author, deckID, "  great deck  ")
		require.NoError(t, err)
		assert.Equal(t, "Carol", comment.UserName)
	})

	t.Run("EmptyContentRejected", func(t *testing.T) {
		svc, m := newCommentService(t)
		_, err := svc.AddComment(ctx, author, deckID, "   ")
		assert.ErrorIs(t, err, models.ErrValidation)
		m.deckRepo.AssertNotCalled(t, "GetByID")
	})

	t.Run("OverlongContentRejected", func(t *testing.T) {
		svc, _ := newCommentService(t)
		_, err := svc.AddComment(ctx, author, deckID, strings.Repeat("x", maxCommentLength+1))
		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("InvisibleDeckMaskedAsNotFound", func(t *testing.T) {
		svc, m := newCommentService(t)
		m.deckRepo.On("GetByID", ctx, deckID).
			Return(&models.Deck{ID: deckID, OwnerID: uuid.New(), IsPublic: false}, nil).Once()

		_, err := svc.AddComment(ctx, author, deckID, "hello")
		assert.ErrorIs(t, err, models.ErrDeckNotFound)
		m.commentRepo.AssertNotCalled(t, "Create")
	})
}
