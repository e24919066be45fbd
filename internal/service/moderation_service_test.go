package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/huycopper/flashmind/internal/interfaces/mocks"
	"github.com/huycopper/flashmind/internal/models"
)

type moderationServiceMocks struct {
	userRepo    *mocks.MockUserRepository
	deckRepo    *mocks.MockDeckRepository
	commentRepo *mocks.MockCommentRepository
	warningRepo *mocks.MockWarningRepository
	tokenRepo   *mocks.MockTokenRepository
}

func newModerationService(t *testing.T) (ModerationService, moderationServiceMocks) {
	m := moderationServiceMocks{
		userRepo:    mocks.NewMockUserRepository(t),
		deckRepo:    mocks.NewMockDeckRepository(t),
		commentRepo: mocks.NewMockCommentRepository(t),
		warningRepo: mocks.NewMockWarningRepository(t),
		tokenRepo:   mocks.NewMockTokenRepository(t),
	}
	svc := NewModerationService(m.userRepo, m.deckRepo, m.commentRepo, m.warningRepo, m.tokenRepo, zap.NewNop())
	return svc, m
}

func TestModerationService_RequiresAdmin(t *testing.T) {
	ctx := context.Background()
	user := models.Caller{ID: uuid.New()}
	id := uuid.New()

	svc, _ := newModerationService(t)

	_, err := svc.ListUsers(ctx, user)
	assert.ErrorIs(t, err, models.ErrForbidden)

	assert.ErrorIs(t, svc.SetUserLock(ctx, user, id, true), models.ErrForbidden)

	_, err = svc.IssueWarning(ctx, user, id, "spam")
	assert.ErrorIs(t, err, models.ErrForbidden)

	_, err = svc.ListAllDecks(ctx, user, "")
	assert.ErrorIs(t, err, models.ErrForbidden)

	assert.ErrorIs(t, svc.SetDeckHidden(ctx, user, id, true), models.ErrForbidden)

	_, err = svc.ListDeckComments(ctx, user, id)
	assert.ErrorIs(t, err, models.ErrForbidden)

	assert.ErrorIs(t, svc.SetCommentHidden(ctx, user, id, true), models.ErrForbidden)
	assert.ErrorIs(t, svc.DeleteComment(ctx, user, id), models.ErrForbidden)
}

func TestModerationService_SetUserLock(t *testing.T) {
	ctx := context.Background()
	admin := models.Caller{ID: uuid.New(), IsAdmin: true}
	userID := uuid.New()

	t.Run("LockRevokesSessions", func(t *testing.T) {
		svc, m := newModerationService(t)
		m.userRepo.On("SetLocked", ctx, userID, true).Return(nil).Once()
		m.tokenRepo.On("DeleteTokensByUserID", ctx, userID).Return(int64(2), nil).Once()

		assert.NoError(t, svc.SetUserLock(ctx, admin, userID, true))
	})

	t.Run("UnlockKeepsSessions", func(t *testing.T) {
		svc, m := newModerationService(t)
		m.userRepo.On("SetLocked", ctx, userID, false).Return(nil).Once()

		assert.NoError(t, svc.SetUserLock(ctx, admin, userID, false))
		m.tokenRepo.AssertNotCalled(t, "DeleteTokensByUserID")
	})

	t.Run("RevocationFailureDoesNotFailTheLock", func(t *testing.T) {
		svc, m := newModerationService(t)
		m.userRepo.On("SetLocked", ctx, userID, true).Return(nil).Once()
		m.tokenRepo.On("DeleteTokensByUserID", ctx, userID).
			Return(int64(0), errors.New("redis down")).Once()

		assert.NoError(t, svc.SetUserLock(ctx, admin, userID, true))
	})

	t.Run("SelfLockRejected", func(t *testing.T) {
		svc, m := newModerationService(t)
		err := svc.SetUserLock(ctx, admin, admin.ID, true)
		assert.ErrorIs(t, err, models.ErrValidation)
		m.userRepo.AssertNotCalled(t, "SetLocked")
	})

	t.Run("UnknownUser", func(t *testing.T) {
		svc, m := newModerationService(t)
		m.userRepo.On("SetLocked", ctx, userID, true).Return(models.ErrUserNotFound).Once()

		err := svc.SetUserLock(ctx, admin, userID, true)
		assert.ErrorIs(t, err, models.ErrUserNotFound)
	})
}

func TestModerationService_IssueWarning(t *testing.T) {
	ctx := context.Background()
	admin := models.Caller{ID: uuid.New(), IsAdmin: true}
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		svc, m := newModerationService(t)
		m.userRepo.On("GetByID", ctx, userID).Return(&models.User{ID: userID}, nil).Once()
		m.warningRepo.On("Create", ctx, mock.MatchedBy(func(w *models.Warning) bool {
			return w.UserID == userID && w.AdminID == admin.ID && w.Reason == "repeated spam"
		})).Return(nil).Once()

		warning, err := svc.IssueWarning(ctx, admin, userID, "  repeated spam  ")
		require.NoError(t, err)
		assert.Equal(t, "repeated spam", warning.Reason)
	})

	t.Run("EmptyReasonRejected", func(t *testing.T) {
		svc, m := newModerationService(t)
		_, err := svc.IssueWarning(ctx, admin, userID, "   ")
		assert.ErrorIs(t, err, models.ErrValidation)
		m.warningRepo.AssertNotCalled(t, "Create")
	})

	t.Run("UnknownUser", func(t *testing.T) {
		svc, m := newModerationService(t)
		m.userRepo.On("GetByID", ctx, userID).Return(nil, models.ErrUserNotFound).Once()

		_, err := svc.IssueWarning(ctx, admin, userID, "spam")
		assert.ErrorIs(t, err, models.ErrUserNotFound)
	})
}

func TestModerationService_Decks(t *testing.T) {
	ctx := context.Background()
	admin := models.Caller{ID: uuid.New(), IsAdmin: true}
	deckID := uuid.New()

	t.Run("ListAllDecksIncludesHidden", func(t *testing.T) {
		svc, m := newModerationService(t)
		m.deckRepo.On("List", ctx, mock.MatchedBy(func(f models.DeckFilter) bool {
			return f.IncludeHidden && !f.PublicOnly && f.OwnerID == nil && f.Search == "bio"
		})).Return([]models.Deck{}, nil).Once()

		_, err := svc.ListAllDecks(ctx, admin, "bio")
		assert.NoError(t, err)
	})

	t.Run("SetDeckHidden", func(t *testing.T) {
		svc, m := newModerationService(t)
		m.deckRepo.On("SetHidden", ctx, deckID, true).Return(nil).Once()

		assert.NoError(t, svc.SetDeckHidden(ctx, admin, deckID, true))
	})

	t.Run("ListDeckCommentsIncludesHidden", func(t *testing.T) {
		svc, m := newModerationService(t)
		m.deckRepo.On("GetByID", ctx, deckID).
			Return(&models.Deck{ID: deckID, OwnerID: uuid.New()}, nil).Once()
		m.commentRepo.On("ListByDeck", ctx, deckID, true).Return([]models.Comment{}, nil).Once()

		_, err := svc.ListDeckComments(ctx, admin, deckID)
		assert.NoError(t, err)
	})
}

func TestModerationService_Comments(t *testing.T) {
	ctx := context.Background()
	admin := models.Caller{ID: uuid.New(), IsAdmin: true}
	commentID := uuid.New()

	t.Run("SetCommentHidden", func(t *testing.T) {
		svc, m := newModerationService(t)
		m.commentRepo.On("SetHidden", ctx, commentID, true).Return(nil).Once()

		assert.NoError(t, svc.SetCommentHidden(ctx, admin, commentID, true))
	})

	t.Run("DeleteComment", func(t *testing.T) {
		svc, m := newModerationService(t)
		m.commentRepo.On("Delete", ctx, commentID).Return(nil).Once()

		assert.NoError(t, svc.DeleteComment(ctx, admin, commentID))
	})

	t.Run("DeleteUnknownComment", func(t *testing.T) {
		svc, m := newModerationService(t)
		m.commentRepo.On("Delete", ctx, commentID).Return(models.ErrCommentNotFound).Once()

		err := svc.DeleteComment(ctx, admin, commentID)
		assert.ErrorIs(t, err, models.ErrCommentNotFound)
	})
}
