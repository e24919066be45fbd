package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/huycopper/flashmind/internal/interfaces/mocks"
	"github.com/huycopper/flashmind/internal/models"
)

type profileServiceMocks struct {
	userRepo    *mocks.MockUserRepository
	deckRepo    *mocks.MockDeckRepository
	commentRepo *mocks.MockCommentRepository
	warningRepo *mocks.MockWarningRepository
}

func newProfileService(t *testing.T) (ProfileService, profileServiceMocks) {
	m := profileServiceMocks{
		userRepo:    mocks.NewMockUserRepository(t),
		deckRepo:    mocks.NewMockDeckRepository(t),
		commentRepo: mocks.NewMockCommentRepository(t),
		warningRepo: mocks.NewMockWarningRepository(t),
	}
	return NewProfileService(m.userRepo, m.deckRepo, m.commentRepo, m.warningRepo, zap.NewNop()), m
}

func TestProfileService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	strPtr := func(s string) *string { return &s }

	t.Run("DisplayNameChangeFansOut", func(t *testing.T) {
		svc, m := newProfileService(t)
		m.userRepo.On("UpdateProfile", ctx, userID, models.ProfileUpdate{DisplayName: strPtr("Dana")}).
			Return(&models.User{ID: userID, DisplayName: "Dana"}, nil).Once()
		m.deckRepo.On("UpdateOwnerName", ctx, userID, "Dana").Return(nil).Once()
		m.commentRepo.On("UpdateUserName", ctx, userID, "Dana").Return(nil).Once()

		user, err := svc.UpdateProfile(ctx, userID, models.ProfileUpdate{DisplayName: strPtr("Dana")})
		require.NoError(t, err)
		assert.Equal(t, "Dana", user.DisplayName)
	})

	t.Run("BioOnlyChangeSkipsFanOut", func(t *testing.T) {
		svc, m := newProfileService(t)
		upd := models.ProfileUpdate{Bio: strPtr("learning spanish")}
		m.userRepo.On("UpdateProfile", ctx, userID, upd).
			Return(&models.User{ID: userID, DisplayName: "Dana"}, nil).Once()

		_, err := svc.UpdateProfile(ctx, userID, upd)
		require.NoError(t, err)
		m.deckRepo.AssertNotCalled(t, "UpdateOwnerName")
		m.commentRepo.AssertNotCalled(t, "UpdateUserName")
	})

	t.Run("FanOutFailureIsNotSurfaced", func(t *testing.T) {
		svc, m := newProfileService(t)
		m.userRepo.On("UpdateProfile", ctx, userID, models.ProfileUpdate{DisplayName: strPtr("Dana")}).
			Return(&models.User{ID: userID, DisplayName: "Dana"}, nil).Once()
		m.deckRepo.On("UpdateOwnerName", ctx, userID, "Dana").Return(errors.New("db down")).Once()
		m.commentRepo.On("UpdateUserName", ctx, userID, "Dana").Return(nil).Once()

		_, err := svc.UpdateProfile(ctx, userID, models.ProfileUpdate{DisplayName: strPtr("Dana")})
		assert.NoError(t, err)
	})

	t.Run("BlankDisplayNameRejected", func(t *testing.T) {
		svc, m := newProfileService(t)
		_, err := svc.UpdateProfile(ctx, userID, models.ProfileUpdate{DisplayName: strPtr("   ")})
		assert.ErrorIs(t, err, models.ErrValidation)
		m.userRepo.AssertNotCalled(t, "UpdateProfile")
	})
}

func TestProfileService_ListWarnings(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("ReturnsActiveWarnings", func(t *testing.T) {
		svc, m := newProfileService(t)
		m.warningRepo.On("ListActiveByUser", ctx, userID).
			Return([]models.Warning{{ID: uuid.New(), UserID: userID, Reason: "spam"}}, nil).Once()

		warnings := svc.ListWarnings(ctx, userID)
		assert.Len(t, warnings, 1)
	})

	t.Run("ReadFailureDegradesToEmptyList", func(t *testing.T) {
		svc, m := newProfileService(t)
		m.warningRepo.On("ListActiveByUser", ctx, userID).
			Return(nil, errors.New("db down")).Once()

		warnings := svc.ListWarnings(ctx, userID)
		assert.NotNil(t, warnings)
		assert.Empty(t, warnings)
	})
}

func TestProfileService_DismissWarning(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	warningID := uuid.New()
	caller := models.Caller{ID: userID}

	t.Run("OwnerDismisses", func(t *testing.T) {
		svc, m := newProfileService(t)
		m.warningRepo.On("GetByID", ctx, warningID).
			Return(&models.Warning{ID: warningID, UserID: userID}, nil).Once()
		m.warningRepo.On("Dismiss", ctx, warningID).Return(nil).Once()

		assert.NoError(t, svc.DismissWarning(ctx, caller, warningID))
	})

	t.Run("OtherUserForbidden", func(t *testing.T) {
		svc, m := newProfileService(t)
		m.warningRepo.On("GetByID", ctx, warningID).
			Return(&models.Warning{ID: warningID, UserID: uuid.New()}, nil).Once()

		err := svc.DismissWarning(ctx, caller, warningID)
		assert.ErrorIs(t, err, models.ErrForbidden)
		m.warningRepo.AssertNotCalled(t, "Dismiss")
	})

	t.Run("AlreadyDismissedIsNoOp", func(t *testing.T) {
		svc, m := newProfileService(t)
		m.warningRepo.On("GetByID", ctx, warningID).
			Return(&models.Warning{ID: warningID, UserID: userID, IsDismissed: true}, nil).Once()

		assert.NoError(t, svc.DismissWarning(ctx, caller, warningID))
		m.warningRepo.AssertNotCalled(t, "Dismiss")
	})
}
