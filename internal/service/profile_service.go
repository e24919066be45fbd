package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/huycopper/flashmind/internal/interfaces"
	"github.com/huycopper/flashmind/internal/models"
)

const (
	maxDisplayNameLength = 50
	maxBioLength         = 500
)

// ProfileService handles the caller's own account.
//
//go:generate mockery --name ProfileService --output ./mocks --outpkg mocks --case=underscore
type ProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)

	// UpdateProfile applies the non-nil fields of upd. A display-name
	// change fans out to the denormalized owner and author names on decks
	// and comments.
	UpdateProfile(ctx context.Context, userID uuid.UUID, upd models.ProfileUpdate) (*models.User, error)

	// ListWarnings returns the caller's active warnings. Failures degrade
	// to an empty list so a broken warnings read never blocks the profile
	// page.
	ListWarnings(ctx context.Context, userID uuid.UUID) []models.Warning

	// DismissWarning marks one of the caller's own warnings dismissed.
	DismissWarning(ctx context.Context, caller models.Caller, warningID uuid.UUID) error
}

// Compile-time check to ensure profileServiceImpl implements ProfileService
var _ ProfileService = (*profileServiceImpl)(nil)

type profileServiceImpl struct {
	userRepo    interfaces.UserRepository
	deckRepo    interfaces.DeckRepository
	commentRepo interfaces.CommentRepository
	warningRepo interfaces.WarningRepository
	logger      *zap.Logger
}

// NewProfileService creates a new instance of profileServiceImpl.
func NewProfileService(userRepo interfaces.UserRepository, deckRepo interfaces.DeckRepository, commentRepo interfaces.CommentRepository, warningRepo interfaces.WarningRepository, logger *zap.Logger) ProfileService {
	return &profileServiceImpl{
		userRepo:    userRepo,
		deckRepo:    deckRepo,
		commentRepo: commentRepo,
		warningRepo: warningRepo,
		logger:      logger.Named("ProfileService"),
	}
}

func (s *profileServiceImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *profileServiceImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, upd models.ProfileUpdate) (*models.User, error) {
	if upd.DisplayName != nil {
		trimmed := strings.TrimSpace(*upd.DisplayName)
		if trimmed == "" || len(trimmed) > maxDisplayNameLength {
			return nil, fmt.Errorf("%w: display name must be between 1 and %d characters", models.ErrValidation, maxDisplayNameLength)
		}
		upd.DisplayName = &trimmed
	}
	if upd.Bio != nil && len(*upd.Bio) > maxBioLength {
		return nil, fmt.Errorf("%w: bio must be at most %d characters", models.ErrValidation, maxBioLength)
	}

	user, err := s.userRepo.UpdateProfile(ctx, userID, upd)
	if err != nil {
		return nil, err
	}

	// The display name is denormalized into decks and comments; push the
	// new value out. A partial fan-out is logged, not surfaced: the next
	// rename repairs it.
	if upd.DisplayName != nil {
		if err := s.deckRepo.UpdateOwnerName(ctx, userID, user.DisplayName); err != nil {
			s.logger.Error("Failed to fan display name out to decks", zap.Error(err), zap.String("userID", userID.String()))
		}
		if err := s.commentRepo.UpdateUserName(ctx, userID, user.DisplayName); err != nil {
			s.logger.Error("Failed to fan display name out to comments", zap.Error(err), zap.String("userID", userID.String()))
		}
	}

	s.logger.Info("Profile updated", zap.String("userID", userID.String()))
	return user, nil
}

func (s *profileServiceImpl) ListWarnings(ctx context.Context, userID uuid.UUID) []models.Warning {
	warnings, err := s.warningRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list warnings, returning empty list", zap.Error(err), zap.String("userID", userID.String()))
		return []models.Warning{}
	}
	return warnings
}

func (s *profileServiceImpl) DismissWarning(ctx context.Context, caller models.Caller, warningID uuid.UUID) error {
	warning, err := s.warningRepo.GetByID(ctx, warningID)
	if err != nil {
		return err
	}
	// Only the warned user may dismiss; admins issue warnings, they do not
	// clear them on the user's behalf.
	if warning.UserID != caller.ID {
		return models.ErrForbidden
	}
	if warning.IsDismissed {
		return nil
	}
	if err := s.warningRepo.Dismiss(ctx, warningID); err != nil {
		return err
	}
	s.logger.Info("Warning dismissed", zap.String("warningID", warningID.String()), zap.String("userID", caller.ID.String()))
	return nil
}
