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

const maxWarningReasonLength = 500

// ModerationService handles the admin panel operations. Every method
// requires an admin caller; the route middleware enforces the same thing,
// this is the second lock on the door.
//
//go:generate mockery --name ModerationService --output ./mocks --outpkg mocks --case=underscore
type ModerationService interface {
	ListUsers(ctx context.Context, caller models.Caller) ([]models.User, error)

	// SetUserLock locks or unlocks an account. Locking revokes every
	// active session of the user.
	SetUserLock(ctx context.Context, caller models.Caller, userID uuid.UUID, locked bool) error

	// IssueWarning attaches an admin warning to a user.
	IssueWarning(ctx context.Context, caller models.Caller, userID uuid.UUID, reason string) (*models.Warning, error)

	// ListAllDecks returns every deck, including private and hidden ones.
	ListAllDecks(ctx context.Context, caller models.Caller, search string) ([]models.Deck, error)

	// SetDeckHidden flips the moderation flag on a deck.
	SetDeckHidden(ctx context.Context, caller models.Caller, deckID uuid.UUID, hidden bool) error

	// ListDeckComments returns a deck's comments including hidden ones.
	ListDeckComments(ctx context.Context, caller models.Caller, deckID uuid.UUID) ([]models.Comment, error)

	// SetCommentHidden flips the moderation flag on a comment.
	SetCommentHidden(ctx context.Context, caller models.Caller, commentID uuid.UUID, hidden bool) error

	// DeleteComment removes a comment entirely.
	DeleteComment(ctx context.Context, caller models.Caller, commentID uuid.UUID) error
}

// Compile-time check to ensure moderationServiceImpl implements ModerationService
var _ ModerationService = (*moderationServiceImpl)(nil)

type moderationServiceImpl struct {
	userRepo    interfaces.UserRepository
	deckRepo    interfaces.DeckRepository
	commentRepo interfaces.CommentRepository
	warningRepo interfaces.WarningRepository
	tokenRepo   interfaces.TokenRepository
	logger      *zap.Logger
}

// NewModerationService creates a new instance of moderationServiceImpl.
func NewModerationService(
	userRepo interfaces.UserRepository,
	deckRepo interfaces.DeckRepository,
	commentRepo interfaces.CommentRepository,
	warningRepo interfaces.WarningRepository,
	tokenRepo interfaces.TokenRepository,
	logger *zap.Logger,
) ModerationService {
	return &moderationServiceImpl{
		userRepo:    userRepo,
		deckRepo:    deckRepo,
		commentRepo: commentRepo,
		warningRepo: warningRepo,
		tokenRepo:   tokenRepo,
		logger:      logger.Named("ModerationService"),
	}
}

func (s *moderationServiceImpl) requireAdmin(caller models.Caller) error {
	if !caller.IsAdmin {
		s.logger.Warn("Non-admin caller hit moderation service", zap.String("callerID", caller.ID.String()))
		return models.ErrForbidden
	}
	return nil
}

func (s *moderationServiceImpl) ListUsers(ctx context.Context, caller models.Caller) ([]models.User, error) {
	if err := s.requireAdmin(caller); err != nil {
		return nil, err
	}
	return s.userRepo.List(ctx)
}

func (s *moderationServiceImpl) SetUserLock(ctx context.Context, caller models.Caller, userID uuid.UUID, locked bool) error {
	if err := s.requireAdmin(caller); err != nil {
		return err
	}
	// An admin locking themselves out is almost certainly a misclick.
	if userID == caller.ID {
		return fmt.Errorf("%w: cannot lock own account", models.ErrValidation)
	}

	if err := s.userRepo.SetLocked(ctx, userID, locked); err != nil {
		return err
	}
	s.logger.Info("User lock changed",
		zap.String("userID", userID.String()),
		zap.String("adminID", caller.ID.String()),
		zap.Bool("locked", locked))

	if locked {
		deletedCount, err := s.tokenRepo.DeleteTokensByUserID(ctx, userID)
		if err != nil {
			// The lock itself stuck; dangling tokens die at their TTL.
			s.logger.Error("Failed to revoke tokens of locked user", zap.Error(err), zap.String("userID", userID.String()))
		} else {
			s.logger.Info("Revoked sessions of locked user", zap.String("userID", userID.String()), zap.Int64("deletedCount", deletedCount))
		}
	}
	return nil
}

func (s *moderationServiceImpl) IssueWarning(ctx context.Context, caller models.Caller, userID uuid.UUID, reason string) (*models.Warning, error) {
	if err := s.requireAdmin(caller); err != nil {
		return nil, err
	}

	reason = strings.TrimSpace(reason)
	if reason == "" || len(reason) > maxWarningReasonLength {
		return nil, fmt.Errorf("%w: warning reason must be between 1 and %d characters", models.ErrValidation, maxWarningReasonLength)
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	warning := &models.Warning{
		UserID:  userID,
		AdminID: caller.ID,
		Reason:  reason,
	}
	if err := s.warningRepo.Create(ctx, warning); err != nil {
		return nil, err
	}

	s.logger.Info("Warning issued",
		zap.String("warningID", warning.ID.String()),
		zap.String("userID", userID.String()),
		zap.String("adminID", caller.ID.String()))
	return warning, nil
}

func (s *moderationServiceImpl) ListAllDecks(ctx context.Context, caller models.Caller, search string) ([]models.Deck, error) {
	if err := s.requireAdmin(caller); err != nil {
		return nil, err
	}
	return s.deckRepo.List(ctx, models.DeckFilter{IncludeHidden: true, Search: search})
}

func (s *moderationServiceImpl) SetDeckHidden(ctx context.Context, caller models.Caller, deckID uuid.UUID, hidden bool) error {
	if err := s.requireAdmin(caller); err != nil {
		return err
	}
	if err := s.deckRepo.SetHidden(ctx, deckID, hidden); err != nil {
		return err
	}
	s.logger.Info("Deck moderation flag changed",
		zap.String("deckID", deckID.String()),
		zap.String("adminID", caller.ID.String()),
		zap.Bool("hidden", hidden))
	return nil
}

func (s *moderationServiceImpl) ListDeckComments(ctx context.Context, caller models.Caller, deckID uuid.UUID) ([]models.Comment, error) {
	if err := s.requireAdmin(caller); err != nil {
		return nil, err
	}
	if _, err := s.deckRepo.GetByID(ctx, deckID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByDeck(ctx, deckID, true)
}

func (s *moderationServiceImpl) SetCommentHidden(ctx context.Context, caller models.Caller, commentID uuid.UUID, hidden bool) error {
	if err := s.requireAdmin(caller); err != nil {
		return err
	}
	if err := s.commentRepo.SetHidden(ctx, commentID, hidden); err != nil {
		return err
	}
	s.logger.Info("Comment moderation flag changed",
		zap.String("commentID", commentID.String()),
		zap.String("adminID", caller.ID.String()),
		zap.Bool("hidden", hidden))
	return nil
}

func (s *moderationServiceImpl) DeleteComment(ctx context.Context, caller models.Caller, commentID uuid.UUID) error {
	if err := s.requireAdmin(caller); err != nil {
		return err
	}
	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return err
	}
	s.logger.Info("Comment deleted by admin",
		zap.String("commentID", commentID.String()),
		zap.String("adminID", caller.ID.String()))
	return nil
}
