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

const maxCommentLength = 1000

// CommentService handles deck comments.
//
//go:generate mockery --name CommentService --output ./mocks --outpkg mocks --case=underscore
type CommentService interface {
	// ListComments returns a deck's comments, newest first. Admins also see
	// comments hidden by moderation.
	ListComments(ctx context.Context, caller models.Caller, deckID uuid.UUID) ([]models.Comment, error)

	// AddComment posts a comment under the caller's current display name.
	AddComment(ctx context.Context, caller models.Caller, deckID uuid.UUID, content string) (*models.Comment, error)
}

// Compile-time check to ensure commentServiceImpl implements CommentService
var _ CommentService = (*commentServiceImpl)(nil)

type commentServiceImpl struct {
	commentRepo interfaces.CommentRepository
	deckRepo    interfaces.DeckRepository
	userRepo    interfaces.UserRepository
	logger      *zap.Logger
}

// NewCommentService creates a new instance of commentServiceImpl.
func NewCommentService(commentRepo interfaces.CommentRepository, deckRepo interfaces.DeckRepository, userRepo interfaces.UserRepository, logger *zap.Logger) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		deckRepo:    deckRepo,
		userRepo:    userRepo,
		logger:      logger.Named("CommentService"),
	}
}

func (s *commentServiceImpl) ListComments(ctx context.Context, caller models.Caller, deckID uuid.UUID) ([]models.Comment, error) {
	deck, err := s.deckRepo.GetByID(ctx, deckID)
	if err != nil {
		return nil, err
	}
	if !canView(deck, caller) {
		return nil, models.ErrDeckNotFound
	}
	return s.commentRepo.ListByDeck(ctx, deckID, caller.IsAdmin)
}

func (s *commentServiceImpl) AddComment(ctx context.Context, caller models.Caller, deckID uuid.UUID, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" || len(content) > maxCommentLength {
		return nil, fmt.Errorf("%w: comment must be between 1 and %d characters", models.ErrValidation, maxCommentLength)
	}

	deck, err := s.deckRepo.GetByID(ctx, deckID)
	if err != nil {
		return nil, err
	}
	if !canView(deck, caller) {
		return nil, models.ErrDeckNotFound
	}

	author, err := s.userRepo.GetByID(ctx, caller.ID)
	if err != nil {
		s.logger.Error("Failed to load comment author", zap.Error(err), zap.String("callerID", caller.ID.String()))
		return nil, err
	}

	comment := &models.Comment{
		DeckID:   deckID,
		UserID:   author.ID,
		UserName: author.DisplayName,
		Content:  content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.logger.Info("Comment added", zap.String("commentID", comment.ID.String()), zap.String("deckID", deckID.String()))
	return comment, nil
}
