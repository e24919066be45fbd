package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/huycopper/flashmind/internal/interfaces"
	"github.com/huycopper/flashmind/internal/models"
)

// RatingService handles deck ratings.
//
//go:generate mockery --name RatingService --output ./mocks --outpkg mocks --case=underscore
type RatingService interface {
	// RateDeck records or replaces the caller's rating and returns the deck
	// with its recomputed aggregates.
	RateDeck(ctx context.Context, caller models.Caller, deckID uuid.UUID, value int) (*models.Deck, error)

	// GetMyRating returns the caller's rating for a deck, or ErrNotFound
	// when they have not rated it.
	GetMyRating(ctx context.Context, caller models.Caller, deckID uuid.UUID) (int, error)
}

// Compile-time check to ensure ratingServiceImpl implements RatingService
var _ RatingService = (*ratingServiceImpl)(nil)

type ratingServiceImpl struct {
	ratingRepo interfaces.RatingRepository
	deckRepo   interfaces.DeckRepository
	logger     *zap.Logger
}

// NewRatingService creates a new instance of ratingServiceImpl.
func NewRatingService(ratingRepo interfaces.RatingRepository, deckRepo interfaces.DeckRepository, logger *zap.Logger) RatingService {
	return &ratingServiceImpl{
		ratingRepo: ratingRepo,
		deckRepo:   deckRepo,
		logger:     logger.Named("RatingService"),
	}
}

func (s *ratingServiceImpl) RateDeck(ctx context.Context, caller models.Caller, deckID uuid.UUID, value int) (*models.Deck, error) {
	if value < models.MinRatingValue || value > models.MaxRatingValue {
		return nil, fmt.Errorf("%w: rating must be between %d and %d", models.ErrValidation, models.MinRatingValue, models.MaxRatingValue)
	}

	deck, err := s.deckRepo.GetByID(ctx, deckID)
	if err != nil {
		return nil, err
	}
	if !canView(deck, caller) {
		return nil, models.ErrDeckNotFound
	}

	if err := s.ratingRepo.Rate(ctx, deckID, caller.ID, value); err != nil {
		return nil, err
	}

	s.logger.Info("Deck rated",
		zap.String("deckID", deckID.String()),
		zap.String("userID", caller.ID.String()),
		zap.Int("value", value))

	// Re-read so the response carries the aggregates the transaction left
	// behind.
	return s.deckRepo.GetByID(ctx, deckID)
}

func (s *ratingServiceImpl) GetMyRating(ctx context.Context, caller models.Caller, deckID uuid.UUID) (int, error) {
	deck, err := s.deckRepo.GetByID(ctx, deckID)
	if err != nil {
		return 0, err
	}
	if !canView(deck, caller) {
		return 0, models.ErrDeckNotFound
	}
	return s.ratingRepo.GetValue(ctx, deckID, caller.ID)
}
