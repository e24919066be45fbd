package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/huycopper/flashmind/internal/interfaces"
	"github.com/huycopper/flashmind/internal/models"
)

const (
	maxTitleLength   = 120
	maxCardSideChars = 2000

	cloneTitleSuffix = " (Copy)"
)

// cloneTitle appends the copy suffix and keeps the result inside the
// title column limit, trimming the source title on rune boundaries.
func cloneTitle(sourceTitle string) string {
	title := sourceTitle + cloneTitleSuffix
	if len(title) <= maxTitleLength {
		return title
	}
	keep := maxTitleLength - len(cloneTitleSuffix)
	for len(sourceTitle) > keep {
		_, size := utf8.DecodeLastRuneInString(sourceTitle)
		sourceTitle = sourceTitle[:len(sourceTitle)-size]
	}
	return strings.TrimRight(sourceTitle, " ") + cloneTitleSuffix
}

// DeckService handles decks and their cards.
//
//go:generate mockery --name DeckService --output ./mocks --outpkg mocks --case=underscore
type DeckService interface {
	CreateDeck(ctx context.Context, caller models.Caller, title, description string, tags []string, isPublic bool) (*models.Deck, error)

	// GetDeck returns a deck if the caller may see it. Private and
	// admin-hidden decks answer ErrDeckNotFound to everyone but the owner
	// and admins, so their existence is not leaked.
	GetDeck(ctx context.Context, caller models.Caller, deckID uuid.UUID) (*models.Deck, error)

	// ListDecks lists public decks, or the caller's own decks when mine is
	// set. Admins additionally see admin-hidden decks in the public list.
	ListDecks(ctx context.Context, caller models.Caller, mine bool, search string) ([]models.Deck, error)

	// UpdateDeck applies upd for the owner or an admin. Republishing a deck
	// that an admin hid fails with ErrDeckHidden.
	UpdateDeck(ctx context.Context, caller models.Caller, deckID uuid.UUID, upd models.DeckUpdate) (*models.Deck, error)

	DeleteDeck(ctx context.Context, caller models.Caller, deckID uuid.UUID) error

	// CloneDeck copies a deck the caller can see into a new private deck
	// titled "<title> (Copy)" and owned by the caller.
	CloneDeck(ctx context.Context, caller models.Caller, sourceID uuid.UUID) (*models.Deck, error)

	ListCards(ctx context.Context, caller models.Caller, deckID uuid.UUID) ([]models.Card, error)
	AddCard(ctx context.Context, caller models.Caller, deckID uuid.UUID, front, back string) (*models.Card, error)
	UpdateCard(ctx context.Context, caller models.Caller, cardID uuid.UUID, upd models.CardUpdate) (*models.Card, error)
	DeleteCard(ctx context.Context, caller models.Caller, cardID uuid.UUID) error
}

// Compile-time check to ensure deckServiceImpl implements DeckService
var _ DeckService = (*deckServiceImpl)(nil)

type deckServiceImpl struct {
	deckRepo interfaces.DeckRepository
	cardRepo interfaces.CardRepository
	userRepo interfaces.UserRepository
	logger   *zap.Logger
}

// NewDeckService creates a new instance of deckServiceImpl.
func NewDeckService(deckRepo interfaces.DeckRepository, cardRepo interfaces.CardRepository, userRepo interfaces.UserRepository, logger *zap.Logger) DeckService {
	return &deckServiceImpl{
		deckRepo: deckRepo,
		cardRepo: cardRepo,
		userRepo: userRepo,
		logger:   logger.Named("DeckService"),
	}
}

// canView reports whether the caller may read the deck.
func canView(deck *models.Deck, caller models.Caller) bool {
	if deck.OwnerID == caller.ID || caller.IsAdmin {
		return true
	}
	return deck.IsPublic && !deck.IsHiddenByAdmin
}

// canModify reports whether the caller may change the deck.
func canModify(deck *models.Deck, caller models.Caller) bool {
	return deck.OwnerID == caller.ID || caller.IsAdmin
}

// visibleDeck fetches a deck and masks invisible ones as not found.
func (s *deckServiceImpl) visibleDeck(ctx context.Context, caller models.Caller, deckID uuid.UUID) (*models.Deck, error) {
	deck, err := s.deckRepo.GetByID(ctx, deckID)
	if err != nil {
		return nil, err
	}
	if !canView(deck, caller) {
		s.logger.Debug("Deck hidden from caller",
			zap.String("deckID", deckID.String()),
			zap.String("callerID", caller.ID.String()))
		return nil, models.ErrDeckNotFound
	}
	return deck, nil
}

func (s *deckServiceImpl) CreateDeck(ctx context.Context, caller models.Caller, title, description string, tags []string, isPublic bool) (*models.Deck, error) {
	title = strings.TrimSpace(title)
	if title == "" || len(title) > maxTitleLength {
		return nil, fmt.Errorf("%w: title must be between 1 and %d characters", models.ErrValidation, maxTitleLength)
	}
	if tags == nil {
		tags = []string{}
	}

	owner, err := s.userRepo.GetByID(ctx, caller.ID)
	if err != nil {
		s.logger.Error("Failed to load owner for deck creation", zap.Error(err), zap.String("callerID", caller.ID.String()))
		return nil, err
	}

	deck := &models.Deck{
		OwnerID:     owner.ID,
		OwnerName:   owner.DisplayName,
		Title:       title,
		Description: strings.TrimSpace(description),
		Tags:        tags,
		IsPublic:    isPublic,
	}
	if err := s.deckRepo.Create(ctx, deck); err != nil {
		return nil, err
	}

	s.logger.Info("Deck created", zap.String("deckID", deck.ID.String()), zap.String("ownerID", owner.ID.String()), zap.Bool("isPublic", isPublic))
	return deck, nil
}

func (s *deckServiceImpl) GetDeck(ctx context.Context, caller models.Caller, deckID uuid.UUID) (*models.Deck, error) {
	return s.visibleDeck(ctx, caller, deckID)
}

func (s *deckServiceImpl) ListDecks(ctx context.Context, caller models.Caller, mine bool, search string) ([]models.Deck, error) {
	filter := models.DeckFilter{Search: search}
	if mine {
		// The owner view includes private and admin-hidden decks.
		callerID := caller.ID
		filter.OwnerID = &callerID
	} else {
		filter.PublicOnly = true
		filter.IncludeHidden = caller.IsAdmin
	}
	return s.deckRepo.List(ctx, filter)
}

func (s *deckServiceImpl) UpdateDeck(ctx context.Context, caller models.Caller, deckID uuid.UUID, upd models.DeckUpdate) (*models.Deck, error) {
	deck, err := s.visibleDeck(ctx, caller, deckID)
	if err != nil {
		return nil, err
	}
	if !canModify(deck, caller) {
		return nil, models.ErrForbidden
	}

	if upd.Title != nil {
		trimmed := strings.TrimSpace(*upd.Title)
		if trimmed == "" || len(trimmed) > maxTitleLength {
			return nil, fmt.Errorf("%w: title must be between 1 and %d characters", models.ErrValidation, maxTitleLength)
		}
		upd.Title = &trimmed
	}

	// An admin-hidden deck stays unlisted until an admin clears the flag;
	// the owner cannot republish around it.
	if upd.IsPublic != nil && *upd.IsPublic && deck.IsHiddenByAdmin && !caller.IsAdmin {
		s.logger.Warn("Owner attempted to republish admin-hidden deck",
			zap.String("deckID", deckID.String()),
			zap.String("callerID", caller.ID.String()))
		return nil, models.ErrDeckHidden
	}

	return s.deckRepo.Update(ctx, deckID, upd)
}

func (s *deckServiceImpl) DeleteDeck(ctx context.Context, caller models.Caller, deckID uuid.UUID) error {
	deck, err := s.visibleDeck(ctx, caller, deckID)
	if err != nil {
		return err
	}
	if !canModify(deck, caller) {
		return models.ErrForbidden
	}

	if err := s.deckRepo.Delete(ctx, deckID); err != nil {
		return err
	}
	s.logger.Info("Deck deleted", zap.String("deckID", deckID.String()), zap.String("callerID", caller.ID.String()))
	return nil
}

func (s *deckServiceImpl) CloneDeck(ctx context.Context, caller models.Caller, sourceID uuid.UUID) (*models.Deck, error) {
	source, err := s.visibleDeck(ctx, caller, sourceID)
	if err != nil {
		return nil, err
	}

	owner, err := s.userRepo.GetByID(ctx, caller.ID)
	if err != nil {
		s.logger.Error("Failed to load owner for deck clone", zap.Error(err), zap.String("callerID", caller.ID.String()))
		return nil, err
	}

	clone, err := s.deckRepo.Clone(ctx, sourceID, owner.ID, owner.DisplayName, cloneTitle(source.Title))
	if err != nil {
		return nil, err
	}

	s.logger.Info("Deck cloned",
		zap.String("sourceID", sourceID.String()),
		zap.String("deckID", clone.ID.String()),
		zap.String("ownerID", owner.ID.String()))
	return clone, nil
}

func (s *deckServiceImpl) ListCards(ctx context.Context, caller models.Caller, deckID uuid.UUID) ([]models.Card, error) {
	if _, err := s.visibleDeck(ctx, caller, deckID); err != nil {
		return nil, err
	}
	return s.cardRepo.ListByDeck(ctx, deckID)
}

func (s *deckServiceImpl) AddCard(ctx context.Context, caller models.Caller, deckID uuid.UUID, front, back string) (*models.Card, error) {
	deck, err := s.visibleDeck(ctx, caller, deckID)
	if err != nil {
		return nil, err
	}
	if !canModify(deck, caller) {
		return nil, models.ErrForbidden
	}

	front = strings.TrimSpace(front)
	back = strings.TrimSpace(back)
	if front == "" || back == "" {
		return nil, fmt.Errorf("%w: card front and back must not be empty", models.ErrValidation)
	}
	if len(front) > maxCardSideChars || len(back) > maxCardSideChars {
		return nil, fmt.Errorf("%w: card sides must be at most %d characters", models.ErrValidation, maxCardSideChars)
	}

	card := &models.Card{DeckID: deckID, Front: front, Back: back}
	if err := s.cardRepo.Create(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

func (s *deckServiceImpl) UpdateCard(ctx context.Context, caller models.Caller, cardID uuid.UUID, upd models.CardUpdate) (*models.Card, error) {
	card, err := s.cardRepo.GetByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if err := s.guardCardDeck(ctx, caller, card.DeckID); err != nil {
		return nil, err
	}

	if upd.Front != nil {
		trimmed := strings.TrimSpace(*upd.Front)
		if trimmed == "" || len(trimmed) > maxCardSideChars {
			return nil, fmt.Errorf("%w: card front must be between 1 and %d characters", models.ErrValidation, maxCardSideChars)
		}
		upd.Front = &trimmed
	}
	if upd.Back != nil {
		trimmed := strings.TrimSpace(*upd.Back)
		if trimmed == "" || len(trimmed) > maxCardSideChars {
			return nil, fmt.Errorf("%w: card back must be between 1 and %d characters", models.ErrValidation, maxCardSideChars)
		}
		upd.Back = &trimmed
	}

	return s.cardRepo.Update(ctx, cardID, upd)
}

func (s *deckServiceImpl) DeleteCard(ctx context.Context, caller models.Caller, cardID uuid.UUID) error {
	card, err := s.cardRepo.GetByID(ctx, cardID)
	if err != nil {
		return err
	}
	if err := s.guardCardDeck(ctx, caller, card.DeckID); err != nil {
		return err
	}
	return s.cardRepo.Delete(ctx, cardID)
}

// guardCardDeck verifies the caller may modify the deck a card belongs to.
// A deck the caller cannot even see masks the card as not found.
func (s *deckServiceImpl) guardCardDeck(ctx context.Context, caller models.Caller, deckID uuid.UUID) error {
	deck, err := s.visibleDeck(ctx, caller, deckID)
	if err != nil {
		if errors.Is(err, models.ErrDeckNotFound) {
			return models.ErrCardNotFound
		}
		return err
	}
	if !canModify(deck, caller) {
		return models.ErrForbidden
	}
	return nil
}
