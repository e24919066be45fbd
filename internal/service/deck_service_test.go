package service

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/huycopper/flashmind/internal/interfaces/mocks"
	"github.com/huycopper/flashmind/internal/models"
)

type deckServiceMocks struct {
	deckRepo *mocks.MockDeckRepository
	cardRepo *mocks.MockCardRepository
	userRepo *mocks.MockUserRepository
}

func newDeckService(t *testing.T) (DeckService, deckServiceMocks) {
	m := deckServiceMocks{
		deckRepo: mocks.NewMockDeckRepository(t),
		cardRepo: mocks.NewMockCardRepository(t),
		userRepo: mocks.NewMockUserRepository(t),
	}
	return NewDeckService(m.deckRepo, m.cardRepo, m.userRepo, zap.NewNop()), m
}

func TestDeckService_GetDeck_Visibility(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	strangerID := uuid.New()
	deckID := uuid.New()

	mkDeck := func(isPublic, hidden bool) *models.Deck {
		return &models.Deck{ID: deckID, OwnerID: ownerID, Title: "Biology", IsPublic: isPublic, IsHiddenByAdmin: hidden}
	}

	t.Run("PublicDeckVisibleToAnyone", func(t *testing.T) {
		svc, m := newDeckService(t)
		m.deckRepo.On("GetByID", ctx, deckID).Return(mkDeck(true, false), nil).Once()

		deck, err := svc.GetDeck(ctx, models.Caller{ID: strangerID}, deckID)
		require.NoError(t, err)
		assert.Equal(t, deckID, deck.ID)
	})

	t.Run("PrivateDeckMaskedAsNotFound", func(t *testing.T) {
		svc, m := newDeckService(t)
		m.deckRepo.On("GetByID", ctx, deckID).Return(mkDeck(false, false), nil).Once()

		_, err := svc.GetDeck(ctx, models.Caller{ID: strangerID}, deckID)
		assert.ErrorIs(t, err, models.ErrDeckNotFound)
	})

	t.Run("HiddenDeckMaskedAsNotFound", func(t *testing.T) {
		svc, m := newDeckService(t)
		m.deckRepo.On("GetByID", ctx, deckID).Return(mkDeck(true, true), nil).Once()

		_, err := svc.GetDeck(ctx, models.Caller{ID: strangerID}, deckID)
		assert.ErrorIs(t, err, models.ErrDeckNotFound)
	})

	t.Run("OwnerSeesHiddenDeck", func(t *testing.T) {
		svc, m := newDeckService(t)
		m.deckRepo.On("GetByID", ctx, deckID).Return(mkDeck(true, true), nil).Once()

		deck, err := svc.GetDeck(ctx, models.Caller{ID: ownerID}, deckID)
		require.NoError(t, err)
		assert.True(t, deck.IsHiddenByAdmin)
	})

	t.Run("AdminSeesPrivateDeck", func(t *testing.T) {
		svc, m := newDeckService(t)
		m.deckRepo.On("GetByID", ctx, deckID).Return(mkDeck(false, false), nil).Once()

		_, err := svc.GetDeck(ctx, models.Caller{ID: strangerID, IsAdmin: true}, deckID)
		assert.NoError(t, err)
	})
}

func TestDeckService_ListDecks(t *testing.T) {
	ctx := context.Background()
	callerID := uuid.New()

	t.Run("PublicListing", func(t *testing.T) {
		svc, m := newDeckService(t)
		m.deckRepo.On("List", ctx, mock.MatchedBy(func(f models.DeckFilter) bool {
			return f.OwnerID == nil && f.PublicOnly && !f.IncludeHidden
		})).Return([]models.Deck{}, nil).Once()

		_, err := svc.ListDecks(ctx, models.Caller{ID: callerID}, false, "")
		assert.NoError(t, err)
	})

	t.Run("AdminPublicListingIncludesHidden", func(t *testing.T) {
		svc, m := newDeckService(t)
		m.deckRepo.On("List", ctx, mock.MatchedBy(func(f models.DeckFilter) bool {
			return f.PublicOnly && f.IncludeHidden
		})).Return([]models.Deck{}, nil).Once()

		_, err := svc.ListDecks(ctx, models.Caller{ID: callerID, IsAdmin: true}, false, "")
		assert.NoError(t, err)
	})

	t.Run("MineListsOwnDecks", func(t *testing.T) {
		svc, m := newDeckService(t)
		m.deckRepo.On("List", ctx, mock.MatchedBy(func(f models.DeckFilter) bool {
			return f.OwnerID != nil && *f.OwnerID == callerID
		})).Return([]models.Deck{}, nil).Once()

		_, err := svc.ListDecks(ctx, models.Caller{ID: callerID}, true, "")
		assert.NoError(t, err)
	})
}

func TestDeckService_CreateDeck(t *testing.T) {
	ctx := context.Background()
	callerID := uuid.New()
	caller := models.Caller{ID: callerID}

	t.Run("Success", func(t *testing.T) {
		svc, m := newDeckService(t)
		m.userRepo.On("GetByID", ctx, callerID).Return(&models.User{ID: callerID, DisplayName: "Alice"}, nil).Once()
		m.deckRepo.On("Create", ctx, mock.MatchedBy(func(d *models.Deck) bool {
			return d.Title == "Spanish Verbs" && d.OwnerName == "Alice" && d.IsPublic
		})).Return(nil).Once()

		deck, err := svc.CreateDeck(ctx, caller, " Spanish Verbs ", "conjugations", []string{"spanish"}, true)
		require.NoError(t, err)
		assert.Equal(t, "Spanish Verbs", deck.Title)
	})

	t.Run("EmptyTitle", func(t *testing.T) {
		svc, _ := newDeckService(t)
		_, err := svc.CreateDeck(ctx, caller, "   ", "", nil, false)
		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("NilTagsBecomeEmptySlice", func(t *testing.T) {
		svc, m := newDeckService(t)
		m.userRepo.On("GetByID", ctx, callerID).Return(&models.User{ID: callerID, DisplayName: "Alice"}, nil).Once()
		m.deckRepo.On("Create", ctx, mock.MatchedBy(func(d *models.Deck) bool {
			return d.Tags != nil && len(d.Tags) == 0
		})).Return(nil).Once()

		_, err := svc.CreateDeck(ctx, caller, "Deck", "", nil, false)
		assert.NoError(t, err)
	})
}

func TestDeckService_UpdateDeck(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	deckID := uuid.New()
	owner := models.Caller{ID: ownerID}

	boolPtr := func(b bool) *bool { return &b }

	t.Run("RepublishBlockedWhileAdminHidden", func(t *testing.T) {
		svc, m := newDeckService(t)
		m.deckRepo.On("GetByID", ctx, deckID).
			Return(&models.Deck{ID: deckID, OwnerID: ownerID, IsPublic: false, IsHiddenByAdmin: true}, nil).Once()

		_, err := svc.UpdateDeck(ctx, owner, deckID, models.DeckUpdate{IsPublic: boolPtr(true)})
		assert.ErrorIs(t, err, models.ErrDeckHidden)
	})

	t.Run("OwnerMayEditHiddenDeckOtherwise", func(t *testing.T) {
		svc, m := newDeckService(t)
		deck := &models.Deck{ID: deckID, OwnerID: ownerID, IsHiddenByAdmin: true}
		m.deckRepo.On("GetByID", ctx, deckID).Return(deck, nil).Once()
		m.deckRepo.On("Update", ctx, deckID, mock.Anything).Return(deck, nil).Once()

		title := "New Title"
		_, err := svc.UpdateDeck(ctx, owner, deckID, models.DeckUpdate{Title: &title})
		assert.NoError(t, err)
	})

	t.Run("NonOwnerForbiddenOnPublicDeck", func(t *testing.T) {
		svc, m := newDeckService(t)
		m.deckRepo.On("GetByID", ctx, deckID).
			Return(&models.Deck{ID: deckID, OwnerID: ownerID, IsPublic: true}, nil).Once()

		title := "Hijacked"
		_, err := svc.UpdateDeck(ctx, models.Caller{ID: uuid.New()}, deckID, models.DeckUpdate{Title: &title})
		assert.ErrorIs(t, err, models.ErrForbidden)
	})
}

func TestDeckService_CloneDeck(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	callerID := uuid.New()
	sourceID := uuid.New()
	caller := models.Caller{ID: callerID}

	t.Run("ClonesVisibleDeckWithCopySuffix", func(t *testing.T) {
		svc, m := newDeckService(t)
		m.deckRepo.On("GetByID", ctx, sourceID).
			Return(&models.Deck{ID: sourceID, OwnerID: ownerID, Title: "Biology 101", IsPublic: true}, nil).Once()
		m.userRepo.On("GetByID", ctx, callerID).
			Return(&models.User{ID: callerID, DisplayName: "Bob"}, nil).Once()
		m.deckRepo.On("Clone", ctx, sourceID, callerID, "Bob", "Biology 101 (Copy)").
			Return(&models.Deck{ID: uuid.New(), OwnerID: callerID, Title: "Biology 101 (Copy)"}, nil).Once()

		clone, err := svc.CloneDeck(ctx, caller, sourceID)
		require.NoError(t, err)
		assert.Equal(t, "Biology 101 (Copy)", clone.Title)
	})

	t.Run("LongSourceTitleTrimmedToColumnLimit", func(t *testing.T) {
		longTitle := strings.Repeat("a", maxTitleLength)
		svc, m := newDeckService(t)
		m.deckRepo.On("GetByID", ctx, sourceID).
			Return(&models.Deck{ID: sourceID, OwnerID: ownerID, Title: longTitle, IsPublic: true}, nil).Once()
		m.userRepo.On("GetByID", ctx, callerID).
			Return(&models.User{ID: callerID, DisplayName: "Bob"}, nil).Once()
		m.deckRepo.On("Clone", ctx, sourceID, callerID, "Bob", mock.MatchedBy(func(title string) bool {
			return len(title) <= maxTitleLength && strings.HasSuffix(title, " (Copy)")
		})).Return(&models.Deck{ID: uuid.New(), OwnerID: callerID}, nil).Once()

		_, err := svc.CloneDeck(ctx, caller, sourceID)
		require.NoError(t, err)
	})

	t.Run("PrivateSourceMaskedAsNotFound", func(t *testing.T) {
		svc, m := newDeckService(t)
		m.deckRepo.On("GetByID", ctx, sourceID).
			Return(&models.Deck{ID: sourceID, OwnerID: ownerID, IsPublic: false}, nil).Once()

		_, err := svc.CloneDeck(ctx, caller, sourceID)
		assert.ErrorIs(t, err, models.ErrDeckNotFound)
	})
}

func TestCloneTitle(t *testing.T) {
	assert.Equal(t, "Biology 101 (Copy)", cloneTitle("Biology 101"))

	long := cloneTitle(strings.Repeat("a", maxTitleLength))
	assert.LessOrEqual(t, len(long), maxTitleLength)
	assert.True(t, strings.HasSuffix(long, " (Copy)"))

	// Multi-byte titles are trimmed on rune boundaries.
	wide := cloneTitle(strings.Repeat("学", maxTitleLength))
	assert.LessOrEqual(t, len(wide), maxTitleLength)
	assert.True(t, utf8.ValidString(wide))
	assert.True(t, strings.HasSuffix(wide, " (Copy)"))
}

func TestDeckService_Cards(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	deckID := uuid.New()
	cardID := uuid.New()
	owner := models.Caller{ID: ownerID}
	stranger := models.Caller{ID: uuid.New()}

	publicDeck := func() *models.Deck {
		return &models.Deck{ID: deckID, OwnerID: ownerID, IsPublic: true}
	}

	t.Run("AddCardTrimsAndCreates", func(t *testing.T) {
		svc, m := newDeckService(t)
		m.deckRepo.On("GetByID", ctx, deckID).Return(publicDeck(), nil).Once()
		m.cardRepo.On("Create", ctx, mock.MatchedBy(func(c *models.Card) bool {
			return c.Front == "mitochondria" && c.Back == "powerhouse of the cell"
		})).Return(nil).Once()

		_, err := svc.AddCard(ctx, owner, deckID, " mitochondria ", " powerhouse of the cell ")
		assert.NoError(t, err)
	})

	t.Run("AddCardEmptySideRejected", func(t *testing.T) {
		svc, m := newDeckService(t)
		m.deckRepo.On("GetByID", ctx, deckID).Return(publicDeck(), nil).Once()

		_, err := svc.AddCard(ctx, owner, deckID, "front", "   ")
		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("AddCardForbiddenForNonOwner", func(t *testing.T) {
		svc, m := newDeckService(t)
		m.deckRepo.On("GetByID", ctx, deckID).Return(publicDeck(), nil).Once()

		_, err := svc.AddCard(ctx, stranger, deckID, "front", "back")
		assert.ErrorIs(t, err, models.ErrForbidden)
	})

	t.Run("DeleteCardOnInvisibleDeckMaskedAsCardNotFound", func(t *testing.T) {
		svc, m := newDeckService(t)
		m.cardRepo.On("GetByID", ctx, cardID).Return(&models.Card{ID: cardID, DeckID: deckID}, nil).Once()
		m.deckRepo.On("GetByID", ctx, deckID).
			Return(&models.Deck{ID: deckID, OwnerID: ownerID, IsPublic: false}, nil).Once()

		err := svc.DeleteCard(ctx, stranger, cardID)
		assert.ErrorIs(t, err, models.ErrCardNotFound)
	})

	t.Run("ListCardsOnPublicDeck", func(t *testing.T) {
		svc, m := newDeckService(t)
		m.deckRepo.On("GetByID", ctx, deckID).Return(publicDeck(), nil).Once()
		m.cardRepo.On("ListByDeck", ctx, deckID).Return([]models.Card{{ID: cardID}}, nil).Once()

		cards, err := svc.ListCards(ctx, stranger, deckID)
		require.NoError(t, err)
		assert.Len(t, cards, 1)
	})
}
