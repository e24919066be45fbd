package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/huycopper/flashmind/internal/models"
	"github.com/huycopper/flashmind/internal/service"
)

// MockDeckService is a mock type for the DeckService type
type MockDeckService struct {
	mock.Mock
}

func (_m *MockDeckService) CreateDeck(ctx context.Context, caller models.Caller, title, description string, tags []string, isPublic bool) (*models.Deck, error) {
	ret := _m.Called(ctx, caller, title, description, tags, isPublic)
	var r0 *models.Deck
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Deck)
	}
	return r0, ret.Error(1)
}

func (_m *MockDeckService) GetDeck(ctx context.Context, caller models.Caller, deckID uuid.UUID) (*models.Deck, error) {
	ret := _m.Called(ctx, caller, deckID)
	var r0 *models.Deck
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Deck)
	}
	return r0, ret.Error(1)
}

func (_m *MockDeckService) ListDecks(ctx context.Context, caller models.Caller, mine bool, search string) ([]models.Deck, error) {
	ret := _m.Called(ctx, caller, mine, search)
	var r0 []models.Deck
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Deck)
	}
	return r0, ret.Error(1)
}

func (_m *MockDeckService) UpdateDeck(ctx context.Context, caller models.Caller, deckID uuid.UUID, upd models.DeckUpdate) (*models.Deck, error) {
	ret := _m.Called(ctx, caller, deckID, upd)
	var r0 *models.Deck
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Deck)
	}
	return r0, ret.Error(1)
}

func (_m *MockDeckService) DeleteDeck(ctx context.Context, caller models.Caller, deckID uuid.UUID) error {
	ret := _m.Called(ctx, caller, deckID)
	return ret.Error(0)
}

func (_m *MockDeckService) CloneDeck(ctx context.Context, caller models.Caller, sourceID uuid.UUID) (*models.Deck, error) {
	ret := _m.Called(ctx, caller, sourceID)
	var r0 *models.Deck
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Deck)
	}
	return r0, ret.Error(1)
}

func (_m *MockDeckService) ListCards(ctx context.Context, caller models.Caller, deckID uuid.UUID) ([]models.Card, error) {
	ret := _m.Called(ctx, caller, deckID)
	var r0 []models.Card
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Card)
	}
	return r0, ret.Error(1)
}

func (_m *MockDeckService) AddCard(ctx context.Context, caller models.Caller, deckID uuid.UUID, front, back string) (*models.Card, error) {
	ret := _m.Called(ctx, caller, deckID, front, back)
	var r0 *models.Card
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Card)
	}
	return r0, ret.Error(1)
}

func (_m *MockDeckService) UpdateCard(ctx context.Context, caller models.Caller, cardID uuid.UUID, upd models.CardUpdate) (*models.Card, error) {
	ret := _m.Called(ctx, caller, cardID, upd)
	var r0 *models.Card
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Card)
	}
	return r0, ret.Error(1)
}

func (_m *MockDeckService) DeleteCard(ctx context.Context, caller models.Caller, cardID uuid.UUID) error {
	ret := _m.Called(ctx, caller, cardID)
	return ret.Error(0)
}

// NewMockDeckService creates a new instance of MockDeckService. It also
// registers a testing interface on the mock and a cleanup
// function to assert the mocks expectations.
func NewMockDeckService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDeckService {
	m := &MockDeckService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ service.DeckService = (*MockDeckService)(nil)
