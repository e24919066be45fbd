package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/huycopper/flashmind/internal/models"
	"github.com/huycopper/flashmind/internal/service"
)

// MockRatingService is a mock type for the RatingService type
type MockRatingService struct {
	mock.Mock
}

func (_m *MockRatingService) RateDeck(ctx context.Context, caller models.Caller, deckID uuid.UUID, value int) (*models.Deck, error) {
	ret := _m.Called(ctx, caller, deckID, value)
	var r0 *models.Deck
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Deck)
	}
	return r0, ret.Error(1)
}

func (_m *MockRatingService) GetMyRating(ctx context.Context, caller models.Caller, deckID uuid.UUID) (int, error) {
	ret := _m.Called(ctx, caller, deckID)
	return ret.Int(0), ret.Error(1)
}

// NewMockRatingService creates a new instance of MockRatingService. It also
// registers a testing interface on the mock and a cleanup
// function to assert the mocks expectations.
func NewMockRatingService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRatingService {
	m := &MockRatingService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ service.RatingService = (*MockRatingService)(nil)
