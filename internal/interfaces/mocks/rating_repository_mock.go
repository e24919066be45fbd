package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/huycopper/flashmind/internal/interfaces"
)

// MockRatingRepository is a mock type for the RatingRepository type
type MockRatingRepository struct {
	mock.Mock
}

func (_m *MockRatingRepository) Rate(ctx context.Context, deckID, userID uuid.UUID, value int) error {
	ret := _m.Called(ctx, deckID, userID, value)
	return ret.Error(0)
}

func (_m *MockRatingRepository) GetValue(ctx context.Context, deckID, userID uuid.UUID) (int, error) {
	ret := _m.Called(ctx, deckID, userID)
	return ret.Int(0), ret.Error(1)
}

// NewMockRatingRepository creates a new instance of MockRatingRepository. It
// also registers a testing interface on the mock and a cleanup
// function to assert the mocks expectations.
func NewMockRatingRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRatingRepository {
	m := &MockRatingRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ interfaces.RatingRepository = (*MockRatingRepository)(nil)
