package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/huycopper/flashmind/internal/interfaces"
	"github.com/huycopper/flashmind/internal/models"
)

// MockCardRepository is a mock type for the CardRepository type
type MockCardRepository struct {
	mock.Mock
}

func (_m *MockCardRepository) ListByDeck(ctx context.Context, deckID uuid.UUID) ([]models.Card, error) {
	ret := _m.Called(ctx, deckID)

	var r0 []models.Card
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Card)
	}
	return r0, ret.Error(1)
}

func (_m *MockCardRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Card, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Card
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Card)
	}
	return r0, ret.Error(1)
}

func (_m *MockCardRepository) Create(ctx context.Context, card *models.Card) error {
	ret := _m.Called(ctx, card)
	return ret.Error(0)
}

func (_m *MockCardRepository) Update(ctx context.Context, id uuid.UUID, upd models.CardUpdate) (*models.Card, error) {
	ret := _m.Called(ctx, id, upd)

	var r0 *models.Card
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Card)
	}
	return r0, ret.Error(1)
}

func (_m *MockCardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

// NewMockCardRepository creates a new instance of MockCardRepository. It also
// registers a testing interface on the mock and a cleanup
// function to assert the mocks expectations.
func NewMockCardRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCardRepository {
	m := &MockCardRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ interfaces.CardRepository = (*MockCardRepository)(nil)
