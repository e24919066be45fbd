package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/huycopper/flashmind/internal/interfaces"
	"github.com/huycopper/flashmind/internal/models"
)

// MockDeckRepository is a mock type for the DeckRepository type
type MockDeckRepository struct {
	mock.Mock
}

func (_m *MockDeckRepository) Create(ctx context.Context, deck *models.Deck) error {
	ret := _m.Called(ctx, deck)
	return ret.Error(0)
}

func (_m *MockDeckRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Deck, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Deck
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Deck)
	}
	return r0, ret.Error(1)
}

func (_m *MockDeckRepository) List(ctx context.Context, filter models.DeckFilter) ([]models.Deck, error) {
	ret := _m.Called(ctx, filter)

	var r0 []models.Deck
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Deck)
	}
	return r0, ret.Error(1)
}

func (_m *MockDeckRepository) Update(ctx context.Context, id uuid.UUID, upd models.DeckUpdate) (*models.Deck, error) {
	ret := _m.Called(ctx, id, upd)

	var r0 *models.Deck
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Deck)
	}
	return r0, ret.Error(1)
}

func (_m *MockDeckRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *MockDeckRepository) Clone(ctx context.Context, sourceID, ownerID uuid.UUID, ownerName, title string) (*models.Deck, error) {
	ret := _m.Called(ctx, sourceID, ownerID, ownerName, title)

	var r0 *models.Deck
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Deck)
	}
	return r0, ret.Error(1)
}

func (_m *MockDeckRepository) SetHidden(ctx context.Context, id uuid.UUID, hidden bool) error {
	ret := _m.Called(ctx, id, hidden)
	return ret.Error(0)
}

func (_m *MockDeckRepository) UpdateOwnerName(ctx context.Context, ownerID uuid.UUID, ownerName string) error {
	ret := _m.Called(ctx, ownerID, ownerName)
	return ret.Error(0)
}

// NewMockDeckRepository creates a new instance of MockDeckRepository. It also
// registers a testing interface on the mock and a cleanup
// function to assert the mocks expectations.
func NewMockDeckRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDeckRepository {
	m := &MockDeckRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ interfaces.DeckRepository = (*MockDeckRepository)(nil)
