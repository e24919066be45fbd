package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/huycopper/flashmind/internal/interfaces"
	"github.com/huycopper/flashmind/internal/models"
)

// MockCommentRepository is a mock type for the CommentRepository type
type MockCommentRepository struct {
	mock.Mock
}

func (_m *MockCommentRepository) ListByDeck(ctx context.Context, deckID uuid.UUID, includeHidden bool) ([]models.Comment, error) {
	ret := _m.Called(ctx, deckID, includeHidden)

	var r0 []models.Comment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Comment)
	}
	return r0, ret.Error(1)
}

func (_m *MockCommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Comment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Comment)
	}
	return r0, ret.Error(1)
}

func (_m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	ret := _m.Called(ctx, comment)
	return ret.Error(0)
}

func (_m *MockCommentRepository) SetHidden(ctx context.Context, id uuid.UUID, hidden bool) error {
	ret := _m.Called(ctx, id, hidden)
	return ret.Error(0)
}

func (_m *MockCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *MockCommentRepository) UpdateUserName(ctx context.Context, userID uuid.UUID, userName string) error {
	ret := _m.Called(ctx, userID, userName)
	return ret.Error(0)
}

// NewMockCommentRepository creates a new instance of MockCommentRepository.
// It also registers a testing interface on the mock and a cleanup
// function to assert the mocks expectations.
func NewMockCommentRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCommentRepository {
	m := &MockCommentRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ interfaces.CommentRepository = (*MockCommentRepository)(nil)
