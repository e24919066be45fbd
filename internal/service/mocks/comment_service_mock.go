package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/huycopper/flashmind/internal/models"
	"github.com/huycopper/flashmind/internal/service"
)

// MockCommentService is a mock type for the CommentService type
type MockCommentService struct {
	mock.Mock
}

func (_m *MockCommentService) ListComments(ctx context.Context, caller models.Caller, deckID uuid.UUID) ([]models.Comment, error) {
	ret := _m.Called(ctx, caller, deckID)
	var r0 []models.Comment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Comment)
	}
	return r0, ret.Error(1)
}

func (_m *MockCommentService) AddComment(ctx context.Context, caller models.Caller, deckID uuid.UUID, content string) (*models.Comment, error) {
	ret := _m.Called(ctx, caller, deckID, content)
	var r0 *models.Comment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Comment)
	}
	return r0, ret.Error(1)
}

// NewMockCommentService creates a new instance of MockCommentService. It also
// registers a testing interface on the mock and a cleanup
// function to assert the mocks expectations.
func NewMockCommentService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCommentService {
	m := &MockCommentService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ service.CommentService = (*MockCommentService)(nil)
