package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/huycopper/flashmind/internal/models"
	"github.com/huycopper/flashmind/internal/service"
)

// MockModerationService is a mock type for the ModerationService type
type MockModerationService struct {
	mock.Mock
}

func (_m *MockModerationService) ListUsers(ctx context.Context, caller models.Caller) ([]models.User, error) {
	ret := _m.Called(ctx, caller)
	var r0 []models.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.User)
	}
	return r0, ret.Error(1)
}

func (_m *MockModerationService) SetUserLock(ctx context.Context, caller models.Caller, userID uuid.UUID, locked bool) error {
	ret := _m.Called(ctx, caller, userID, locked)
	return ret.Error(0)
}

func (_m *MockModerationService) IssueWarning(ctx context.Context, caller models.Caller, userID uuid.UUID, reason string) (*models.Warning, error) {
	ret := _m.Called(ctx, caller, userID, reason)
	var r0 *models.Warning
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Warning)
	}
	return r0, ret.Error(1)
}

func (_m *MockModerationService) ListAllDecks(ctx context.Context, caller models.Caller, search string) ([]models.Deck, error) {
	ret := _m.Called(ctx, caller, search)
	var r0 []models.Deck
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Deck)
	}
	return r0, ret.Error(1)
}

func (_m *MockModerationService) SetDeckHidden(ctx context.Context, caller models.Caller, deckID uuid.UUID, hidden bool) error {
	ret := _m.Called(ctx, caller, deckID, hidden)
	return ret.Error(0)
}

func (_m *MockModerationService) ListDeckComments(ctx context.Context, caller models.Caller, deckID uuid.UUID) ([]models.Comment, error) {
	ret := _m.Called(ctx, caller, deckID)
	var r0 []models.Comment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Comment)
	}
	return r0, ret.Error(1)
}

func (_m *MockModerationService) SetCommentHidden(ctx context.Context, caller models.Caller, commentID uuid.UUID, hidden bool) error {
	ret := _m.Called(ctx, caller, commentID, hidden)
	return ret.Error(0)
}

func (_m *MockModerationService) DeleteComment(ctx context.Context, caller models.Caller, commentID uuid.UUID) error {
	ret := _m.Called(ctx, caller, commentID)
	return ret.Error(0)
}

// NewMockModerationService creates a new instance of MockModerationService.
// It also registers a testing interface on the mock and a cleanup
// function to assert the mocks expectations.
func NewMockModerationService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockModerationService {
	m := &MockModerationService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ service.ModerationService = (*MockModerationService)(nil)
