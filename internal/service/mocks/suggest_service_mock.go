package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/huycopper/flashmind/internal/service"
)

// MockSuggestService is a mock type for the SuggestService type
type MockSuggestService struct {
	mock.Mock
}

func (_m *MockSuggestService) SuggestAnswer(ctx context.Context, frontText, deckContext string) (string, error) {
	ret := _m.Called(ctx, frontText, deckContext)
	return ret.String(0), ret.Error(1)
}

// NewMockSuggestService creates a new instance of MockSuggestService. It also
// registers a testing interface on the mock and a cleanup
// function to assert the mocks expectations.
func NewMockSuggestService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSuggestService {
	m := &MockSuggestService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ service.SuggestService = (*MockSuggestService)(nil)
