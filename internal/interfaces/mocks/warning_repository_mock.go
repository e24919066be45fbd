package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/huycopper/flashmind/internal/interfaces"
	"github.com/huycopper/flashmind/internal/models"
)

// MockWarningRepository is a mock type for the WarningRepository type
type MockWarningRepository struct {
	mock.Mock
}

func (_m *MockWarningRepository) Create(ctx context.Context, warning *models.Warning) error {
	ret := _m.Called(ctx, warning)
	return ret.Error(0)
}

func (_m *MockWarningRepository) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]models.Warning, error) {
	ret := _m.Called(ctx, userID)

	var r0 []models.Warning
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Warning)
	}
	return r0, ret.Error(1)
}

func (_m *MockWarningRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Warning, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Warning
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Warning)
	}
	return r0, ret.Error(1)
}

func (_m *MockWarningRepository) Dismiss(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

// NewMockWarningRepository creates a new instance of MockWarningRepository.
// It also registers a testing interface on the mock and a cleanup
// function to assert the mocks expectations.
func NewMockWarningRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWarningRepository {
	m := &MockWarningRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ interfaces.WarningRepository = (*MockWarningRepository)(nil)
