package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/huycopper/flashmind/internal/models"
	"github.com/huycopper/flashmind/internal/service"
)

// MockProfileService is a mock type for the ProfileService type
type MockProfileService struct {
	mock.Mock
}

func (_m *MockProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	ret := _m.Called(ctx, userID)
	var r0 *models.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.User)
	}
	return r0, ret.Error(1)
}

func (_m *MockProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, upd models.ProfileUpdate) (*models.User, error) {
	ret := _m.Called(ctx, userID, upd)
	var r0 *models.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.User)
	}
	return r0, ret.Error(1)
}

func (_m *MockProfileService) ListWarnings(ctx context.Context, userID uuid.UUID) []models.Warning {
	ret := _m.Called(ctx, userID)
	var r0 []models.Warning
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Warning)
	}
	return r0
}

func (_m *MockProfileService) DismissWarning(ctx context.Context, caller models.Caller, warningID uuid.UUID) error {
	ret := _m.Called(ctx, caller, warningID)
	return ret.Error(0)
}

// NewMockProfileService creates a new instance of MockProfileService. It also
// registers a testing interface on the mock and a cleanup
// function to assert the mocks expectations.
func NewMockProfileService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProfileService {
	m := &MockProfileService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ service.ProfileService = (*MockProfileService)(nil)
