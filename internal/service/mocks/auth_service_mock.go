package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/huycopper/flashmind/internal/models"
	"github.com/huycopper/flashmind/internal/service"
)

// MockAuthService is a mock type for the AuthService type
type MockAuthService struct {
	mock.Mock
}

func (_m *MockAuthService) Register(ctx context.Context, username, displayName, email, password string) (*models.User, error) {
	ret := _m.Called(ctx, username, displayName, email, password)
	var r0 *models.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.User)
	}
	return r0, ret.Error(1)
}

func (_m *MockAuthService) Login(ctx context.Context, username, password string) (*models.TokenDetails, error) {
	ret := _m.Called(ctx, username, password)
	var r0 *models.TokenDetails
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.TokenDetails)
	}
	return r0, ret.Error(1)
}

func (_m *MockAuthService) Logout(ctx context.Context, userID uuid.UUID, accessUUID, refreshUUID string) error {
	ret := _m.Called(ctx, userID, accessUUID, refreshUUID)
	return ret.Error(0)
}

func (_m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (*models.TokenDetails, error) {
	ret := _m.Called(ctx, refreshToken)
	var r0 *models.TokenDetails
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.TokenDetails)
	}
	return r0, ret.Error(1)
}

func (_m *MockAuthService) VerifyAccessToken(ctx context.Context, tokenString string) (*models.Claims, error) {
	ret := _m.Called(ctx, tokenString)
	var r0 *models.Claims
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Claims)
	}
	return r0, ret.Error(1)
}

// NewMockAuthService creates a new instance of MockAuthService. It also
// registers a testing interface on the mock and a cleanup
// function to assert the mocks expectations.
func NewMockAuthService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuthService {
	m := &MockAuthService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ service.AuthService = (*MockAuthService)(nil)
