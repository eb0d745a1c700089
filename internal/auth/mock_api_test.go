package auth_test

import (
	"context"

	"reportboard/client/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockAPI is a testify mock of auth.API.
type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) Register(ctx context.Context, creds models.Credentials) error {
	args := m.Called(ctx, creds)
	return args.Error(0)
}

func (m *MockAPI) Login(ctx context.Context, creds models.Credentials) (string, error) {
	args := m.Called(ctx, creds)
	return args.String(0), args.Error(1)
}

func (m *MockAPI) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAPI) Me(ctx context.Context) (*models.MeResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MeResult), args.Error(1)
}
