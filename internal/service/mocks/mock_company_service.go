package mocks

import (
	"context"

	"claimdesk/internal/authz"
	"claimdesk/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockCompanyService struct {
	mock.Mock
}

func (m *MockCompanyService) List(ctx context.Context, p authz.Principal, activeOnly bool) ([]model.Company, error) {
	args := m.Called(ctx, p, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Company), args.Error(1)
}

func (m *MockCompanyService) Create(ctx context.Context, p authz.Principal, name string) (*model.Company, error) {
	args := m.Called(ctx, p, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Company), args.Error(1)
}

func (m *MockCompanyService) ToggleActive(ctx context.Context, p authz.Principal, id int64) (*model.Company, error) {
	args := m.Called(ctx, p, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Company), args.Error(1)
}
