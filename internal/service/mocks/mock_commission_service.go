package mocks

import (
	"context"

	"claimdesk/internal/authz"
	"claimdesk/internal/model"
	"claimdesk/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockCommissionService struct {
	mock.Mock
}

func (m *MockCommissionService) Get(ctx context.Context, p authz.Principal, caseID int64) (*model.Commission, error) {
	args := m.Called(ctx, p, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Commission), args.Error(1)
}

func (m *MockCommissionService) Save(ctx context.Context, p authz.Principal, caseID int64, in service.CommissionInput) (*model.Commission, error) {
	args := m.Called(ctx, p, caseID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Commission), args.Error(1)
}
