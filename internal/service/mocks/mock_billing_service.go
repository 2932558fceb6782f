package mocks

import (
	"context"

	"claimdesk/internal/authz"
	"claimdesk/internal/model"
	"claimdesk/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockBillingService struct {
	mock.Mock
}

func (m *MockBillingService) Mine(ctx context.Context, p authz.Principal) (*model.OfficerBilling, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OfficerBilling), args.Error(1)
}

func (m *MockBillingService) Report(ctx context.Context, p authz.Principal, q service.BillingQuery) ([]model.OfficerBilling, error) {
	args := m.Called(ctx, p, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.OfficerBilling), args.Error(1)
}
