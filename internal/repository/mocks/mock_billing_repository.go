package mocks

import (
	"context"

	"claimdesk/internal/model"
	"claimdesk/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockBillingRepository struct {
	mock.Mock
}

func (m *MockBillingRepository) ListLines(ctx context.Context, f repository.BillingFilter) ([]model.BillingLine, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BillingLine), args.Error(1)
}
