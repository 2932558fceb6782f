package mocks

import (
	"context"

	"claimdesk/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockCommissionRepository struct {
	mock.Mock
}

func (m *MockCommissionRepository) Upsert(ctx context.Context, c *model.Commission) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCommissionRepository) FindByCase(ctx context.Context, caseID int64) (*model.Commission, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Commission), args.Error(1)
}
