package mocks

import (
	"context"

	"claimdesk/internal/authz"
	"claimdesk/internal/model"
	"claimdesk/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockCaseService struct {
	mock.Mock
}

func (m *MockCaseService) Create(ctx context.Context, p authz.Principal, in service.CreateCaseInput) (*model.Case, error) {
	args := m.Called(ctx, p, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Case), args.Error(1)
}

func (m *MockCaseService) Get(ctx context.Context, p authz.Principal, id int64) (*model.Case, error) {
	args := m.Called(ctx, p, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Case), args.Error(1)
}

func (m *MockCaseService) List(ctx context.Context, p authz.Principal, status model.CaseStatus, limit, offset int) (*service.CaseListResult, error) {
	args := m.Called(ctx, p, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CaseListResult), args.Error(1)
}

func (m *MockCaseService) UpdateStatus(ctx context.Context, p authz.Principal, id int64, status model.CaseStatus) error {
	args := m.Called(ctx, p, id, status)
	return args.Error(0)
}

func (m *MockCaseService) SaveDetails(ctx context.Context, p authz.Principal, id int64, d service.CaseDetails) (*model.Case, error) {
	args := m.Called(ctx, p, id, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Case), args.Error(1)
}

func (m *MockCaseService) Delete(ctx context.Context, p authz.Principal, id int64) error {
	args := m.Called(ctx, p, id)
	return args.Error(0)
}
