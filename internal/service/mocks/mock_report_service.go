package mocks

import (
	"context"

	"claimdesk/internal/authz"
	"claimdesk/internal/model"
	"claimdesk/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Generate(ctx context.Context, p authz.Principal, caseID int64, in service.GenerateInput) (*model.GeneratedReport, error) {
	args := m.Called(ctx, p, caseID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GeneratedReport), args.Error(1)
}

func (m *MockReportService) ListForCase(ctx context.Context, p authz.Principal, caseID int64) ([]model.GeneratedReport, error) {
	args := m.Called(ctx, p, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GeneratedReport), args.Error(1)
}

func (m *MockReportService) DownloadURL(ctx context.Context, p authz.Principal, reportID int64) (string, error) {
	args := m.Called(ctx, p, reportID)
	return args.String(0), args.Error(1)
}

func (m *MockReportService) Delete(ctx context.Context, p authz.Principal, reportID int64) error {
	args := m.Called(ctx, p, reportID)
	return args.Error(0)
}
