package mocks

import (
	"context"

	"claimdesk/internal/authz"
	"claimdesk/internal/model"
	"claimdesk/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockCaseDocumentService struct {
	mock.Mock
}

func (m *MockCaseDocumentService) UploadBatch(ctx context.Context, p authz.Principal, caseID int64, files []service.UploadFile, docType, source string) ([]model.CaseDocument, error) {
	args := m.Called(ctx, p, caseID, files, docType, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CaseDocument), args.Error(1)
}

func (m *MockCaseDocumentService) ListForCase(ctx context.Context, p authz.Principal, caseID int64) ([]model.CaseDocument, error) {
	args := m.Called(ctx, p, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CaseDocument), args.Error(1)
}

func (m *MockCaseDocumentService) ViewURL(ctx context.Context, p authz.Principal, id int64) (string, error) {
	args := m.Called(ctx, p, id)
	return args.String(0), args.Error(1)
}

func (m *MockCaseDocumentService) DownloadURL(ctx context.Context, p authz.Principal, id int64) (string, error) {
	args := m.Called(ctx, p, id)
	return args.String(0), args.Error(1)
}

func (m *MockCaseDocumentService) Delete(ctx context.Context, p authz.Principal, id int64) error {
	args := m.Called(ctx, p, id)
	return args.Error(0)
}
