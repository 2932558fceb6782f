package mocks

import (
	"context"

	"claimdesk/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockCaseDocumentRepository struct {
	mock.Mock
}

func (m *MockCaseDocumentRepository) CreateBatch(ctx context.Context, docs []*model.CaseDocument) error {
	args := m.Called(ctx, docs)
	return args.Error(0)
}

func (m *MockCaseDocumentRepository) FindByID(ctx context.Context, id int64) (*model.CaseDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CaseDocument), args.Error(1)
}

func (m *MockCaseDocumentRepository) ListByCase(ctx context.Context, caseID int64) ([]model.CaseDocument, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CaseDocument), args.Error(1)
}

func (m *MockCaseDocumentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
