package mocks

import (
	"context"

	"claimdesk/internal/model"
	"claimdesk/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockCaseRepository struct {
	mock.Mock
}

func (m *MockCaseRepository) Create(ctx context.Context, c *model.Case) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCaseRepository) FindByID(ctx context.Context, id int64) (*model.Case, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Case), args.Error(1)
}

func (m *MockCaseRepository) FindWithDetails(ctx context.Context, id int64) (*model.Case, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Case), args.Error(1)
}

func (m *MockCaseRepository) List(ctx context.Context, f repository.CaseFilter, pq repository.PageQuery) (*repository.PageResult[model.Case], error) {
	args := m.Called(ctx, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Case]), args.Error(1)
}

func (m *MockCaseRepository) UpdateStatus(ctx context.Context, id int64, status model.CaseStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockCaseRepository) SavePatient(ctx context.Context, caseID int64, d *model.PatientDetail) error {
	args := m.Called(ctx, caseID, d)
	return args.Error(0)
}

func (m *MockCaseRepository) SaveHospital(ctx context.Context, caseID int64, d *model.HospitalDetail) error {
	args := m.Called(ctx, caseID, d)
	return args.Error(0)
}

func (m *MockCaseRepository) SavePolicy(ctx context.Context, caseID int64, d *model.PolicyDetail) error {
	args := m.Called(ctx, caseID, d)
	return args.Error(0)
}

func (m *MockCaseRepository) SaveBill(ctx context.Context, caseID int64, d *model.BillDetail) error {
	args := m.Called(ctx, caseID, d)
	return args.Error(0)
}

func (m *MockCaseRepository) SaveInvestigation(ctx context.Context, caseID int64, d *model.InvestigationNote) error {
	args := m.Called(ctx, caseID, d)
	return args.Error(0)
}

func (m *MockCaseRepository) SaveDispatch(ctx context.Context, caseID int64, d *model.DispatchDetail) error {
	args := m.Called(ctx, caseID, d)
	return args.Error(0)
}

func (m *MockCaseRepository) Delete(ctx context.Context, id int64) ([]string, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
