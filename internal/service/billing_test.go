package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"claimdesk/internal/authz"
	"claimdesk/internal/model"
	"claimdesk/internal/repository"
	repoMocks "claimdesk/internal/repository/mocks"
)

func fieldOfficer() authz.Principal {
	return authz.Principal{UserID: 9, Name: "Vikram", Role: authz.RoleFieldOfficer, Scope: authz.ScopeOwn}
}

func amount(v float64) *float64 { return &v }

func TestBillingService_Mine(t *testing.T) {
	ctx := context.Background()

	t.Run("sums approved expenses", func(t *testing.T) {
		repo := new(repoMocks.MockBillingRepository)
		repo.On("ListLines", mock.Anything, mock.MatchedBy(func(f repository.BillingFilter) bool {
			return f.FieldOfficerID != nil && *f.FieldOfficerID == 9 && f.ExcludeClosed && f.CreatedFrom == nil
		})).Return([]model.BillingLine{
			{CaseID: 1, FieldOfficerID: 9, ApprovedExpenseFO: amount(100.1)},
			{CaseID: 2, FieldOfficerID: 9},
			{CaseID: 3, FieldOfficerID: 9, ApprovedExpenseFO: amount(200.2)},
		}, nil)

		b, err := NewBillingService(repo, nil).Mine(ctx, fieldOfficer())
		require.NoError(t, err)
		assert.Equal(t, int64(9), b.FieldOfficerID)
		assert.Len(t, b.Cases, 3)
		assert.Equal(t, 300.3, b.TotalApprovedFO)
	})

	t.Run("no cases", func(t *testing.T) {
		repo := new(repoMocks.MockBillingRepository)
		repo.On("ListLines", mock.Anything, mock.Anything).Return([]model.BillingLine{}, nil)

		b, err := NewBillingService(repo, nil).Mine(ctx, fieldOfficer())
		require.NoError(t, err)
		assert.NotNil(t, b.Cases)
		assert.Zero(t, b.TotalApprovedFO)
	})

	t.Run("store failure", func(t *testing.T) {
		repo := new(repoMocks.MockBillingRepository)
		repo.On("ListLines", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

		_, err := NewBillingService(repo, nil).Mine(ctx, fieldOfficer())
		assert.ErrorContains(t, err, "list billing")
	})
}

func TestBillingService_Report(t *testing.T) {
	ctx := context.Background()
	ist := time.FixedZone("IST", 5*3600+1800)

	t.Run("month window in report zone", func(t *testing.T) {
		repo := new(repoMocks.MockBillingRepository)
		repo.On("ListLines", mock.Anything, mock.MatchedBy(func(f repository.BillingFilter) bool {
			return f.CreatedFrom != nil && f.CreatedTo != nil &&
				f.CreatedFrom.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, ist)) &&
				f.CreatedTo.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, ist)) &&
				!f.ExcludeClosed
		})).Return([]model.BillingLine{
			{CaseID: 1, FieldOfficerID: 4, ApprovedExpenseFO: amount(50)},
			{CaseID: 2, FieldOfficerID: 9, ApprovedExpenseFO: amount(75.5)},
			{CaseID: 3, FieldOfficerID: 9, ApprovedExpenseFO: amount(24.5)},
		}, nil)

		groups, err := NewBillingService(repo, ist).Report(ctx, admin(), BillingQuery{Month: 2, Year: 2024})
		require.NoError(t, err)
		require.Len(t, groups, 2)
		assert.Equal(t, int64(4), groups[0].FieldOfficerID)
		assert.Equal(t, 50.0, groups[0].TotalApprovedFO)
		assert.Equal(t, int64(9), groups[1].FieldOfficerID)
		assert.Len(t, groups[1].Cases, 2)
		assert.Equal(t, 100.0, groups[1].TotalApprovedFO)
	})

	t.Run("whole year", func(t *testing.T) {
		repo := new(repoMocks.MockBillingRepository)
		repo.On("ListLines", mock.Anything, mock.MatchedBy(func(f repository.BillingFilter) bool {
			return f.CreatedFrom.Equal(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)) &&
				f.CreatedTo.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
		})).Return([]model.BillingLine{}, nil)

		groups, err := NewBillingService(repo, nil).Report(ctx, admin(), BillingQuery{Year: 2023})
		require.NoError(t, err)
		assert.Empty(t, groups)
	})

	tests := []struct {
		name    string
		p       authz.Principal
		q       BillingQuery
		wantErr error
	}{
		{"month without year", admin(), BillingQuery{Month: 3}, ErrInvalidInput},
		{"month out of range", admin(), BillingQuery{Month: 13, Year: 2024}, ErrInvalidInput},
		{"year out of range", admin(), BillingQuery{Year: 24}, ErrInvalidInput},
		{"field officers cannot", fieldOfficer(), BillingQuery{}, ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(repoMocks.MockBillingRepository)
			_, err := NewBillingService(repo, nil).Report(ctx, tt.p, tt.q)
			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertNotCalled(t, "ListLines", mock.Anything, mock.Anything)
		})
	}
}
