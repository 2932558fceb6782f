package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"claimdesk/internal/model"
	repoMocks "claimdesk/internal/repository/mocks"
)

func TestCommissionService_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to pending", func(t *testing.T) {
		cases := new(repoMocks.MockCaseRepository)
		commissions := new(repoMocks.MockCommissionRepository)
		cases.On("FindByID", mock.Anything, int64(5)).Return(sampleCase(), nil)
		commissions.On("Upsert", mock.Anything, mock.MatchedBy(func(c *model.Commission) bool {
			return c.CaseID == 5 && c.Status == model.CommissionPending && c.Notes == "site visit"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*model.Commission).ID = 3
		}).Return(nil)

		c, err := NewCommissionService(cases, commissions).Save(ctx, admin(), 5, CommissionInput{
			Type:   model.CommissionFixed,
			Amount: 1500,
			Notes:  " site visit ",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(3), c.ID)
		commissions.AssertExpectations(t)
	})

	tests := []struct {
		name string
		in   CommissionInput
	}{
		{"unknown type", CommissionInput{Type: "bonus", Amount: 1}},
		{"unknown status", CommissionInput{Type: model.CommissionFixed, Status: "settled"}},
		{"negative amount", CommissionInput{Type: model.CommissionCustom, Amount: -1}},
		{"percentage over 100", CommissionInput{Type: model.CommissionPercentage, Amount: 120}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cases := new(repoMocks.MockCaseRepository)
			commissions := new(repoMocks.MockCommissionRepository)

			_, err := NewCommissionService(cases, commissions).Save(ctx, admin(), 5, tt.in)
			assert.ErrorIs(t, err, ErrInvalidInput)
			commissions.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
		})
	}

	t.Run("officers cannot set commissions", func(t *testing.T) {
		commissions := new(repoMocks.MockCommissionRepository)
		_, err := NewCommissionService(new(repoMocks.MockCaseRepository), commissions).
			Save(ctx, officer(), 5, CommissionInput{Type: model.CommissionFixed})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("unknown case", func(t *testing.T) {
		cases := new(repoMocks.MockCaseRepository)
		cases.On("FindByID", mock.Anything, int64(9)).Return(nil, sql.ErrNoRows)

		_, err := NewCommissionService(cases, new(repoMocks.MockCommissionRepository)).
			Save(ctx, admin(), 9, CommissionInput{Type: model.CommissionFixed})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("store failure", func(t *testing.T) {
		cases := new(repoMocks.MockCaseRepository)
		commissions := new(repoMocks.MockCommissionRepository)
		cases.On("FindByID", mock.Anything, int64(5)).Return(sampleCase(), nil)
		commissions.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

		_, err := NewCommissionService(cases, commissions).Save(ctx, admin(), 5, CommissionInput{Type: model.CommissionFixed})
		assert.ErrorContains(t, err, "save commission")
	})
}

func TestCommissionService_Get(t *testing.T) {
	ctx := context.Background()
	cases := new(repoMocks.MockCaseRepository)
	commissions := new(repoMocks.MockCommissionRepository)
	cases.On("FindByID", mock.Anything, int64(5)).Return(sampleCase(), nil)
	commissions.On("FindByCase", mock.Anything, int64(5)).Return(&model.Commission{CaseID: 5, Amount: 10}, nil).Once()
	commissions.On("FindByCase", mock.Anything, int64(5)).Return(nil, sql.ErrNoRows).Once()

	svc := NewCommissionService(cases, commissions)
	c, err := svc.Get(ctx, admin(), 5)
	require.NoError(t, err)
	assert.Equal(t, 10.0, c.Amount)

	_, err = svc.Get(ctx, admin(), 5)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorContains(t, err, "commission for case 5")
}
