package service

import (
	"context"
	"fmt"
	"strings"

	"claimdesk/internal/authz"
	"claimdesk/internal/model"
	"claimdesk/internal/repository"
)

// CommissionInput is the admin-entered commission of a case.
type CommissionInput struct {
	Type   model.CommissionType   `json:"commission_type"`
	Amount float64                `json:"amount"`
	Notes  string                 `json:"notes"`
	Status model.CommissionStatus `json:"status"`
}

// CommissionService records what is owed for a case.
type CommissionService interface {
	Get(ctx context.Context, p authz.Principal, caseID int64) (*model.Commission, error)
	// Save creates or replaces the case's single commission.
	Save(ctx context.Context, p authz.Principal, caseID int64, in CommissionInput) (*model.Commission, error)
}

type commissionService struct {
	cases       repository.CaseRepository
	commissions repository.CommissionRepository
}

// NewCommissionService constructs a new CommissionService.
func NewCommissionService(cases repository.CaseRepository, commissions repository.CommissionRepository) CommissionService {
	return &commissionService{cases: cases, commissions: commissions}
}

func (s *commissionService) Get(ctx context.Context, p authz.Principal, caseID int64) (*model.Commission, error) {
	if _, err := loadCase(ctx, s.cases, p, caseID, false); err != nil {
		return nil, err
	}
	c, err := s.commissions.FindByCase(ctx, caseID)
	if err != nil {
		return nil, notFound(err, "commission for case", caseID)
	}
	return c, nil
}

func (s *commissionService) Save(ctx context.Context, p authz.Principal, caseID int64, in CommissionInput) (*model.Commission, error) {
	if p.Scope != authz.ScopeAny {
		return nil, ErrForbidden
	}
	if in.Status == "" {
		in.Status = model.CommissionPending
	}
	switch {
	case !in.Type.Valid():
		return nil, invalid("unknown commission_type %q", in.Type)
	case !in.Status.Valid():
		return nil, invalid("unknown status %q", in.Status)
	case in.Amount < 0:
		return nil, invalid("amount must not be negative")
	case in.Type == model.CommissionPercentage && in.Amount > 100:
		return nil, invalid("percentage must not exceed 100")
	}
	if _, err := loadCase(ctx, s.cases, p, caseID, false); err != nil {
		return nil, err
	}

	c := &model.Commission{
		CaseID: caseID,
		Type:   in.Type,
		Amount: in.Amount,
		Notes:  strings.TrimSpace(in.Notes),
		Status: in.Status,
	}
	if err := s.commissions.Upsert(ctx, c); err != nil {
		return nil, fmt.Errorf("save commission: %w", err)
	}
	return c, nil
}
