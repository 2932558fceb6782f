package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"claimdesk/internal/authz"
	"claimdesk/internal/model"
	"claimdesk/internal/repository"
)

const maxCompanyName = 200

// CompanyService manages the insurance companies cases and templates refer to.
type CompanyService interface {
	List(ctx context.Context, p authz.Principal, activeOnly bool) ([]model.Company, error)
	Create(ctx context.Context, p authz.Principal, name string) (*model.Company, error)
	// ToggleActive flips a company between active and inactive.
	ToggleActive(ctx context.Context, p authz.Principal, id int64) (*model.Company, error)
}

type companyService struct {
	companies repository.CompanyRepository
}

// NewCompanyService constructs a new CompanyService.
func NewCompanyService(companies repository.CompanyRepository) CompanyService {
	return &companyService{companies: companies}
}

func (s *companyService) List(ctx context.Context, p authz.Principal, activeOnly bool) ([]model.Company, error) {
	if p.Scope == authz.ScopeDeny {
		return nil, ErrForbidden
	}
	return s.companies.List(ctx, activeOnly)
}

func (s *companyService) Create(ctx context.Context, p authz.Principal, name string) (*model.Company, error) {
	if p.Scope != authz.ScopeAny {
		return nil, ErrForbidden
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("name is required")
	}
	if utf8.RuneCountInString(name) > maxCompanyName {
		return nil, invalid("name must be at most %d characters", maxCompanyName)
	}

	c := &model.Company{Name: name, Active: true}
	if err := s.companies.Create(ctx, c); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: company %q", ErrConflict, name)
		}
		return nil, fmt.Errorf("create company: %w", err)
	}
	return c, nil
}

func (s *companyService) ToggleActive(ctx context.Context, p authz.Principal, id int64) (*model.Company, error) {
	if id <= 0 {
		return nil, ErrIDRequired
	}
	if p.Scope != authz.ScopeAny {
		return nil, ErrForbidden
	}
	c, err := s.companies.ToggleActive(ctx, id)
	if err != nil {
		return nil, notFound(err, "company", id)
	}
	return c, nil
}
