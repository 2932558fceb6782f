package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"claimdesk/internal/authz"
	"claimdesk/internal/model"
	"claimdesk/internal/repository"
)

// CreateCaseInput carries the fields of a new case.
type CreateCaseInput struct {
	CaseRef          string `json:"case_ref"`
	OfficerID        int64  `json:"officer_id"`
	FieldOfficerID   *int64 `json:"field_officer_id,omitempty"`
	InsuranceCompany string `json:"insurance_company"`
	Diagnosis        string `json:"diagnosis"`
	Remark           string `json:"remark"`
}

// CaseDetails holds any subset of the six detail records; nil entries are left untouched.
type CaseDetails struct {
	Patient       *model.PatientDetail     `json:"patient,omitempty"`
	Hospital      *model.HospitalDetail    `json:"hospital,omitempty"`
	Policy        *model.PolicyDetail      `json:"policy,omitempty"`
	Bill          *model.BillDetail        `json:"bill,omitempty"`
	Investigation *model.InvestigationNote `json:"investigation,omitempty"`
	Dispatch      *model.DispatchDetail    `json:"dispatch,omitempty"`
}

func (d CaseDetails) empty() bool {
	return d.Patient == nil && d.Hospital == nil && d.Policy == nil && d.Bill == nil && d.Investigation == nil && d.Dispatch == nil
}

// CaseListResult is the service-level DTO for paginated cases.
type CaseListResult struct {
	Items []model.Case `json:"data"`
	Total int          `json:"total"`
}

// CaseService defines the use cases for investigation cases.
type CaseService interface {
	Create(ctx context.Context, p authz.Principal, in CreateCaseInput) (*model.Case, error)
	// Get returns the case with all existing detail records.
	Get(ctx context.Context, p authz.Principal, id int64) (*model.Case, error)
	List(ctx context.Context, p authz.Principal, status model.CaseStatus, limit, offset int) (*CaseListResult, error)
	UpdateStatus(ctx context.Context, p authz.Principal, id int64, status model.CaseStatus) error
	// SaveDetails upserts the provided detail records and returns the refreshed case.
	SaveDetails(ctx context.Context, p authz.Principal, id int64, d CaseDetails) (*model.Case, error)
	// Delete removes the case with every record hanging off it, then its stored files.
	Delete(ctx context.Context, p authz.Principal, id int64) error
}

type caseService struct {
	cases   repository.CaseRepository
	objects ObjectStore
	now     func() time.Time
}

// NewCaseService constructs a new CaseService.
func NewCaseService(cases repository.CaseRepository, objects ObjectStore) CaseService {
	return &caseService{cases: cases, objects: objects, now: time.Now}
}

// loadCase fetches a case and checks the principal's granted scope against it.
func loadCase(ctx context.Context, cases repository.CaseRepository, p authz.Principal, id int64, withDetails bool) (*model.Case, error) {
	if id <= 0 {
		return nil, ErrIDRequired
	}
	var (
		c   *model.Case
		err error
	)
	if withDetails {
		c, err = cases.FindWithDetails(ctx, id)
	} else {
		c, err = cases.FindByID(ctx, id)
	}
	if err != nil {
		return nil, notFound(err, "case", id)
	}
	if !p.CanAccessCase(c) {
		return nil, ErrForbidden
	}
	return c, nil
}

func (s *caseService) Create(ctx context.Context, p authz.Principal, in CreateCaseInput) (*model.Case, error) {
	in.InsuranceCompany = strings.TrimSpace(in.InsuranceCompany)
	if in.InsuranceCompany == "" {
		return nil, invalid("insurance_company is required")
	}
	switch p.Scope {
	case authz.ScopeOwn:
		// Officers open cases for themselves only.
		in.OfficerID = p.UserID
	case authz.ScopeAny:
		if in.OfficerID == 0 {
			in.OfficerID = p.UserID
		}
	default:
		return nil, ErrForbidden
	}
	if in.OfficerID < 0 {
		return nil, invalid("officer_id must be positive")
	}

	ref := strings.TrimSpace(in.CaseRef)
	if ref == "" {
		ref = fmt.Sprintf("CLM-%s-%s", s.now().UTC().Format("20060102"), strings.ToUpper(uuid.NewString()[:8]))
	}

	c := &model.Case{
		CaseRef:          ref,
		OfficerID:        in.OfficerID,
		FieldOfficerID:   in.FieldOfficerID,
		InsuranceCompany: in.InsuranceCompany,
		Status:           model.CaseOpen,
		Diagnosis:        in.Diagnosis,
		Remark:           in.Remark,
	}
	if err := s.cases.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create case: %w", err)
	}
	return c, nil
}

func (s *caseService) Get(ctx context.Context, p authz.Principal, id int64) (*model.Case, error) {
	return loadCase(ctx, s.cases, p, id, true)
}

func (s *caseService) List(ctx context.Context, p authz.Principal, status model.CaseStatus, limit, offset int) (*CaseListResult, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	if status != "" && !status.Valid() {
		return nil, invalid("unknown status %q", status)
	}

	f := repository.CaseFilter{Status: status}
	switch p.Scope {
	case authz.ScopeAny:
	case authz.ScopeOwn:
		uid := p.UserID
		f.AssignedTo = &uid
	default:
		return nil, ErrForbidden
	}

	res, err := s.cases.List(ctx, f, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &CaseListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *caseService) UpdateStatus(ctx context.Context, p authz.Principal, id int64, status model.CaseStatus) error {
	if !status.Valid() {
		return invalid("unknown status %q", status)
	}
	c, err := loadCase(ctx, s.cases, p, id, false)
	if err != nil {
		return err
	}
	if c.Status == model.CaseClosed && !p.IsAdmin() {
		return ErrCaseClosed
	}
	return notFound(s.cases.UpdateStatus(ctx, id, status), "case", id)
}

func (s *caseService) SaveDetails(ctx context.Context, p authz.Principal, id int64, d CaseDetails) (*model.Case, error) {
	if d.empty() {
		return nil, invalid("at least one detail section is required")
	}
	c, err := loadCase(ctx, s.cases, p, id, false)
	if err != nil {
		return nil, err
	}
	if c.Status == model.CaseClosed && !p.IsAdmin() {
		return nil, ErrCaseClosed
	}

	if d.Patient != nil {
		if err := s.cases.SavePatient(ctx, id, d.Patient); err != nil {
			return nil, err
		}
	}
	if d.Hospital != nil {
		if err := s.cases.SaveHospital(ctx, id, d.Hospital); err != nil {
			return nil, err
		}
	}
	if d.Policy != nil {
		if err := s.cases.SavePolicy(ctx, id, d.Policy); err != nil {
			return nil, err
		}
	}
	if d.Bill != nil {
		if err := s.cases.SaveBill(ctx, id, d.Bill); err != nil {
			return nil, err
		}
	}
	if d.Investigation != nil {
		if err := s.cases.SaveInvestigation(ctx, id, d.Investigation); err != nil {
			return nil, err
		}
	}
	if d.Dispatch != nil {
		if err := s.cases.SaveDispatch(ctx, id, d.Dispatch); err != nil {
			return nil, err
		}
	}
	return loadCase(ctx, s.cases, p, id, true)
}

func (s *caseService) Delete(ctx context.Context, p authz.Principal, id int64) error {
	if id <= 0 {
		return ErrIDRequired
	}
	if p.Scope != authz.ScopeAny {
		return ErrForbidden
	}
	refs, err := s.cases.Delete(ctx, id)
	if err != nil {
		return notFound(err, "case", id)
	}
	// Rows are gone; orphaned objects are only logged by the store.
	ctx = context.WithoutCancel(ctx)
	for _, ref := range refs {
		s.objects.Delete(ctx, ref)
	}
	return nil
}
