package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"claimdesk/internal/authz"
	"claimdesk/internal/model"
	"claimdesk/internal/repository"
)

// BillingQuery narrows the billing report. Month needs Year; Year alone covers
// the whole calendar year.
type BillingQuery struct {
	FieldOfficerID *int64
	Month          int
	Year           int
}

// BillingService rolls up approved field-officer expenses.
type BillingService interface {
	// Mine lists the caller's cases that are not closed yet.
	Mine(ctx context.Context, p authz.Principal) (*model.OfficerBilling, error)
	// Report groups every field officer's cases, ordered by officer id.
	Report(ctx context.Context, p authz.Principal, q BillingQuery) ([]model.OfficerBilling, error)
}

type billingService struct {
	billing repository.BillingRepository
	loc     *time.Location
}

// NewBillingService constructs a new BillingService. Month boundaries are
// taken in loc, or UTC when loc is nil.
func NewBillingService(billing repository.BillingRepository, loc *time.Location) BillingService {
	if loc == nil {
		loc = time.UTC
	}
	return &billingService{billing: billing, loc: loc}
}

func (s *billingService) Mine(ctx context.Context, p authz.Principal) (*model.OfficerBilling, error) {
	if p.Scope == authz.ScopeDeny {
		return nil, ErrForbidden
	}
	uid := p.UserID
	lines, err := s.billing.ListLines(ctx, repository.BillingFilter{FieldOfficerID: &uid, ExcludeClosed: true})
	if err != nil {
		return nil, fmt.Errorf("list billing: %w", err)
	}
	if groups := groupBilling(lines); len(groups) > 0 {
		return &groups[0], nil
	}
	return &model.OfficerBilling{FieldOfficerID: uid, Cases: []model.BillingLine{}}, nil
}

func (s *billingService) Report(ctx context.Context, p authz.Principal, q BillingQuery) ([]model.OfficerBilling, error) {
	if p.Scope != authz.ScopeAny {
		return nil, ErrForbidden
	}
	f := repository.BillingFilter{FieldOfficerID: q.FieldOfficerID}
	switch {
	case q.Month < 0 || q.Month > 12:
		return nil, invalid("month must be between 1 and 12")
	case q.Month != 0 && q.Year == 0:
		return nil, invalid("month requires year")
	case q.Year != 0 && (q.Year < 2000 || q.Year > 9999):
		return nil, invalid("year %d is out of range", q.Year)
	case q.Month != 0:
		from := time.Date(q.Year, time.Month(q.Month), 1, 0, 0, 0, 0, s.loc)
		to := from.AddDate(0, 1, 0)
		f.CreatedFrom, f.CreatedTo = &from, &to
	case q.Year != 0:
		from := time.Date(q.Year, time.January, 1, 0, 0, 0, 0, s.loc)
		to := from.AddDate(1, 0, 0)
		f.CreatedFrom, f.CreatedTo = &from, &to
	}

	lines, err := s.billing.ListLines(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list billing: %w", err)
	}
	return groupBilling(lines), nil
}

// groupBilling folds consecutive lines of the same officer into one entry.
func groupBilling(lines []model.BillingLine) []model.OfficerBilling {
	out := make([]model.OfficerBilling, 0)
	for _, l := range lines {
		if n := len(out); n == 0 || out[n-1].FieldOfficerID != l.FieldOfficerID {
			out = append(out, model.OfficerBilling{FieldOfficerID: l.FieldOfficerID, Cases: []model.BillingLine{}})
		}
		g := &out[len(out)-1]
		g.Cases = append(g.Cases, l)
		if l.ApprovedExpenseFO != nil {
			g.TotalApprovedFO += *l.ApprovedExpenseFO
		}
	}
	for i := range out {
		out[i].TotalApprovedFO = math.Round(out[i].TotalApprovedFO*100) / 100
	}
	return out
}
