// Package authz decides who may do what to which case.
//
// Every request carries a Principal. The HTTP layer consults Policy once per
// route and stores the granted Scope on the Principal; services then check
// case ownership through Principal.CanAccessCase.
package authz

import (
	"errors"

	"claimdesk/internal/model"
)

// ErrForbidden is returned when the policy denies an action.
var ErrForbidden = errors.New("forbidden")

// Role is a user's role as carried in the bearer token.
type Role string

const (
	RoleSuperAdmin   Role = "super_admin"
	RoleAdmin        Role = "admin"
	RoleOfficer      Role = "officer"
	RoleFieldOfficer Role = "field_officer"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleOfficer, RoleFieldOfficer:
		return true
	}
	return false
}

// Action names an operation guarded by the policy.
type Action string

const (
	CaseCreate     Action = "case:create"
	CaseRead       Action = "case:read"
	CaseUpdate     Action = "case:update"
	CaseDelete     Action = "case:delete"
	ReportGenerate Action = "report:generate"
	ReportRead     Action = "report:read"
	ReportDelete   Action = "report:delete"
	TemplateRead   Action = "template:read"
	TemplateManage Action = "template:manage"
	DocumentUpload Action = "document:upload"
	DocumentRead   Action = "document:read"
	DocumentDelete Action = "document:delete"

	CommissionRead   Action = "commission:read"
	CommissionManage Action = "commission:manage"
	CompanyRead      Action = "company:read"
	CompanyManage    Action = "company:manage"
	// BillingOwn is a field officer's view of their own expenses.
	BillingOwn    Action = "billing:own"
	BillingReport Action = "billing:report"
)

// Scope is how far a granted action reaches.
type Scope int

const (
	// ScopeDeny is the zero value so unknown (role, action) pairs are denied.
	ScopeDeny Scope = iota
	// ScopeOwn limits the action to cases the user is assigned to.
	ScopeOwn
	// ScopeAny allows the action on every case.
	ScopeAny
)

func (s Scope) String() string {
	switch s {
	case ScopeAny:
		return "any"
	case ScopeOwn:
		return "own"
	}
	return "deny"
}

// Policy maps (role, action) to a scope.
type Policy map[Role]map[Action]Scope

// DefaultPolicy is the production capability table.
var DefaultPolicy = Policy{
	RoleSuperAdmin: allActions(ScopeAny),
	RoleAdmin:      allActions(ScopeAny),
	RoleOfficer: {
		CaseCreate:     ScopeOwn,
		CaseRead:       ScopeOwn,
		CaseUpdate:     ScopeOwn,
		ReportGenerate: ScopeOwn,
		ReportRead:     ScopeOwn,
		ReportDelete:   ScopeOwn,
		TemplateRead:   ScopeAny,
		DocumentUpload: ScopeOwn,
		DocumentRead:   ScopeOwn,
		DocumentDelete: ScopeOwn,
		CompanyRead:    ScopeAny,
	},
	RoleFieldOfficer: {
		CaseRead:       ScopeOwn,
		CaseUpdate:     ScopeOwn,
		ReportRead:     ScopeOwn,
		TemplateRead:   ScopeAny,
		DocumentUpload: ScopeOwn,
		DocumentRead:   ScopeOwn,
		CompanyRead:    ScopeAny,
		BillingOwn:     ScopeOwn,
	},
}

func allActions(s Scope) map[Action]Scope {
	m := make(map[Action]Scope)
	for _, a := range []Action{
		CaseCreate, CaseRead, CaseUpdate, CaseDelete,
		ReportGenerate, ReportRead, ReportDelete,
		TemplateRead, TemplateManage,
		DocumentUpload, DocumentRead, DocumentDelete,
		CommissionRead, CommissionManage,
		CompanyRead, CompanyManage,
		BillingReport,
	} {
		m[a] = s
	}
	return m
}

// Scope returns what role is granted for action.
func (p Policy) Scope(role Role, action Action) Scope {
	return p[role][action]
}

// Grant resolves action for the principal and returns a copy carrying the scope.
// It fails with ErrForbidden when the policy denies the action outright.
func (p Policy) Grant(pr Principal, action Action) (Principal, error) {
	s := p.Scope(pr.Role, action)
	if s == ScopeDeny {
		return pr, ErrForbidden
	}
	pr.Scope = s
	pr.Action = action
	return pr, nil
}

// Principal is the authenticated caller.
type Principal struct {
	UserID int64
	Name   string
	Role   Role

	// Scope and Action are set by Policy.Grant for the current request.
	Scope  Scope
	Action Action
}

// IsAdmin reports whether the principal has an administrative role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin || p.Role == RoleSuperAdmin
}

// CanAccessCase reports whether the granted scope covers c.
func (p Principal) CanAccessCase(c *model.Case) bool {
	switch p.Scope {
	case ScopeAny:
		return true
	case ScopeOwn:
		if c == nil {
			return false
		}
		if c.OfficerID == p.UserID {
			return true
		}
		return c.FieldOfficerID != nil && *c.FieldOfficerID == p.UserID
	}
	return false
}
