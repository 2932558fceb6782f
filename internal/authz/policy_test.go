package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claimdesk/internal/model"
)

func TestDefaultPolicy(t *testing.T) {
	tests := []struct {
		role   Role
		action Action
		want   Scope
	}{
		{RoleSuperAdmin, TemplateManage, ScopeAny},
		{RoleAdmin, ReportDelete, ScopeAny},
		{RoleOfficer, ReportGenerate, ScopeOwn},
		{RoleOfficer, TemplateRead, ScopeAny},
		{RoleOfficer, TemplateManage, ScopeDeny},
		{RoleFieldOfficer, ReportGenerate, ScopeDeny},
		{RoleFieldOfficer, DocumentUpload, ScopeOwn},
		{RoleFieldOfficer, DocumentDelete, ScopeDeny},
		{RoleAdmin, CaseDelete, ScopeAny},
		{RoleOfficer, CaseDelete, ScopeDeny},
		{RoleAdmin, CommissionManage, ScopeAny},
		{RoleOfficer, CommissionRead, ScopeDeny},
		{RoleOfficer, CompanyRead, ScopeAny},
		{RoleFieldOfficer, CompanyManage, ScopeDeny},
		{RoleFieldOfficer, BillingOwn, ScopeOwn},
		{RoleFieldOfficer, BillingReport, ScopeDeny},
		{RoleSuperAdmin, BillingReport, ScopeAny},
		{Role("guest"), CaseRead, ScopeDeny},
	}
	for _, tt := range tests {
		t.Run(string(tt.role)+" "+string(tt.action), func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultPolicy.Scope(tt.role, tt.action))
		})
	}
}

func TestPolicy_Grant(t *testing.T) {
	p := Principal{UserID: 7, Role: RoleOfficer}

	got, err := DefaultPolicy.Grant(p, CaseRead)
	require.NoError(t, err)
	assert.Equal(t, ScopeOwn, got.Scope)
	assert.Equal(t, CaseRead, got.Action)

	_, err = DefaultPolicy.Grant(p, TemplateManage)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestPrincipal_CanAccessCase(t *testing.T) {
	fo := int64(9)
	c := &model.Case{OfficerID: 7, FieldOfficerID: &fo}

	assert.True(t, Principal{UserID: 1, Scope: ScopeAny}.CanAccessCase(c))
	assert.True(t, Principal{UserID: 7, Scope: ScopeOwn}.CanAccessCase(c))
	assert.True(t, Principal{UserID: 9, Scope: ScopeOwn}.CanAccessCase(c))
	assert.False(t, Principal{UserID: 3, Scope: ScopeOwn}.CanAccessCase(c))
	assert.False(t, Principal{UserID: 7, Scope: ScopeDeny}.CanAccessCase(c))
	assert.False(t, Principal{UserID: 7, Scope: ScopeOwn}.CanAccessCase(nil))
}

func TestPrincipal_IsAdmin(t *testing.T) {
	assert.True(t, Principal{Role: RoleSuperAdmin}.IsAdmin())
	assert.True(t, Principal{Role: RoleAdmin}.IsAdmin())
	assert.False(t, Principal{Role: RoleOfficer}.IsAdmin())
}

func TestScopeString(t *testing.T) {
	assert.Equal(t, "any", ScopeAny.String())
	assert.Equal(t, "own", ScopeOwn.String())
	assert.Equal(t, "deny", ScopeDeny.String())
}
