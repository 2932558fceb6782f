package repository

import (
	"context"

	"claimdesk/internal/model"
)

// CaseFilter narrows a case listing. Zero values match everything.
type CaseFilter struct {
	// AssignedTo keeps cases where the user is the officer or the field officer.
	AssignedTo *int64
	Status     model.CaseStatus
}

// CaseRepository persists cases and their one-per-case detail records.
type CaseRepository interface {
	// Create inserts c and fills in its generated ID and timestamps.
	Create(ctx context.Context, c *model.Case) error

	// FindByID returns the case row only; detail pointers are left nil.
	FindByID(ctx context.Context, id int64) (*model.Case, error)

	// FindWithDetails returns the case with every existing detail record attached.
	FindWithDetails(ctx context.Context, id int64) (*model.Case, error)

	List(ctx context.Context, f CaseFilter, pq PageQuery) (*PageResult[model.Case], error)

	UpdateStatus(ctx context.Context, id int64, status model.CaseStatus) error

	// Delete removes the case with every dependent row in one transaction and
	// returns the object references of its documents and reports. It returns
	// sql.ErrNoRows when the case does not exist.
	Delete(ctx context.Context, id int64) ([]string, error)

	// The Save methods upsert keyed on the case ID.
	SavePatient(ctx context.Context, caseID int64, d *model.PatientDetail) error
	SaveHospital(ctx context.Context, caseID int64, d *model.HospitalDetail) error
	SavePolicy(ctx context.Context, caseID int64, d *model.PolicyDetail) error
	SaveBill(ctx context.Context, caseID int64, d *model.BillDetail) error
	SaveInvestigation(ctx context.Context, caseID int64, d *model.InvestigationNote) error
	SaveDispatch(ctx context.Context, caseID int64, d *model.DispatchDetail) error
}
