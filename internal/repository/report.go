package repository

import (
	"context"

	"claimdesk/internal/model"
)

// ReportRepository defines data access for generated report records.
// Records are immutable once created.
type ReportRepository interface {
	Create(ctx context.Context, r *model.GeneratedReport) error
	FindByID(ctx context.Context, id int64) (*model.GeneratedReport, error)
	ListByCase(ctx context.Context, caseID int64) ([]model.GeneratedReport, error)
	Delete(ctx context.Context, id int64) error
}
