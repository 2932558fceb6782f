package repository

import (
	"context"

	"claimdesk/internal/model"
)

// CommissionRepository persists the one commission record a case may have.
type CommissionRepository interface {
	// Upsert creates or replaces the commission of c.CaseID and fills in ID and timestamps.
	Upsert(ctx context.Context, c *model.Commission) error
	FindByCase(ctx context.Context, caseID int64) (*model.Commission, error)
}
