package repository

import (
	"context"

	"claimdesk/internal/model"
)

// CompanyRepository persists the insurer registry.
type CompanyRepository interface {
	// Create inserts c. A taken name yields ErrDuplicate.
	Create(ctx context.Context, c *model.Company) error
	List(ctx context.Context, activeOnly bool) ([]model.Company, error)
	// ToggleActive flips the active flag and returns the updated row.
	ToggleActive(ctx context.Context, id int64) (*model.Company, error)
}
