package repository

import (
	"context"

	"claimdesk/internal/model"
)

// TemplateRepository defines data access for report templates.
type TemplateRepository interface {
	Create(ctx context.Context, t *model.Template) error
	FindByID(ctx context.Context, id int64) (*model.Template, error)
	// ListByCompany returns every template when company is empty.
	ListByCompany(ctx context.Context, company string) ([]model.Template, error)
	Delete(ctx context.Context, id int64) error
}
