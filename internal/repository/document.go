package repository

import (
	"context"

	"claimdesk/internal/model"
)

// CaseDocumentRepository defines data access for case evidence files using SQL queries only.
// No business logic here, only persistence.
type CaseDocumentRepository interface {
	// CreateBatch inserts every document in one transaction and fills in IDs and CreatedAt.
	// Either all rows are stored or none are.
	CreateBatch(ctx context.Context, docs []*model.CaseDocument) error

	FindByID(ctx context.Context, id int64) (*model.CaseDocument, error)
	ListByCase(ctx context.Context, caseID int64) ([]model.CaseDocument, error)

	// Delete removes a document by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id int64) error
}
