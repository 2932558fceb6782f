package repository

import (
	"context"
	"time"

	"claimdesk/internal/model"
)

// BillingFilter narrows billing lines. Only cases with a field officer are considered.
type BillingFilter struct {
	FieldOfficerID *int64
	ExcludeClosed  bool
	// CreatedFrom and CreatedTo bound the case creation time as [from, to).
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// BillingRepository reads field-officer billing lines.
type BillingRepository interface {
	// ListLines returns lines ordered by field officer, newest case first.
	ListLines(ctx context.Context, f BillingFilter) ([]model.BillingLine, error)
}
