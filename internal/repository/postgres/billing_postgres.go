package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"claimdesk/internal/model"
	"claimdesk/internal/repository"
)

// BillingPostgres is a PostgreSQL implementation of repository.BillingRepository.
type BillingPostgres struct {
	db *sql.DB
}

// NewBillingPostgres creates a new BillingPostgres repository.
func NewBillingPostgres(db *sql.DB) *BillingPostgres {
	return &BillingPostgres{db: db}
}

var _ repository.BillingRepository = (*BillingPostgres)(nil)

// ListLines joins field-officer cases with their bill details. Cases without a
// bill still appear, with no approved amount.
func (r *BillingPostgres) ListLines(ctx context.Context, f repository.BillingFilter) ([]model.BillingLine, error) {
	where := []string{"c.field_officer_id IS NOT NULL"}
	var args []any
	if f.FieldOfficerID != nil {
		args = append(args, *f.FieldOfficerID)
		where = append(where, fmt.Sprintf("c.field_officer_id = $%d", len(args)))
	}
	if f.ExcludeClosed {
		where = append(where, "c.status <> 'closed'")
	}
	if f.CreatedFrom != nil {
		args = append(args, *f.CreatedFrom)
		where = append(where, fmt.Sprintf("c.created_at >= $%d", len(args)))
	}
	if f.CreatedTo != nil {
		args = append(args, *f.CreatedTo)
		where = append(where, fmt.Sprintf("c.created_at < $%d", len(args)))
	}

	q := `
		SELECT c.id, c.case_ref, c.field_officer_id, c.insurance_company, c.status,
		       COALESCE(b.bill_number, ''), b.approved_expense_fo, c.created_at
		FROM cases c
		LEFT JOIN bill_details b ON b.case_id = c.id
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY c.field_officer_id ASC, c.created_at DESC, c.id DESC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.BillingLine, 0)
	for rows.Next() {
		var l model.BillingLine
		if err := rows.Scan(
			&l.CaseID,
			&l.CaseRef,
			&l.FieldOfficerID,
			&l.InsuranceCompany,
			&l.Status,
			&l.BillNumber,
			&l.ApprovedExpenseFO,
			&l.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
