package postgres

import (
	"context"
	"database/sql"

	"claimdesk/internal/model"
	"claimdesk/internal/repository"
)

// CommissionPostgres is a PostgreSQL implementation of repository.CommissionRepository.
type CommissionPostgres struct {
	db *sql.DB
}

// NewCommissionPostgres creates a new CommissionPostgres repository.
func NewCommissionPostgres(db *sql.DB) *CommissionPostgres {
	return &CommissionPostgres{db: db}
}

var _ repository.CommissionRepository = (*CommissionPostgres)(nil)

// Upsert writes the commission keyed on case_id.
func (r *CommissionPostgres) Upsert(ctx context.Context, c *model.Commission) error {
	const q = `
		INSERT INTO commissions (case_id, commission_type, amount, notes, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (case_id) DO UPDATE SET
			commission_type = EXCLUDED.commission_type,
			amount = EXCLUDED.amount,
			notes = EXCLUDED.notes,
			status = EXCLUDED.status,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(ctx, q,
		c.CaseID,
		string(c.Type),
		c.Amount,
		c.Notes,
		string(c.Status),
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// FindByCase returns sql.ErrNoRows when the case has no commission.
func (r *CommissionPostgres) FindByCase(ctx context.Context, caseID int64) (*model.Commission, error) {
	const q = `
		SELECT id, case_id, commission_type, amount, notes, status, created_at, updated_at
		FROM commissions WHERE case_id = $1
	`
	var c model.Commission
	if err := r.db.QueryRowContext(ctx, q, caseID).Scan(
		&c.ID,
		&c.CaseID,
		&c.Type,
		&c.Amount,
		&c.Notes,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}
