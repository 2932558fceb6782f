package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"claimdesk/internal/model"
	"claimdesk/internal/repository"
)

const uniqueViolation = "23505"

// CompanyPostgres is a PostgreSQL implementation of repository.CompanyRepository.
type CompanyPostgres struct {
	db *sql.DB
}

// NewCompanyPostgres creates a new CompanyPostgres repository.
func NewCompanyPostgres(db *sql.DB) *CompanyPostgres {
	return &CompanyPostgres{db: db}
}

var _ repository.CompanyRepository = (*CompanyPostgres)(nil)

const companyColumns = `id, name, active, created_at, updated_at`

func scanCompany(s interface{ Scan(...any) error }, c *model.Company) error {
	return s.Scan(&c.ID, &c.Name, &c.Active, &c.CreatedAt, &c.UpdatedAt)
}

// Create inserts a company. Names are unique regardless of case.
func (r *CompanyPostgres) Create(ctx context.Context, c *model.Company) error {
	const q = `
		INSERT INTO companies (name, active)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, q, c.Name, c.Active).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: company %q", repository.ErrDuplicate, c.Name)
	}
	return err
}

// List returns companies ordered by name.
func (r *CompanyPostgres) List(ctx context.Context, activeOnly bool) ([]model.Company, error) {
	q := `SELECT ` + companyColumns + ` FROM companies`
	if activeOnly {
		q += ` WHERE active`
	}
	q += ` ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Company, 0)
	for rows.Next() {
		var c model.Company
		if err := scanCompany(rows, &c); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// ToggleActive flips the flag in a single statement. It returns sql.ErrNoRows for an unknown id.
func (r *CompanyPostgres) ToggleActive(ctx context.Context, id int64) (*model.Company, error) {
	q := `UPDATE companies SET active = NOT active, updated_at = NOW() WHERE id = $1 RETURNING ` + companyColumns
	var c model.Company
	if err := scanCompany(r.db.QueryRowContext(ctx, q, id), &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
