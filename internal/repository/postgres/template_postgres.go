package postgres

import (
	"context"
	"database/sql"

	"claimdesk/internal/model"
	"claimdesk/internal/repository"
)

// TemplatePostgres is a PostgreSQL implementation of repository.TemplateRepository.
type TemplatePostgres struct {
	db *sql.DB
}

// NewTemplatePostgres creates a new TemplatePostgres repository.
func NewTemplatePostgres(db *sql.DB) *TemplatePostgres {
	return &TemplatePostgres{db: db}
}

var _ repository.TemplateRepository = (*TemplatePostgres)(nil)

const templateColumns = `id, insurance_company, template_name, template_content, file_path, created_by, created_at`

func scanTemplate(s interface{ Scan(...any) error }, t *model.Template) error {
	return s.Scan(
		&t.ID,
		&t.InsuranceCompany,
		&t.Name,
		&t.Content,
		&t.FileRef,
		&t.CreatedBy,
		&t.CreatedAt,
	)
}

// Create inserts a template row and copies the generated ID and timestamp into t.
func (r *TemplatePostgres) Create(ctx context.Context, t *model.Template) error {
	const q = `
		INSERT INTO report_templates (insurance_company, template_name, template_content, file_path, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, q,
		t.InsuranceCompany,
		t.Name,
		t.Content,
		t.FileRef,
		t.CreatedBy,
	).Scan(&t.ID, &t.CreatedAt)
}

// FindByID fetches a single template by its ID.
func (r *TemplatePostgres) FindByID(ctx context.Context, id int64) (*model.Template, error) {
	q := `SELECT ` + templateColumns + ` FROM report_templates WHERE id = $1`
	var t model.Template
	if err := scanTemplate(r.db.QueryRowContext(ctx, q, id), &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// ListByCompany returns templates ordered by name, optionally for one insurance company.
func (r *TemplatePostgres) ListByCompany(ctx context.Context, company string) ([]model.Template, error) {
	q := `SELECT ` + templateColumns + ` FROM report_templates
		WHERE ($1 = '' OR insurance_company = $1)
		ORDER BY insurance_company, template_name, id`
	rows, err := r.db.QueryContext(ctx, q, company)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Template, 0)
	for rows.Next() {
		var t model.Template
		if err := scanTemplate(rows, &t); err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

// Delete removes a template by ID. It does not return an error if the row does not exist.
func (r *TemplatePostgres) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM report_templates WHERE id = $1`, id)
	return err
}
