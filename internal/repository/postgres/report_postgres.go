package postgres

import (
	"context"
	"database/sql"

	"claimdesk/internal/model"
	"claimdesk/internal/repository"
)

// ReportPostgres is a PostgreSQL implementation of repository.ReportRepository.
type ReportPostgres struct {
	db *sql.DB
}

// NewReportPostgres creates a new ReportPostgres repository.
func NewReportPostgres(db *sql.DB) *ReportPostgres {
	return &ReportPostgres{db: db}
}

var _ repository.ReportRepository = (*ReportPostgres)(nil)

const reportColumns = `id, case_id, template_id, file_path, content_type, size, generated_by, conclusion, recommendation, created_at`

func scanReport(s interface{ Scan(...any) error }, r *model.GeneratedReport) error {
	return s.Scan(
		&r.ID,
		&r.CaseID,
		&r.TemplateID,
		&r.FileRef,
		&r.ContentType,
		&r.Size,
		&r.GeneratedBy,
		&r.Conclusion,
		&r.Recommendation,
		&r.CreatedAt,
	)
}

// Create inserts a report record and copies the generated ID and timestamp into rep.
func (r *ReportPostgres) Create(ctx context.Context, rep *model.GeneratedReport) error {
	const q = `
		INSERT INTO generated_reports (case_id, template_id, file_path, content_type, size, generated_by, conclusion, recommendation)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, q,
		rep.CaseID,
		rep.TemplateID,
		rep.FileRef,
		rep.ContentType,
		rep.Size,
		rep.GeneratedBy,
		rep.Conclusion,
		rep.Recommendation,
	).Scan(&rep.ID, &rep.CreatedAt)
}

// FindByID fetches a single report record by its ID.
func (r *ReportPostgres) FindByID(ctx context.Context, id int64) (*model.GeneratedReport, error) {
	q := `SELECT ` + reportColumns + ` FROM generated_reports WHERE id = $1`
	var rep model.GeneratedReport
	if err := scanReport(r.db.QueryRowContext(ctx, q, id), &rep); err != nil {
		return nil, err
	}
	return &rep, nil
}

// ListByCase returns the case's reports, newest first.
func (r *ReportPostgres) ListByCase(ctx context.Context, caseID int64) ([]model.GeneratedReport, error) {
	q := `SELECT ` + reportColumns + ` FROM generated_reports WHERE case_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, caseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.GeneratedReport, 0)
	for rows.Next() {
		var rep model.GeneratedReport
		if err := scanReport(rows, &rep); err != nil {
			return nil, err
		}
		items = append(items, rep)
	}
	return items, rows.Err()
}

// Delete removes a report record by ID. It does not return an error if the row does not exist.
func (r *ReportPostgres) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM generated_reports WHERE id = $1`, id)
	return err
}
