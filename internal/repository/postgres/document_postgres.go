package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"claimdesk/internal/model"
	"claimdesk/internal/repository"
)

// CaseDocumentPostgres is a PostgreSQL implementation of repository.CaseDocumentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type CaseDocumentPostgres struct {
	db *sql.DB
}

// NewCaseDocumentPostgres creates a new CaseDocumentPostgres repository.
func NewCaseDocumentPostgres(db *sql.DB) *CaseDocumentPostgres {
	return &CaseDocumentPostgres{db: db}
}

var _ repository.CaseDocumentRepository = (*CaseDocumentPostgres)(nil)

const documentColumns = `id, case_id, document_type, doc_source, file_name, file_path, content_type, size, uploaded_by, created_at`

func scanDocument(s interface{ Scan(...any) error }, d *model.CaseDocument) error {
	return s.Scan(
		&d.ID,
		&d.CaseID,
		&d.DocumentType,
		&d.Source,
		&d.FileName,
		&d.FileRef,
		&d.ContentType,
		&d.Size,
		&d.UploadedBy,
		&d.CreatedAt,
	)
}

// CreateBatch inserts all documents inside a single transaction.
func (r *CaseDocumentPostgres) CreateBatch(ctx context.Context, docs []*model.CaseDocument) (err error) {
	if len(docs) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const q = `
		INSERT INTO case_documents (case_id, document_type, doc_source, file_name, file_path, content_type, size, uploaded_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	for _, d := range docs {
		if err = tx.QueryRowContext(ctx, q,
			d.CaseID,
			d.DocumentType,
			d.Source,
			d.FileName,
			d.FileRef,
			d.ContentType,
			d.Size,
			d.UploadedBy,
		).Scan(&d.ID, &d.CreatedAt); err != nil {
			return fmt.Errorf("insert %s: %w", d.FileName, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// FindByID fetches a single document by its ID.
func (r *CaseDocumentPostgres) FindByID(ctx context.Context, id int64) (*model.CaseDocument, error) {
	q := `SELECT ` + documentColumns + ` FROM case_documents WHERE id = $1`
	var d model.CaseDocument
	if err := scanDocument(r.db.QueryRowContext(ctx, q, id), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// ListByCase returns the case's documents, newest first.
func (r *CaseDocumentPostgres) ListByCase(ctx context.Context, caseID int64) ([]model.CaseDocument, error) {
	q := `SELECT ` + documentColumns + ` FROM case_documents WHERE case_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, caseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.CaseDocument, 0)
	for rows.Next() {
		var d model.CaseDocument
		if err := scanDocument(rows, &d); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes a document by ID. It does not return an error if the row does not exist.
func (r *CaseDocumentPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM case_documents WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
