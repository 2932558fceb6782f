package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"claimdesk/internal/model"
	"claimdesk/internal/repository"
)

// CasePostgres is a PostgreSQL implementation of repository.CaseRepository.
type CasePostgres struct {
	db *sql.DB
}

// NewCasePostgres creates a new CasePostgres repository.
func NewCasePostgres(db *sql.DB) *CasePostgres {
	return &CasePostgres{db: db}
}

var _ repository.CaseRepository = (*CasePostgres)(nil)

const caseColumns = `id, case_ref, officer_id, field_officer_id, insurance_company, status, diagnosis, remark, created_at, updated_at`

func scanCase(s interface{ Scan(...any) error }, c *model.Case) error {
	return s.Scan(
		&c.ID,
		&c.CaseRef,
		&c.OfficerID,
		&c.FieldOfficerID,
		&c.InsuranceCompany,
		&c.Status,
		&c.Diagnosis,
		&c.Remark,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
}

// Create inserts a case row and copies the generated values back into c.
func (r *CasePostgres) Create(ctx context.Context, c *model.Case) error {
	const q = `
		INSERT INTO cases (case_ref, officer_id, field_officer_id, insurance_company, status, diagnosis, remark)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(ctx, q,
		c.CaseRef,
		c.OfficerID,
		c.FieldOfficerID,
		c.InsuranceCompany,
		string(c.Status),
		c.Diagnosis,
		c.Remark,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// FindByID fetches a single case without its details.
func (r *CasePostgres) FindByID(ctx context.Context, id int64) (*model.Case, error) {
	q := `SELECT ` + caseColumns + ` FROM cases WHERE id = $1`
	var c model.Case
	if err := scanCase(r.db.QueryRowContext(ctx, q, id), &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// FindWithDetails loads the case and then each detail table. A missing detail row leaves its pointer nil.
func (r *CasePostgres) FindWithDetails(ctx context.Context, id int64) (*model.Case, error) {
	c, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Patient, err = findDetail(ctx, r.db, patientTable, id); err != nil {
		return nil, err
	}
	if c.Hospital, err = findDetail(ctx, r.db, hospitalTable, id); err != nil {
		return nil, err
	}
	if c.Policy, err = findDetail(ctx, r.db, policyTable, id); err != nil {
		return nil, err
	}
	if c.Bill, err = findDetail(ctx, r.db, billTable, id); err != nil {
		return nil, err
	}
	if c.Investigation, err = findDetail(ctx, r.db, investigationTable, id); err != nil {
		return nil, err
	}
	if c.Dispatch, err = findDetail(ctx, r.db, dispatchTable, id); err != nil {
		return nil, err
	}
	return c, nil
}

// List returns cases using LIMIT/OFFSET pagination and a total count.
func (r *CasePostgres) List(ctx context.Context, f repository.CaseFilter, pq repository.PageQuery) (*repository.PageResult[model.Case], error) {
	var (
		where []string
		args  []any
	)
	if f.AssignedTo != nil {
		args = append(args, *f.AssignedTo)
		where = append(where, fmt.Sprintf("(officer_id = $%d OR field_officer_id = $%d)", len(args), len(args)))
	}
	if f.Status != "" {
		args = append(args, string(f.Status))
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	cond := ""
	if len(where) > 0 {
		cond = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cases`+cond, args...).Scan(&total); err != nil {
		return nil, err
	}

	qList := fmt.Sprintf(`SELECT %s FROM cases%s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		caseColumns, cond, len(args)+1, len(args)+2)
	rows, err := r.db.QueryContext(ctx, qList, append(args, pq.Limit, pq.Offset)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Case, 0)
	for rows.Next() {
		var c model.Case
		if err := scanCase(rows, &c); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Case]{Items: items, Total: total}, nil
}

// UpdateStatus changes the status of an existing case. It returns sql.ErrNoRows when the case does not exist.
func (r *CasePostgres) UpdateStatus(ctx context.Context, id int64, status model.CaseStatus) error {
	const q = `UPDATE cases SET status = $1, updated_at = NOW() WHERE id = $2`
	res, err := r.db.ExecContext(ctx, q, string(status), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes the case inside one transaction. Documents and reports are
// deleted explicitly so their file paths can be returned; the detail tables,
// dispatch and commission rows go with the case through ON DELETE CASCADE.
func (r *CasePostgres) Delete(ctx context.Context, id int64) (refs []string, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, q := range []string{
		`DELETE FROM case_documents WHERE case_id = $1 RETURNING file_path`,
		`DELETE FROM generated_reports WHERE case_id = $1 RETURNING file_path`,
	} {
		var paths []string
		if paths, err = collectStrings(ctx, tx, q, id); err != nil {
			return nil, err
		}
		refs = append(refs, paths...)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM cases WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("delete case: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		err = sql.ErrNoRows
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return refs, nil
}

func collectStrings(ctx context.Context, tx *sql.Tx, q string, args ...any) ([]string, error) {
	rows, err := tx.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *CasePostgres) SavePatient(ctx context.Context, caseID int64, d *model.PatientDetail) error {
	return upsertDetail(ctx, r.db, patientTable, caseID, d)
}

func (r *CasePostgres) SaveHospital(ctx context.Context, caseID int64, d *model.HospitalDetail) error {
	return upsertDetail(ctx, r.db, hospitalTable, caseID, d)
}

func (r *CasePostgres) SavePolicy(ctx context.Context, caseID int64, d *model.PolicyDetail) error {
	return upsertDetail(ctx, r.db, policyTable, caseID, d)
}

func (r *CasePostgres) SaveBill(ctx context.Context, caseID int64, d *model.BillDetail) error {
	return upsertDetail(ctx, r.db, billTable, caseID, d)
}

func (r *CasePostgres) SaveInvestigation(ctx context.Context, caseID int64, d *model.InvestigationNote) error {
	return upsertDetail(ctx, r.db, investigationTable, caseID, d)
}

func (r *CasePostgres) SaveDispatch(ctx context.Context, caseID int64, d *model.DispatchDetail) error {
	return upsertDetail(ctx, r.db, dispatchTable, caseID, d)
}

// IsNoRows reports whether err means the row does not exist.
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
