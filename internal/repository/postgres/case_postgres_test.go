package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claimdesk/internal/model"
	"claimdesk/internal/repository"
)

var caseCols = []string{"id", "case_ref", "officer_id", "field_officer_id", "insurance_company", "status", "diagnosis", "remark", "created_at", "updated_at"}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestCasePostgres_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCasePostgres(db)

	now := time.Now().UTC()
	c := &model.Case{CaseRef: "CLM-1", OfficerID: 7, InsuranceCompany: "Acme", Status: model.CaseOpen}

	mock.ExpectQuery("INSERT INTO cases").
		WithArgs("CLM-1", int64(7), nil, "Acme", "open", "", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(11), now, now))

	require.NoError(t, repo.Create(context.Background(), c))
	assert.Equal(t, int64(11), c.ID)
	assert.Equal(t, now, c.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCasePostgres_FindByID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCasePostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM cases WHERE id = ?").
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows(caseCols).
				AddRow(int64(3), "CLM-3", int64(7), int64(9), "Acme", "closed", "fever", "", time.Now(), time.Now()))

		c, err := repo.FindByID(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, model.CaseClosed, c.Status)
		require.NotNil(t, c.FieldOfficerID)
		assert.Equal(t, int64(9), *c.FieldOfficerID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM cases WHERE id = ?").
			WithArgs(int64(404)).
			WillReturnError(sql.ErrNoRows)

		c, err := repo.FindByID(ctx, 404)
		assert.True(t, IsNoRows(err))
		assert.Nil(t, c)
	})
}

func TestCasePostgres_FindWithDetails(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCasePostgres(db)

	admitted := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT (.+) FROM cases WHERE id = ?").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(caseCols).
			AddRow(int64(5), "CLM-5", int64(7), nil, "Acme", "open", "", "", time.Now(), time.Now()))
	mock.ExpectQuery("SELECT (.+) FROM patient_details WHERE case_id = ?").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(patientTable.columns).
			AddRow("Ravi", int64(41), "M", "12 Road", "1234", "98", "Pune", "Ravi", admitted, nil))
	for _, table := range []string{"hospital_details", "policy_details", "bill_details", "investigation_notes", "dispatch_details"} {
		mock.ExpectQuery("SELECT (.+) FROM " + table + " WHERE case_id = ?").
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"x"}))
	}

	c, err := repo.FindWithDetails(context.Background(), 5)
	require.NoError(t, err)
	assert.Nil(t, c.FieldOfficerID)
	require.NotNil(t, c.Patient)
	assert.Equal(t, "Ravi", c.Patient.Name)
	require.NotNil(t, c.Patient.Age)
	assert.Equal(t, int64(41), *c.Patient.Age)
	assert.Equal(t, admitted, *c.Patient.AdmissionDate)
	assert.Nil(t, c.Patient.DischargeDate)
	assert.Nil(t, c.Hospital)
	assert.Nil(t, c.Policy)
	assert.Nil(t, c.Bill)
	assert.Nil(t, c.Investigation)
	assert.Nil(t, c.Dispatch)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCasePostgres_FindWithDetailsError(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCasePostgres(db)

	mock.ExpectQuery("SELECT (.+) FROM cases").
		WillReturnRows(sqlmock.NewRows(caseCols).
			AddRow(int64(5), "CLM-5", int64(7), nil, "Acme", "open", "", "", time.Now(), time.Now()))
	mock.ExpectQuery("SELECT (.+) FROM patient_details").
		WillReturnError(errors.New("conn reset"))

	_, err := repo.FindWithDetails(context.Background(), 5)
	assert.ErrorContains(t, err, "patient_details")
}

func TestCasePostgres_List(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCasePostgres(db)
	officer := int64(7)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM cases WHERE \(officer_id = \$1 OR field_officer_id = \$1\) AND status = \$2`).
		WithArgs(int64(7), "open").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT (.+) FROM cases WHERE (.+) ORDER BY created_at DESC, id DESC LIMIT \$3 OFFSET \$4`).
		WithArgs(int64(7), "open", 20, 0).
		WillReturnRows(sqlmock.NewRows(caseCols).
			AddRow(int64(1), "CLM-1", int64(7), nil, "Acme", "open", "", "", time.Now(), time.Now()))

	res, err := repo.List(context.Background(),
		repository.CaseFilter{AssignedTo: &officer, Status: model.CaseOpen},
		repository.PageQuery{Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Len(t, res.Items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCasePostgres_UpdateStatus(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCasePostgres(db)

	mock.ExpectExec("UPDATE cases SET status").
		WithArgs("closed", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE cases SET status").
		WithArgs("closed", int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.UpdateStatus(context.Background(), 1, model.CaseClosed))
	assert.ErrorIs(t, repo.UpdateStatus(context.Background(), 2, model.CaseClosed), sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCasePostgres_SavePolicy(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCasePostgres(db)

	sum := 500000.0
	p := &model.PolicyDetail{PolicyNumber: "P-1", SumInsured: &sum, TPAName: "MediAssist"}

	mock.ExpectExec(`INSERT INTO policy_details \(case_id, policy_number, (.+)\) VALUES \(\$1, (.+)\) ON CONFLICT \(case_id\) DO UPDATE SET`).
		WithArgs(int64(4), "P-1", "", 500000.0, "", nil, "", "MediAssist", nil, "").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SavePolicy(context.Background(), 4, p))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDetailTable_UpsertSQL(t *testing.T) {
	q := billTable.upsertSQL()
	assert.Contains(t, q, "INSERT INTO bill_details (case_id, gst_bill, bill_number,")
	assert.Contains(t, q, "VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)")
	assert.Contains(t, q, "other_expenses = EXCLUDED.other_expenses, updated_at = NOW()")
	assert.Equal(t, len(billTable.columns), len(billTable.fields(&model.BillDetail{})))
	assert.Equal(t, len(patientTable.columns), len(patientTable.fields(&model.PatientDetail{})))
	assert.Equal(t, len(hospitalTable.columns), len(hospitalTable.fields(&model.HospitalDetail{})))
	assert.Equal(t, len(policyTable.columns), len(policyTable.fields(&model.PolicyDetail{})))
	assert.Equal(t, len(investigationTable.columns), len(investigationTable.fields(&model.InvestigationNote{})))
	assert.Equal(t, len(dispatchTable.columns), len(dispatchTable.fields(&model.DispatchDetail{})))
}

func TestCasePostgres_SaveDispatch(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCasePostgres(db)

	sent := time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)
	d := &model.DispatchDetail{HardCopySubmitDate: &sent, CourierName: "BlueDart", PODNumber: "POD-9"}

	mock.ExpectExec(`INSERT INTO dispatch_details \(case_id, hard_copy_submit_date, (.+)\) ON CONFLICT \(case_id\) DO UPDATE SET`).
		WithArgs(int64(4), sent, "", "BlueDart", "POD-9").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveDispatch(context.Background(), 4, d))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCasePostgres_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("returns stored refs", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewCasePostgres(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`DELETE FROM case_documents WHERE case_id = \$1 RETURNING file_path`).
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"file_path"}).AddRow("cases/3/a.pdf").AddRow("cases/3/b.jpg"))
		mock.ExpectQuery(`DELETE FROM generated_reports WHERE case_id = \$1 RETURNING file_path`).
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"file_path"}).AddRow("cases/3/reports/r.docx"))
		mock.ExpectExec(`DELETE FROM cases WHERE id = \$1`).
			WithArgs(int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		refs, err := repo.Delete(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"cases/3/a.pdf", "cases/3/b.jpg", "cases/3/reports/r.docx"}, refs)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing case rolls back", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewCasePostgres(db)

		mock.ExpectBegin()
		mock.ExpectQuery("DELETE FROM case_documents").
			WithArgs(int64(404)).
			WillReturnRows(sqlmock.NewRows([]string{"file_path"}))
		mock.ExpectQuery("DELETE FROM generated_reports").
			WithArgs(int64(404)).
			WillReturnRows(sqlmock.NewRows([]string{"file_path"}))
		mock.ExpectExec("DELETE FROM cases").
			WithArgs(int64(404)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		refs, err := repo.Delete(ctx, 404)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, refs)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query failure rolls back", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewCasePostgres(db)

		mock.ExpectBegin()
		mock.ExpectQuery("DELETE FROM case_documents").WillReturnError(errors.New("lock timeout"))
		mock.ExpectRollback()

		_, err := repo.Delete(ctx, 5)
		assert.ErrorContains(t, err, "lock timeout")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
