package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claimdesk/internal/model"
)

var reportCols = []string{"id", "case_id", "template_id", "file_path", "content_type", "size", "generated_by", "conclusion", "recommendation", "created_at"}

func TestReportPostgres_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := NewReportPostgres(db)

	rep := &model.GeneratedReport{
		CaseID: 1, TemplateID: 2, FileRef: "cases/CLM-1/reports/1_r.docx",
		ContentType: "application/msword", Size: 99, GeneratedBy: 7,
		Conclusion: "genuine", Recommendation: "pay",
	}
	mock.ExpectQuery("INSERT INTO generated_reports").
		WithArgs(int64(1), int64(2), rep.FileRef, rep.ContentType, int64(99), int64(7), "genuine", "pay").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(30), time.Now()))

	require.NoError(t, repo.Create(context.Background(), rep))
	assert.Equal(t, int64(30), rep.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportPostgres_ListByCase(t *testing.T) {
	db, mock := newMock(t)
	repo := NewReportPostgres(db)

	mock.ExpectQuery("SELECT (.+) FROM generated_reports WHERE case_id = ?").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(reportCols).
			AddRow(int64(30), int64(1), int64(2), "k", "application/msword", int64(99), int64(7), "c", "r", time.Now()))

	got, err := repo.ListByCase(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(99), got[0].Size)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportPostgres_FindByIDNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewReportPostgres(db)

	mock.ExpectQuery("SELECT (.+) FROM generated_reports WHERE id = ?").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(reportCols))

	_, err := repo.FindByID(context.Background(), 9)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestReportPostgres_DeleteMissingRow(t *testing.T) {
	db, mock := newMock(t)
	repo := NewReportPostgres(db)

	mock.ExpectExec("DELETE FROM generated_reports WHERE id = ?").
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Delete(context.Background(), 9))
	assert.NoError(t, mock.ExpectationsWereMet())
}
