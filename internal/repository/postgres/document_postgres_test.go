package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claimdesk/internal/model"
)

var documentCols = []string{"id", "case_id", "document_type", "doc_source", "file_name", "file_path", "content_type", "size", "uploaded_by", "created_at"}

func TestCaseDocumentPostgres_CreateBatch(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCaseDocumentPostgres(db)

	docs := []*model.CaseDocument{
		{CaseID: 1, DocumentType: "bill", Source: "hospital", FileName: "a.pdf", FileRef: "cases/CLM-1/documents/1_a.pdf", ContentType: "application/pdf", Size: 10, UploadedBy: 7},
		{CaseID: 1, DocumentType: "bill", Source: "hospital", FileName: "b.png", FileRef: "cases/CLM-1/documents/1_b.png", ContentType: "image/png", Size: 20, UploadedBy: 7},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO case_documents").
		WithArgs(int64(1), "bill", "hospital", "a.pdf", docs[0].FileRef, "application/pdf", int64(10), int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(100), time.Now()))
	mock.ExpectQuery("INSERT INTO case_documents").
		WithArgs(int64(1), "bill", "hospital", "b.png", docs[1].FileRef, "image/png", int64(20), int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(101), time.Now()))
	mock.ExpectCommit()

	require.NoError(t, repo.CreateBatch(context.Background(), docs))
	assert.Equal(t, int64(100), docs[0].ID)
	assert.Equal(t, int64(101), docs[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCaseDocumentPostgres_CreateBatchRollsBack(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCaseDocumentPostgres(db)

	docs := []*model.CaseDocument{{CaseID: 1, FileName: "a.pdf"}, {CaseID: 1, FileName: "b.pdf"}}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO case_documents").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(100), time.Now()))
	mock.ExpectQuery("INSERT INTO case_documents").
		WillReturnError(errors.New("fk violation"))
	mock.ExpectRollback()

	err := repo.CreateBatch(context.Background(), docs)
	assert.ErrorContains(t, err, "b.pdf")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCaseDocumentPostgres_CreateBatchEmpty(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCaseDocumentPostgres(db)

	assert.NoError(t, repo.CreateBatch(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCaseDocumentPostgres_ListAndDelete(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCaseDocumentPostgres(db)

	mock.ExpectQuery("SELECT (.+) FROM case_documents WHERE case_id = ?").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(documentCols).
			AddRow(int64(100), int64(1), "bill", "hospital", "a.pdf", "k", "application/pdf", int64(10), int64(7), time.Now()))
	mock.ExpectQuery("SELECT (.+) FROM case_documents WHERE id = ?").
		WithArgs(int64(100)).
		WillReturnRows(sqlmock.NewRows(documentCols).
			AddRow(int64(100), int64(1), "bill", "hospital", "a.pdf", "k", "application/pdf", int64(10), int64(7), time.Now()))
	mock.ExpectExec("DELETE FROM case_documents WHERE id = ?").
		WithArgs(int64(100)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	list, err := repo.ListByCase(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	d, err := repo.FindByID(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, "hospital", d.Source)

	assert.NoError(t, repo.Delete(context.Background(), 100))
	assert.NoError(t, mock.ExpectationsWereMet())
}
