package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claimdesk/internal/model"
	"claimdesk/internal/repository"
)

var billingCols = []string{"id", "case_ref", "field_officer_id", "insurance_company", "status", "bill_number", "approved_expense_fo", "created_at"}

func TestBillingPostgres_ListLines(t *testing.T) {
	ctx := context.Background()

	t.Run("own open cases", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewBillingPostgres(db)
		fo := int64(9)

		mock.ExpectQuery(`FROM cases c LEFT JOIN bill_details b ON b.case_id = c.id WHERE c.field_officer_id IS NOT NULL AND c.field_officer_id = \$1 AND c.status <> 'closed' ORDER BY c.field_officer_id ASC`).
			WithArgs(int64(9)).
			WillReturnRows(sqlmock.NewRows(billingCols).
				AddRow(int64(1), "CLM-1", int64(9), "Acme", "open", "B-1", 750.5, time.Now()).
				AddRow(int64(2), "CLM-2", int64(9), "Acme", "in_progress", "", nil, time.Now()))

		lines, err := repo.ListLines(ctx, repository.BillingFilter{FieldOfficerID: &fo, ExcludeClosed: true})
		require.NoError(t, err)
		require.Len(t, lines, 2)
		require.NotNil(t, lines[0].ApprovedExpenseFO)
		assert.Equal(t, 750.5, *lines[0].ApprovedExpenseFO)
		assert.Nil(t, lines[1].ApprovedExpenseFO)
		assert.Equal(t, model.CaseInProgress, lines[1].Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("created window", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewBillingPostgres(db)
		from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 1, 0)

		mock.ExpectQuery(`WHERE c.field_officer_id IS NOT NULL AND c.created_at >= \$1 AND c.created_at < \$2 ORDER BY`).
			WithArgs(from, to).
			WillReturnRows(sqlmock.NewRows(billingCols))

		lines, err := repo.ListLines(ctx, repository.BillingFilter{CreatedFrom: &from, CreatedTo: &to})
		require.NoError(t, err)
		assert.Empty(t, lines)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
