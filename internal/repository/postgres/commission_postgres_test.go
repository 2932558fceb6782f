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

func TestCommissionPostgres_Upsert(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCommissionPostgres(db)

	now := time.Now().UTC()
	c := &model.Commission{CaseID: 8, Type: model.CommissionFixed, Amount: 1500, Status: model.CommissionPending}

	mock.ExpectQuery(`INSERT INTO commissions (.+) ON CONFLICT \(case_id\) DO UPDATE SET (.+) RETURNING id, created_at, updated_at`).
		WithArgs(int64(8), "fixed", 1500.0, "", "pending").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(2), now, now))

	require.NoError(t, repo.Upsert(context.Background(), c))
	assert.Equal(t, int64(2), c.ID)
	assert.Equal(t, now, c.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommissionPostgres_FindByCase(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCommissionPostgres(db)
	ctx := context.Background()
	cols := []string{"id", "case_id", "commission_type", "amount", "notes", "status", "created_at", "updated_at"}

	mock.ExpectQuery("SELECT (.+) FROM commissions WHERE case_id = ?").
		WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(int64(2), int64(8), "percentage", 12.5, "of claim", "paid", time.Now(), time.Now()))
	mock.ExpectQuery("SELECT (.+) FROM commissions WHERE case_id = ?").
		WithArgs(int64(9)).
		WillReturnError(sql.ErrNoRows)

	c, err := repo.FindByCase(ctx, 8)
	require.NoError(t, err)
	assert.Equal(t, model.CommissionPercentage, c.Type)
	assert.Equal(t, model.CommissionPaid, c.Status)
	assert.Equal(t, 12.5, c.Amount)

	c, err = repo.FindByCase(ctx, 9)
	assert.True(t, IsNoRows(err))
	assert.Nil(t, c)
	assert.NoError(t, mock.ExpectationsWereMet())
}
