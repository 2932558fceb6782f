package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claimdesk/internal/model"
	"claimdesk/internal/repository"
)

var companyCols = []string{"id", "name", "active", "created_at", "updated_at"}

func TestCompanyPostgres_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCompanyPostgres(db)
	ctx := context.Background()
	now := time.Now().UTC()

	mock.ExpectQuery("INSERT INTO companies").
		WithArgs("Acme Health", true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(4), now, now))
	mock.ExpectQuery("INSERT INTO companies").
		WithArgs("acme health", true).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

	c := &model.Company{Name: "Acme Health", Active: true}
	require.NoError(t, repo.Create(ctx, c))
	assert.Equal(t, int64(4), c.ID)

	err := repo.Create(ctx, &model.Company{Name: "acme health", Active: true})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
	assert.ErrorContains(t, err, "acme health")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyPostgres_List(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCompanyPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT (.+) FROM companies WHERE active ORDER BY name ASC`).
		WillReturnRows(sqlmock.NewRows(companyCols).AddRow(int64(1), "Acme", true, time.Now(), time.Now()))
	mock.ExpectQuery(`SELECT (.+) FROM companies ORDER BY name ASC`).
		WillReturnRows(sqlmock.NewRows(companyCols))

	items, err := repo.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Acme", items[0].Name)

	items, err = repo.List(ctx, false)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyPostgres_ToggleActive(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCompanyPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery(`UPDATE companies SET active = NOT active`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(companyCols).AddRow(int64(1), "Acme", false, time.Now(), time.Now()))
	mock.ExpectQuery(`UPDATE companies SET active = NOT active`).
		WithArgs(int64(2)).
		WillReturnError(sql.ErrNoRows)

	c, err := repo.ToggleActive(ctx, 1)
	require.NoError(t, err)
	assert.False(t, c.Active)

	_, err = repo.ToggleActive(ctx, 2)
	assert.True(t, IsNoRows(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
