package migration

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureMigrated(t *testing.T) {
	sentinel := regexp.QuoteMeta("SELECT to_regclass($1) IS NOT NULL")

	t.Run("schema exists", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(sentinel).
			WithArgs(sentinelTable).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		var buf bytes.Buffer
		require.NoError(t, EnsureMigrated(context.Background(), db, zerolog.New(&buf), "db"))
		assert.Contains(t, buf.String(), `"event":"db_migration_skip"`)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("fresh database", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(sentinel).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		for _, s := range steps {
			mock.ExpectExec(regexp.QuoteMeta(s.SQL)).WillReturnResult(sqlmock.NewResult(0, 0))
		}

		var buf bytes.Buffer
		require.NoError(t, EnsureMigrated(context.Background(), db, zerolog.New(&buf), "db"))
		assert.Contains(t, buf.String(), `"event":"db_migration_success"`)
		assert.Contains(t, buf.String(), `"component":"database"`)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("step fails", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(sentinel).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS cases").WillReturnError(errors.New("permission denied"))

		var buf bytes.Buffer
		err = EnsureMigrated(context.Background(), db, zerolog.New(&buf), "db")
		assert.ErrorContains(t, err, "create_table_cases")
		assert.Contains(t, buf.String(), `"level":"error"`)
	})

	t.Run("sentinel check fails", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(sentinel).WillReturnError(errors.New("connection refused"))

		err = EnsureMigrated(context.Background(), db, zerolog.Nop(), "db")
		assert.ErrorContains(t, err, "sentinel")
	})
}

func TestStepsCreateSentinelLast(t *testing.T) {
	last := steps[len(steps)-2]
	assert.Equal(t, "create_table_case_documents", last.Name)
}
