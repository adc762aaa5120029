package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const truncateSQL = "TRUNCATE TABLE books, authors RESTART IDENTITY CASCADE"

func TestTruncate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta(truncateSQL)).
		WillReturnResult(pgxmock.NewResult("TRUNCATE", 0))

	require.NoError(t, NewPostgresRepository(mock).Truncate(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTruncateInsideTransaction(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(truncateSQL)).
		WillReturnError(errors.New("permission denied"))
	mock.ExpectRollback()

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = NewPostgresRepository(mock).WithTx(tx).Truncate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to truncate catalog")

	require.NoError(t, tx.Rollback(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}
