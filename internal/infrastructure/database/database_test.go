package database

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionString(t *testing.T) {
	cfg := &DBConfig{Host: "db", Port: 5433, Username: "catalog", Password: "p@ss", DBName: "catalog"}
	assert.Equal(t, "postgresql://catalog:p%40ss@db:5433/catalog?sslmode=disable", cfg.ConnectionString())

	cfg.SSLMode = "require"
	assert.Contains(t, cfg.ConnectionString(), "sslmode=require")
}

func TestRetryDelayIsExponential(t *testing.T) {
	base := time.Second
	assert.Equal(t, 1*time.Second, retryDelay(base, 1))
	assert.Equal(t, 2*time.Second, retryDelay(base, 2))
	assert.Equal(t, 4*time.Second, retryDelay(base, 3))
	assert.Equal(t, 8*time.Second, retryDelay(base, 4))
	assert.Equal(t, 1*time.Second, retryDelay(base, 0))
}

func TestEnsureSchemaExecutesEveryStatement(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	for _, stmt := range schemaStatements {
		mock.ExpectExec(regexp.QuoteMeta(stmt)).WillReturnResult(pgxmock.NewResult("CREATE", 0))
	}

	require.NoError(t, EnsureSchema(context.Background(), mock))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchemaStopsOnError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS authors").WillReturnError(errors.New("permission denied"))

	err = EnsureSchema(context.Background(), mock)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgErrorClassification(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: CodeUniqueViolation, ConstraintName: "authors_name_key"})
	fk := &pgconn.PgError{Code: CodeForeignKeyViolation, ConstraintName: "books_author_id_fkey"}

	assert.True(t, IsUniqueViolation(unique, ""))
	assert.True(t, IsUniqueViolation(unique, "authors_name_key"))
	assert.False(t, IsUniqueViolation(unique, "books_name_key"))
	assert.False(t, IsUniqueViolation(fk, ""))
	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsForeignKeyViolation(errors.New("plain")))
}

func TestPoolStatsDerivedValues(t *testing.T) {
	s := &PoolStats{AcquireCount: 4, AcquireDuration: 400 * time.Millisecond, AcquiredConns: 9, MaxConns: 10}
	assert.Equal(t, 100*time.Millisecond, s.AverageAcquire())
	assert.InDelta(t, 90.0, s.Utilization(), 0.001)

	empty := &PoolStats{}
	assert.Equal(t, time.Duration(0), empty.AverageAcquire())
	assert.Equal(t, 0.0, empty.Utilization())
}

func TestUninitializedPool(t *testing.T) {
	db := NewPostgresDB(&DBConfig{})
	assert.Error(t, db.Ping(context.Background()))
	assert.Error(t, db.HealthCheck(context.Background()))
	_, err := db.Stats()
	assert.Error(t, err)
	assert.NoError(t, db.Close())
}
