package container

import (
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-catalog/internal/config"
	"bookstore-catalog/internal/infrastructure/database"
)

func TestNewWiresEveryLayer(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	cfg := &config.Config{}
	c := New(cfg, mock)

	assert.Same(t, cfg, c.Config)
	assert.Nil(t, c.DB)

	assert.NotNil(t, c.AuthorRepo)
	assert.NotNil(t, c.BookRepo)
	assert.NotNil(t, c.MaintenanceRepo)

	assert.NotNil(t, c.AuthorService)
	assert.NotNil(t, c.BookService)
	assert.NotNil(t, c.MaintenanceService)

	assert.NotNil(t, c.AuthorHandler)
	assert.NotNil(t, c.BookHandler)
	assert.NotNil(t, c.MaintenanceHandler)
}

func TestCleanupWithoutDatabase(t *testing.T) {
	c := &Container{}
	assert.NotPanics(t, c.Cleanup)
}

func TestPoolStatsSkipsClosedPool(t *testing.T) {
	stats := poolStats(database.NewPostgresDB(&database.DBConfig{}))

	_, ok := stats()
	assert.False(t, ok)
}
