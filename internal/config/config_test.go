package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("APP_PORT", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_AUTO_SCHEMA", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.True(t, cfg.Database.AutoSchema)
	assert.Equal(t, int32(25), cfg.Database.MaxConns)
	assert.Equal(t, 30*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_MAX_CONNECTIONS", "10")
	t.Setenv("DB_MIN_CONNECTIONS", "2")
	t.Setenv("DB_RETRY_DELAY", "250ms")
	t.Setenv("DB_AUTO_SCHEMA", "false")
	t.Setenv("HTTP_READ_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, int32(10), cfg.Database.MaxConns)
	assert.Equal(t, int32(2), cfg.Database.MinConns)
	assert.Equal(t, 250*time.Millisecond, cfg.Database.RetryDelay)
	assert.False(t, cfg.Database.AutoSchema)
	assert.Equal(t, 3*time.Second, cfg.HTTP.ReadTimeout)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"DB_PORT", "five"},
		{"DB_CONNECT_TIMEOUT", "soon"},
		{"DB_AUTO_SCHEMA", "maybe"},
		{"HTTP_IDLE_TIMEOUT", "10"},
		{"DB_MAX_CONNECTIONS", "4294967321"},
		{"DB_MIN_CONNECTIONS", "-2147483649"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		t.Setenv("APP_ENV", "")
		cfg, err := Load()
		require.NoError(t, err)
		return cfg
	}

	t.Run("production requires password", func(t *testing.T) {
		cfg := valid()
		cfg.App.Environment = "production"
		cfg.Database.Password = ""
		assert.ErrorContains(t, cfg.Validate(), "DB_PASSWORD")

		cfg.Database.Password = "s3cret"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("port must be numeric", func(t *testing.T) {
		cfg := valid()
		cfg.App.Port = "http"
		assert.ErrorContains(t, cfg.Validate(), "APP_PORT")
	})

	t.Run("pool bounds", func(t *testing.T) {
		cfg := valid()
		cfg.Database.MinConns = 30
		cfg.Database.MaxConns = 10
		assert.ErrorContains(t, cfg.Validate(), "DB_MIN_CONNECTIONS")

		cfg.Database.MinConns = 0
		assert.Error(t, cfg.Validate())
	})
}
