package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReadsEnvironment(t *testing.T) {
	t.Setenv("PROJECTID", "ledger-prod")
	t.Setenv("STORAGEBUCKET", "ledger-prod.appspot.com")
	t.Setenv("LOGLEVEL", "debug")
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOWEDORIGINS", "https://app.example.com, http://localhost:5173 ,")
	t.Setenv("MAXUPLOADBYTES", "2048")
	t.Setenv("TIMEZONE", "UTC")

	cfg := New()

	assert.Equal(t, "ledger-prod", cfg.ProjectID)
	assert.Equal(t, "ledger-prod.appspot.com", cfg.StorageBucket)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"https://app.example.com", "http://localhost:5173"}, cfg.AllowedOrigins)
	assert.Equal(t, int64(2048), cfg.MaxUploadBytes)
	assert.Equal(t, time.UTC, cfg.Location)
}

func TestNewDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("MAXUPLOADBYTES", "lots")
	t.Setenv("TIMEZONE", "")
	t.Setenv("ALLOWEDORIGINS", "")

	cfg := New()

	assert.Equal(t, defaultPort, cfg.Port)
	assert.Equal(t, int64(defaultMaxUploadBytes), cfg.MaxUploadBytes)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Empty(t, cfg.AllowedOrigins)
}

func TestValidate(t *testing.T) {
	t.Run("known timezone", func(t *testing.T) {
		t.Setenv("TIMEZONE", "Europe/London")
		cfg := New()
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "Europe/London", cfg.Location.String())
	})

	t.Run("unset timezone", func(t *testing.T) {
		t.Setenv("TIMEZONE", "")
		require.NoError(t, New().Validate())
	})

	t.Run("unknown timezone", func(t *testing.T) {
		t.Setenv("TIMEZONE", "Not/AZone")
		err := New().Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), `invalid TIMEZONE "Not/AZone"`)
	})
}
