package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envFrom(map[string]string{
		"POSTGRES_DSN": "postgres://localhost/vemio",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 10*time.Second, cfg.ParametersFetchTimeout)
	assert.Equal(t, 30*time.Minute, cfg.ViewIdleTTL)
	assert.Equal(t, 20, cfg.DBMaxOpenConns)
	assert.Equal(t, 10, cfg.DBMaxIdleConns)
	assert.Equal(t, 30*time.Minute, cfg.DBConnMaxLifetime)
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(envFrom(map[string]string{
		"POSTGRES_DSN":             "postgres://localhost/vemio",
		"HTTP_ADDR":                ":9090",
		"PARAMETERS_FETCH_TIMEOUT": "3s",
		"VIEW_IDLE_TTL":            "1h",
		"DB_MAX_OPEN_CONNS":        "5",
		"DB_MAX_IDLE_CONNS":        "2",
		"DB_CONN_MAX_LIFETIME":     "10m",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, 3*time.Second, cfg.ParametersFetchTimeout)
	assert.Equal(t, time.Hour, cfg.ViewIdleTTL)
	assert.Equal(t, 5, cfg.DBMaxOpenConns)
	assert.Equal(t, 2, cfg.DBMaxIdleConns)
	assert.Equal(t, 10*time.Minute, cfg.DBConnMaxLifetime)
}

func TestFromEnv_MissingDSN(t *testing.T) {
	_, err := FromEnv(envFrom(map[string]string{}))
	assert.True(t, errors.Is(err, ErrMissingDSN))
}

func TestFromEnv_InvalidValues(t *testing.T) {
	tests := map[string]string{
		"PARAMETERS_FETCH_TIMEOUT": "ten",
		"VIEW_IDLE_TTL":            "-1m",
		"DB_MAX_OPEN_CONNS":        "many",
		"DB_MAX_IDLE_CONNS":        "-3",
		"DB_CONN_MAX_LIFETIME":     "0s",
	}

	for key, val := range tests {
		t.Run(key, func(t *testing.T) {
			_, err := FromEnv(envFrom(map[string]string{
				"POSTGRES_DSN": "postgres://localhost/vemio",
				key:            val,
			}))
			assert.Error(t, err)
		})
	}
}
