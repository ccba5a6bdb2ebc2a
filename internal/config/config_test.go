package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/moneywiz-decoder/internal/model"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "moneywiz.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// -- Load tests --

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "", cfg.DatabasePath)
	assert.True(t, cfg.ReadOnly)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 1000, cfg.QueueSize)
	assert.Equal(t, "info", cfg.LogLevel)

	tol, err := cfg.Tolerances()
	require.NoError(t, err)
	assert.True(t, tol.Default.Equal(model.DefaultTolerance))
	assert.True(t, tol.Withdraw.Equal(model.WithdrawTolerance))
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
database_path: /data/moneywiz.sqlite
workers: 8
log_level: debug
tolerance_withdraw: "0.05"
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "/data/moneywiz.sqlite", cfg.DatabasePath)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "0.05", cfg.ToleranceWithdraw)
	assert.Equal(t, "0.001", cfg.ToleranceDefault)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "workers: 8\n")
	t.Setenv("MONEYWIZ_WORKERS", "2")
	t.Setenv("MONEYWIZ_DATABASE_PATH", "/tmp/other.sqlite")
	t.Setenv("MONEYWIZ_READ_ONLY", "false")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, "/tmp/other.sqlite", cfg.DatabasePath)
	assert.False(t, cfg.ReadOnly)
	assert.Equal(t, "/tmp/other.sqlite", cfg.Storage().Path)
}

func TestProcessEnvironmentVariables(t *testing.T) {
	t.Setenv("MONEYWIZ_TOLERANCE_DEFAULT", "0.002")

	cfg, err := ProcessEnvironmentVariables()

	require.NoError(t, err)
	tol, err := cfg.Tolerances()
	require.NoError(t, err)
	assert.Equal(t, "0.002", tol.Default.String())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.ErrorContains(t, err, "config file")
}

// -- Validate tests --

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"zero workers", map[string]string{"MONEYWIZ_WORKERS": "0"}, "workers must be at least 1"},
		{"zero queue", map[string]string{"MONEYWIZ_QUEUE_SIZE": "0"}, "queue_size must be at least 1"},
		{"bad tolerance", map[string]string{"MONEYWIZ_TOLERANCE_DEFAULT": "abc"}, "tolerance_default"},
		{"negative tolerance", map[string]string{"MONEYWIZ_TOLERANCE_WITHDRAW": "-0.01"}, "tolerance_withdraw: must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load("")

			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
