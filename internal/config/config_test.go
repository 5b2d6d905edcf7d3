package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoDB.URI)
	assert.Equal(t, "smart_classroom", cfg.MongoDB.Database)
	assert.Equal(t, 4, cfg.Linker.Workers)
	assert.Equal(t, 3, cfg.Linker.MaxAttempts)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
server:
  port: "9090"
linker:
  workers: 8
  retry_backoff: 250ms
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 8, cfg.Linker.Workers)
	assert.Equal(t, "250ms", cfg.Linker.RetryBackoff)
	// Untouched values keep their defaults.
	assert.Equal(t, "smart_classroom", cfg.MongoDB.Database)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"9090\"\n"), 0o600))

	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("MONGODB_DATABASE", "classroom_test")
	t.Setenv("LINKER_WORKERS", "2")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "classroom_test", cfg.MongoDB.Database)
	assert.Equal(t, 2, cfg.Linker.Workers)
}

func TestLoadConfig_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad duration", map[string]string{"LINKER_RETRY_BACKOFF": "soon"}},
		{"zero workers", map[string]string{"LINKER_WORKERS": "0"}},
		{"empty database", map[string]string{"MONGODB_DATABASE": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
			assert.Error(t, err)
		})
	}
}
