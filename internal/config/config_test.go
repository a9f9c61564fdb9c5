package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	assert.Equal(t, "tfidf", cfg.Embedding.Provider)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.Empty(t, cfg.AdminPassword)
}

func TestLoad_ParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
data_dir = "/tmp/deskmate"
admin_password = "hunter2"

[embedding]
provider = "ollama"
model = "nomic-embed-text"

[smtp]
host = "smtp.example.com"
port = 465
from = "support@example.com"
use_tls = true

[batch]
send_rate = 2.5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/deskmate", cfg.DataDir)
	assert.Equal(t, "hunter2", cfg.AdminPassword)
	assert.Equal(t, "ollama", cfg.Embedding.Provider)
	assert.Equal(t, "smtp.example.com", cfg.SMTP.Host)
	assert.Equal(t, 465, cfg.SMTP.Port)
	assert.True(t, cfg.SMTP.UseTLS)
	assert.InDelta(t, 2.5, cfg.Batch.SendRate, 1e-9)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverridesSMTPPassword(t *testing.T) {
	t.Setenv(EnvSMTPPassword, "from-env")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.SMTP.Password)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.DataDir = "/data"
	cfg.SMTP.Host = "mail.example.com"
	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data", loaded.DataDir)
	assert.Equal(t, "mail.example.com", loaded.SMTP.Host)
}
