package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir(), "", nil)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8000", cfg.Server.Bind)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "assets", cfg.Storage.Bucket)
	assert.Equal(t, 30, cfg.Storage.TimeoutSeconds)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("SERVER_BIND", "0.0.0.0:9000")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := LoadConfig(t.TempDir(), "", nil)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Bind)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVER_PROC_NAME=from-dotenv\n"), 0o644))
	t.Setenv("SERVER_PROC_NAME", "")

	cfg, err := LoadConfig(dir, "", nil)
	require.NoError(t, err)

	assert.Equal(t, "from-dotenv", cfg.Server.ProcName)
}

func TestLoadConfig_FileAndFlags(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "appserve.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
server:
  bind: 127.0.0.1:7000
  api_key: file-key
workers: 4
`), 0o644))

	flags := pflag.NewFlagSet("run", pflag.ContinueOnError)
	flags.String("bind", "", "")
	flags.String("api-key", "", "")
	require.NoError(t, flags.Parse([]string{"--bind", "127.0.0.1:7001"}))

	cfg, err := LoadConfig(dir, file, flags)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:7001", cfg.Server.Bind, "explicit flag wins")
	assert.Equal(t, "file-key", cfg.Server.ApiKey, "unset flag keeps file value")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(t.TempDir(), filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}
