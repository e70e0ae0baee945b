package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hackerstories.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "React", cfg.Search.Default)
	assert.Equal(t, ":8000", cfg.Server.Address)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
server:
  address: "localhost:9001"
  verbose: true
logging:
  level: debug
search:
  default: Redux
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "localhost:9001", cfg.Server.Address)
	assert.True(t, cfg.Server.Verbose)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "Redux", cfg.Search.Default)
}

func TestLoadBlankValuesFallBack(t *testing.T) {
	path := writeConfig(t, `
server:
  address: ""
search:
  default: ""
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":8000", cfg.Server.Address)
	assert.Equal(t, "React", cfg.Search.Default, "default search must never be empty")
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: debug\n")
	t.Setenv(EnvAddress, ":7777")
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvDefaultSearch, "redux")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7777", cfg.Server.Address)
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, "redux", cfg.Search.Default)
}

func TestLoadPathFromEnv(t *testing.T) {
	path := writeConfig(t, "search:\n  default: Redux\n")
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Redux", cfg.Search.Default)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(writeConfig(t, "server: [not, a, map"))
	assert.Error(t, err, "malformed YAML")

	_, err = Load(t.TempDir())
	assert.Error(t, err, "a directory is not a readable config file")
}

func TestLoadSessionTTL(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, cfg.Search.SessionTTL)

	path := writeConfig(t, "search:\n  session_ttl: 90s\n")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, cfg.Search.SessionTTL)

	t.Setenv(EnvSessionTTL, "2h")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, cfg.Search.SessionTTL)

	t.Setenv(EnvSessionTTL, "soon")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, cfg.Search.SessionTTL, "a bad env value keeps the file value")
}
