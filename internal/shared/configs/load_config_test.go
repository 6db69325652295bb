package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "configs.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, ".", cfg.Source.RootDir)
	assert.Equal(t, 1024*1024, cfg.Source.MaxLineBytes)
	assert.True(t, cfg.Query.SkipMalformed)
	assert.Equal(t, 10, cfg.Query.DefaultTopN)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, 30, cfg.Server.WriteTimeout)
	assert.Equal(t, 60, cfg.Server.IdleTimeout)
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	path := writeConfig(t, `server:
  port: 9090
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: debug
source:
  root_dir: ./data
  max_line_bytes: 4096
query:
  skip_malformed: false
  default_top_n: 3
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 10, cfg.Server.WriteTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "./data", cfg.Source.RootDir)
	assert.Equal(t, 4096, cfg.Source.MaxLineBytes)
	assert.False(t, cfg.Query.SkipMalformed)
	assert.Equal(t, 3, cfg.Query.DefaultTopN)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `log:
  level: info
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.True(t, cfg.Query.SkipMalformed)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("HNSTAT_LOG_LEVEL", "error")
	t.Setenv("HNSTAT_QUERY_DEFAULT_TOP_N", "25")
	t.Setenv("HNSTAT_SOURCE_ROOT_DIR", "/var/log/hn")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, 25, cfg.Query.DefaultTopN)
	assert.Equal(t, "/var/log/hn", cfg.Source.RootDir)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	path := writeConfig(t, `log:
  level: loud
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "log.level (oneof=")
}

func TestLoadConfig_InvalidPortRange(t *testing.T) {
	path := writeConfig(t, `server:
  port: 70000
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "server.port (max=65535)")
}

func TestLoadConfig_InvalidSourceSettings(t *testing.T) {
	path := writeConfig(t, `source:
  root_dir: ""
  max_line_bytes: 10
query:
  default_top_n: -1
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source.rootdir (required)")
	assert.Contains(t, err.Error(), "source.maxlinebytes (min=1024)")
	assert.Contains(t, err.Error(), "query.defaulttopn (min=0)")
}
