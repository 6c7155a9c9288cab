package configuration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Full(t *testing.T) {
	path := writeConfig(t, `
logger:
  level: debug
server:
  address: ":9090"
  read_timeout: 5s
corpus:
  file: /etc/sleuth/corpus.yaml
engine:
  strict_identifiers: true
  workers: 4
  weights:
    has_motive: 0.4
cache:
  window: 64
journal:
  file: /var/log/sleuth/journal.jsonl
  max_size: 10
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Logger.Level)
	assert.Equal(t, ":9090", config.Server.Address)
	assert.Equal(t, 5*time.Second, config.Server.ReadTimeout)
	assert.Equal(t, 3*time.Second, config.Server.WriteTimeout)
	assert.Equal(t, "/etc/sleuth/corpus.yaml", config.Corpus.File)
	assert.True(t, config.Engine.StrictIdentifiers)
	assert.Equal(t, 4, config.Engine.Workers)
	assert.Equal(t, map[string]float64{"has_motive": 0.4}, config.Engine.Weights)
	assert.Equal(t, 64, config.Cache.Window)
	assert.Equal(t, "/var/log/sleuth/journal.jsonl", config.Journal.File)
	assert.Equal(t, 10, config.Journal.MaxSize)
	assert.Equal(t, 20, config.Journal.MaxBackups)
}

func TestLoadConfig_Minimal(t *testing.T) {
	path := writeConfig(t, `
logger:
  level: INFO
server:
  address: ":8080"
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Empty(t, config.Corpus.File)
	assert.False(t, config.Engine.StrictIdentifiers)
	assert.Empty(t, config.Journal.File)
	assert.Equal(t, 100, config.Journal.MaxSize)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorContains(t, err, "error reading config file")
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "missing level",
			content:  "server: {address: ':8080'}",
			expected: "logger.level: must be specified",
		},
		{
			name:     "unsupported level",
			content:  "logger: {level: verbose}\nserver: {address: ':8080'}",
			expected: "logger.level: unsupported level 'verbose'",
		},
		{
			name:     "missing address",
			content:  "logger: {level: info}",
			expected: "server.address: must be specified",
		},
		{
			name:     "weight out of range",
			content:  "logger: {level: info}\nserver: {address: ':8080'}\nengine: {weights: {has_motive: 1.5}}",
			expected: "engine.weights.has_motive",
		},
		{
			name:     "negative workers",
			content:  "logger: {level: info}\nserver: {address: ':8080'}\nengine: {workers: -1}",
			expected: "engine.workers",
		},
		{
			name:     "negative cache window",
			content:  "logger: {level: info}\nserver: {address: ':8080'}\ncache: {window: -5}",
			expected: "cache.window",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.ErrorContains(t, err, "invalid config")
			assert.ErrorContains(t, err, tt.expected)
		})
	}
}
