package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_OverlaysValues(t *testing.T) {
	path := writeConfigFile(t, `{
		"api_base_url": "http://gym.example.com",
		"data_dir": "/var/lib/gymcli",
		"request_timeout": "3s"
	}`)
	setArgs(t, "-c", path)

	var cfg Config
	cfg.LoadDefaults()
	parseJSON(&cfg)

	assert.Equal(t, "http://gym.example.com", cfg.APIBaseURL)
	assert.Equal(t, "/var/lib/gymcli", cfg.DataDir)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
}

func TestParseJSON_TimeoutAsNanoseconds(t *testing.T) {
	path := writeConfigFile(t, `{"api_base_url": "http://gym.example.com", "request_timeout": 5000000000}`)
	setArgs(t, "-config", path)

	var cfg Config
	cfg.LoadDefaults()
	parseJSON(&cfg)

	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestParseJSON_NoFileNamed(t *testing.T) {
	setArgs(t)

	var cfg Config
	cfg.LoadDefaults()
	parseJSON(&cfg)

	assert.Equal(t, "http://127.0.0.1:3333", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestParseJSON_MissingFilePanics(t *testing.T) {
	setArgs(t, "-c", filepath.Join(t.TempDir(), "absent.json"))

	var cfg Config
	cfg.LoadDefaults()
	assert.Panics(t, func() { parseJSON(&cfg) })
}

func TestParseJSON_MalformedFilePanics(t *testing.T) {
	path := writeConfigFile(t, `{"api_base_url": `)
	setArgs(t, "-c", path)

	var cfg Config
	cfg.LoadDefaults()
	assert.Panics(t, func() { parseJSON(&cfg) })
}
