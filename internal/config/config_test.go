package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func setArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"gymcli"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	want := Config{
		APIBaseURL:     "http://127.0.0.1:3333",
		DataDir:        "",
		RequestTimeout: 10 * time.Second,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("unexpected defaults (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_NoSourcesKeepsDefaults(t *testing.T) {
	setArgs(t)

	cfg := LoadConfig()

	var want Config
	want.LoadDefaults()
	if diff := cmp.Diff(want, *cfg); diff != "" {
		t.Errorf("unexpected config (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_FlagsWin(t *testing.T) {
	setArgs(t, "-a", "http://gym.example.com", "-t", "3", "-d", "/tmp/gym")

	cfg := LoadConfig()

	assert.Equal(t, "http://gym.example.com", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "/tmp/gym", cfg.DataDir)
}
