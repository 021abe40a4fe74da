// Package config loads runtime settings for the gym client. Values come from
// defaults, then an optional JSON file, then command-line flags; later
// sources win.
package config

import "time"

// Config holds runtime settings for the gym CLI.
//
// Fields:
//   - APIBaseURL: base URL of the gym backend, e.g. "http://127.0.0.1:3333".
//   - RequestTimeout: per-request deadline for API calls.
//   - DataDir: directory for the credential database and device key.
//     Empty means "use the per-user default" (resolved at wiring time).
type Config struct {
	APIBaseURL     string
	DataDir        string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:3333"
	c.RequestTimeout = 10 * time.Second
	c.DataDir = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
