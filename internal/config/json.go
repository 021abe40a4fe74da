package config

import (
	"encoding/json"
	"os"
	"time"

	"gymcli/internal/flagx"
	"gymcli/internal/timex"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so timeouts can be written either as strings like "10s" or
// as integer nanoseconds.
type JSONConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	DataDir        string         `json:"data_dir"`
	RequestTimeout timex.Duration `json:"request_timeout"`
}

// parseJSON overlays cfg with values from the JSON file named by the -c or
// -config flag. When no file is named, cfg is left untouched. Read or
// unmarshal errors panic; startup config problems are not recoverable.
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JSONConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.APIBaseURL = jc.APIBaseURL
	cfg.DataDir = jc.DataDir
	cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
}
