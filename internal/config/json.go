package config

import (
	"encoding/json"
	"os"
	"time"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Timeouts may
// be given either as strings like "10s" or as integer nanoseconds.
type jsonConfig struct {
	APIBaseURL     string   `json:"api_base_url"`
	AuthBaseURL    string   `json:"auth_base_url"`
	TokenDBPath    string   `json:"token_db_path"`
	RequestTimeout duration `json:"request_timeout"`
}

// duration wraps time.Duration so it can be unmarshalled from both string
// and numeric JSON values.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	default:
		return json.Unmarshal(b, &d.Duration)
	}
}

// parseJson overlays cfg with values from the JSON file named by the -c or
// -config flag. With no such flag it is a no-op. Empty fields in the file
// leave the current value untouched. Read or unmarshal errors panic; config
// is loaded once at startup and a broken file should be fatal.
func parseJson(cfg *Config) {
	path := jsonConfigPath()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.AuthBaseURL != "" {
		cfg.AuthBaseURL = jc.AuthBaseURL
	}
	if jc.TokenDBPath != "" {
		cfg.TokenDBPath = jc.TokenDBPath
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}
