// Package config holds runtime settings for the gallery client.
package config

import "time"

// Config holds runtime settings.
//
// Fields:
//   - APIBaseURL: base URL of the gallery REST API.
//   - AuthBaseURL: base URL of the auth service.
//   - TokenDBPath: path of the SQLite file holding the durable session token.
//   - RequestTimeout: per-request timeout for collaborator calls.
type Config struct {
	APIBaseURL     string
	AuthBaseURL    string
	TokenDBPath    string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://mesto.nomoreparties.co/v1/cohort-42"
	c.AuthBaseURL = "https://auth.nomoreparties.co"
	c.TokenDBPath = "mesto.db"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if a config file is given) and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
