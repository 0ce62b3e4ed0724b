package config

import "time"

// Config holds runtime settings for the dashboard CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API.
//   - AssetBaseURL: base URL server-relative image paths are resolved
//     against; defaults to APIBaseURL.
//   - PageLimit: records requested per listing page.
//   - RequestTimeout: per-request HTTP timeout.
//   - DatabaseDSN: sqlite DSN for the local session store.
type Config struct {
	APIBaseURL     string
	AssetBaseURL   string
	PageLimit      int
	RequestTimeout time.Duration
	DatabaseDSN    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000"
	c.AssetBaseURL = ""
	c.PageLimit = 5
	c.RequestTimeout = 15 * time.Second
	c.DatabaseDSN = "dashboard.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	if cfg.AssetBaseURL == "" {
		cfg.AssetBaseURL = cfg.APIBaseURL
	}
	return cfg
}
