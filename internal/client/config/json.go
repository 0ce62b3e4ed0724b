package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/rofaidaezzat/fashon-dashboard/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. The request
// timeout is specified in whole seconds.
type JsonConfig struct {
	APIBaseURL      string `json:"api_base_url"`
	AssetBaseURL    string `json:"asset_base_url"`
	PageLimit       int    `json:"page_limit"`
	RequestTimeoutS int    `json:"request_timeout_s"`
	DatabaseDSN     string `json:"database_dsn"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Only fields present in the file override the config; zero values are
// skipped so the file can be partial. Panics on read or unmarshal errors
// (caller should recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.AssetBaseURL != "" {
		cfg.AssetBaseURL = jc.AssetBaseURL
	}
	if jc.PageLimit > 0 {
		cfg.PageLimit = jc.PageLimit
	}
	if jc.RequestTimeoutS > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutS) * time.Second
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
}
