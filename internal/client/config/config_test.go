package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8000", cfg.APIBaseURL)
	assert.Empty(t, cfg.AssetBaseURL)
	assert.Equal(t, 5, cfg.PageLimit)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "dashboard.db", cfg.DatabaseDSN)
}

func TestLoadConfig_AssetBaseFallsBackToAPIBase(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-u", "https://api.example.com"}
	cfg := LoadConfig()

	assert.Equal(t, "https://api.example.com", cfg.APIBaseURL)
	assert.Equal(t, "https://api.example.com", cfg.AssetBaseURL)
}

func TestLoadConfig_ExplicitAssetBaseKept(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-u", "https://api.example.com", "-s", "https://cdn.example.com"}
	cfg := LoadConfig()

	assert.Equal(t, "https://cdn.example.com", cfg.AssetBaseURL)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-l", "20", "-t", "30", "-d", "/tmp/x.db"}
	cfg := LoadConfig()

	assert.Equal(t, 20, cfg.PageLimit)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "/tmp/x.db", cfg.DatabaseDSN)
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "conf-*.json")
	require.NoError(t, err)
	_, err = f.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func TestLoadConfig_JsonFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeConfigFile(t, `{
		"api_base_url": "https://api.example.com",
		"page_limit": 10,
		"request_timeout_s": 7
	}`)

	os.Args = []string{"testbin", "-c", path}
	cfg := LoadConfig()

	assert.Equal(t, "https://api.example.com", cfg.APIBaseURL)
	assert.Equal(t, 10, cfg.PageLimit)
	assert.Equal(t, 7*time.Second, cfg.RequestTimeout)
	// untouched fields keep their defaults
	assert.Equal(t, "dashboard.db", cfg.DatabaseDSN)
}

func TestLoadConfig_FlagsOverrideJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeConfigFile(t, `{"page_limit": 10}`)

	os.Args = []string{"testbin", "-c", path, "-l", "50"}
	cfg := LoadConfig()

	assert.Equal(t, 50, cfg.PageLimit)
}

func TestParseJson_PanicsOnMissingFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-c", "/does/not/exist.json"}

	var cfg Config
	cfg.LoadDefaults()
	require.Panics(t, func() { parseJson(&cfg) })
}

func TestParseJson_PanicsOnMalformedFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeConfigFile(t, `{not json`)
	os.Args = []string{"testbin", "-c", path}

	var cfg Config
	cfg.LoadDefaults()
	require.Panics(t, func() { parseJson(&cfg) })
}
