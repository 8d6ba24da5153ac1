package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "en-US", cfg.Locale)
	assert.Equal(t, "none", cfg.Logging.Format)
	assert.Equal(t, "text", cfg.Report.Format)
	assert.Equal(t, 200, cfg.Report.MaxValueLength)
	assert.False(t, cfg.Metrics.Enabled)
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"bad locale", func(c *Config) { c.Locale = "not a tag!" }, "Locale"},
		{"empty locale", func(c *Config) { c.Locale = "" }, "Locale"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "Format"},
		{"bad log level", func(c *Config) { c.Logging.Level = "trace" }, "Level"},
		{"bad report format", func(c *Config) { c.Report.Format = "html" }, "Format"},
		{"short values", func(c *Config) { c.Report.MaxValueLength = 3 }, "MaxValueLength"},
		{"metrics without namespace", func(c *Config) {
			c.Metrics.Enabled = true
			c.Metrics.Namespace = ""
		}, "Namespace"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestConfig_LocaleTag(t *testing.T) {
	cfg := Default()
	cfg.Locale = "de-DE"
	assert.Equal(t, language.MustParse("de-DE"), cfg.LocaleTag())

	cfg.Locale = "???"
	assert.Equal(t, language.English, cfg.LocaleTag())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "truthext.yaml")
	content := `locale: fr-FR
logging:
  format: json
  level: debug
report:
  format: yaml
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "fr-FR", cfg.Locale)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "yaml", cfg.Report.Format)
	// Untouched keys keep their defaults.
	assert.Equal(t, 200, cfg.Report.MaxValueLength)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load("/nonexistent/truthext.yaml")
	assert.Error(t, err)

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("locale: [\n"), 0644))
	_, err = Load(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(
		invalid, []byte("report:\n  format: pdf\n"), 0644,
	))
	_, err = Load(invalid)
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("TRUTHEXT_LOCALE", "ja-JP")
	t.Setenv("TRUTHEXT_LOG_FORMAT", "console")
	t.Setenv("TRUTHEXT_MAX_VALUE_LENGTH", "64")
	t.Setenv("TRUTHEXT_METRICS_ENABLED", "true")

	cfg, err := FromEnv(NewEnvLoader())
	require.NoError(t, err)
	assert.Equal(t, "ja-JP", cfg.Locale)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 64, cfg.Report.MaxValueLength)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "truthext", cfg.Metrics.Namespace)
}

// TestFromEnv_ConfigFile verifies variables override the file.
func TestFromEnv_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "truthext.yaml")
	require.NoError(t, os.WriteFile(
		path, []byte("locale: fr-FR\nreport:\n  format: json\n"), 0644,
	))
	t.Setenv("TRUTHEXT_CONFIG", path)
	t.Setenv("TRUTHEXT_REPORT_FORMAT", "yaml")

	cfg, err := FromEnv(NewEnvLoader())
	require.NoError(t, err)
	assert.Equal(t, "fr-FR", cfg.Locale)
	assert.Equal(t, "yaml", cfg.Report.Format)
}

func TestFromEnv_Invalid(t *testing.T) {
	t.Setenv("TRUTHEXT_MAX_VALUE_LENGTH", "lots")
	_, err := FromEnv(NewEnvLoader())
	assert.Error(t, err)
}
