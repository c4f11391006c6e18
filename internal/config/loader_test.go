package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `source:
  dir: photos
  pattern: "*.jpg"
render:
  format: frame
  prime_cell: blank
  cell_padding: 3
  page: true
server:
  port: 9000
output: out.html
log_level: debug
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "photos", cfg.Source.Dir)
	assert.Equal(t, "*.jpg", cfg.Source.Pattern)
	assert.Equal(t, FormatFrame, cfg.Render.Format)
	assert.Equal(t, "blank", cfg.Render.PrimeCell)
	assert.Equal(t, 3, cfg.Render.CellPadding)
	assert.True(t, cfg.Render.Page)
	assert.Equal(t, DefaultTitle, cfg.Render.Title, "unset fields keep defaults")
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "out.html", cfg.Output)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigPartialAppliesDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "output: gallery.html\n"))
	require.NoError(t, err)

	assert.Equal(t, DefaultSourceDir, cfg.Source.Dir)
	assert.Equal(t, "*.png", cfg.Source.Pattern)
	assert.Equal(t, FormatHTML, cfg.Render.Format)
	assert.Equal(t, "skip", cfg.Render.PrimeCell)
	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, "gallery.html", cfg.Output)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "source: [unclosed\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
	assert.False(t, IsValidationError(err))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"empty dir", func(c *Config) { c.Source.Dir = "" }, "source.dir"},
		{"empty pattern", func(c *Config) { c.Source.Pattern = "" }, "source.pattern"},
		{"unknown format", func(c *Config) { c.Render.Format = "pdf" }, "render.format"},
		{"unknown prime cell", func(c *Config) { c.Render.PrimeCell = "hide" }, "render.prime_cell"},
		{"negative padding", func(c *Config) { c.Render.CellPadding = -1 }, "render.cell_padding"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"negative port", func(c *Config) { c.Server.Port = -1 }, "server.port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := ValidateConfig(&cfg)
			require.Error(t, err)
			assert.True(t, IsValidationError(err))

			var ve ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}

	cfg := DefaultConfig()
	assert.NoError(t, ValidateConfig(&cfg))
}

func TestLoadConfigValidationError(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "render:\n  format: svg\n"))
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "render.format")
}
