package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/thruflo/primespiral/internal/gallery"
	"github.com/thruflo/primespiral/internal/logging"
	"github.com/thruflo/primespiral/internal/render"
)

// Default values for Config.
const (
	DefaultFileName  = "spiral.yaml"
	DefaultSourceDir = "images"
	DefaultFormat    = FormatHTML
	DefaultTitle     = "Prime spiral"
	DefaultLogLevel  = "warn"
	DefaultPort      = 8374
)

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		Source: Source{
			Dir:     DefaultSourceDir,
			Pattern: gallery.DefaultPattern,
		},
		Render: Render{
			Format:    DefaultFormat,
			PrimeCell: string(render.PrimeCellSkip),
			Title:     DefaultTitle,
		},
		Server: ServerConfig{
			Port: DefaultPort,
		},
		LogLevel: DefaultLogLevel,
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// LoadConfig reads and parses the config file at path.
// If the file doesn't exist, returns default config.
// Applies defaults for any missing fields.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ValidateConfig checks that all config values are valid.
func ValidateConfig(cfg *Config) error {
	if cfg.Source.Dir == "" {
		return ValidationError{Field: "source.dir", Message: "required field is empty"}
	}
	if cfg.Source.Pattern == "" {
		return ValidationError{Field: "source.pattern", Message: "required field is empty"}
	}
	switch cfg.Render.Format {
	case FormatHTML, FormatText, FormatFrame:
	default:
		return ValidationError{Field: "render.format", Message: fmt.Sprintf("unknown format %q", cfg.Render.Format)}
	}
	if _, err := render.ParsePrimeCell(cfg.Render.PrimeCell); err != nil {
		return ValidationError{Field: "render.prime_cell", Message: err.Error()}
	}
	if cfg.Render.CellPadding < 0 {
		return ValidationError{Field: "render.cell_padding", Message: "must not be negative"}
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return ValidationError{Field: "log_level", Message: err.Error()}
	}
	return ValidateServerConfig(&cfg.Server)
}

// ValidateServerConfig checks that server config values are valid.
func ValidateServerConfig(cfg *ServerConfig) error {
	if cfg.Port < 0 || cfg.Port > 65535 {
		return ValidationError{Field: "server.port", Message: "must be between 0 and 65535"}
	}
	return nil
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
