// Package config loads and validates the bridge configuration.
package config

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/gibberlink-dev/gibberlink-bridge/domain/entities"
	domainerrors "github.com/gibberlink-dev/gibberlink-bridge/domain/errors"
	"github.com/gibberlink-dev/gibberlink-bridge/domain/ports"
)

// validate is a package-level singleton for better performance.
// Creating a new validator on each call is expensive; reusing is recommended.
var validate = validator.New()

// Loader reads, parses, and validates bridge configuration files.
type Loader struct {
	parser ports.ConfigParser
}

// NewLoader creates a Loader backed by the given parser.
func NewLoader(parser ports.ConfigParser) *Loader {
	return &Loader{parser: parser}
}

// Load reads the file at path, parses it, and validates the result.
func (l *Loader) Load(path string) (*entities.BridgeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := l.parser.Parse(data)
	if err != nil {
		return nil, &domainerrors.ConfigError{Err: err}
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate runs the struct validation tags over cfg.
func Validate(cfg *entities.BridgeConfig) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if stderrors.As(err, &verrs) && len(verrs) > 0 {
			return &domainerrors.ConfigError{Err: err, Field: verrs[0].Field()}
		}
		return &domainerrors.ConfigError{Err: err}
	}
	return nil
}

// SlogLevel maps the config's log level string to a slog.Level.
func SlogLevel(cfg *entities.BridgeConfig) slog.Level {
	switch cfg.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
