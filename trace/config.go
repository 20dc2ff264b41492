// Package trace provides loggers and debug taps for inspecting optics as they
// run. Traced optics log every read, write and visited focus at debug level and
// otherwise behave exactly like the optic they wrap.
package trace

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
	FormatText    = "text"
)

// ErrInvalidConfig is returned by Validate and ParseConfig.
var ErrInvalidConfig = errors.New("trace: invalid config")

// Config configures the loggers built by NewLogger and NewSlogLogger.
type Config struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Label  string `yaml:"label"`
}

// DefaultConfig returns info level JSON output labelled "optics".
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: FormatJSON,
		Label:  "optics",
	}
}

// Validate checks the level and format. Empty values are accepted and fall
// back to the defaults when a logger is built.
func (c Config) Validate() error {
	if c.Level != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(c.Level)); err != nil {
			return fmt.Errorf("%w: level %q", ErrInvalidConfig, c.Level)
		}
	}
	switch c.Format {
	case "", FormatJSON, FormatConsole, FormatText:
		return nil
	default:
		return fmt.Errorf("%w: format %q", ErrInvalidConfig, c.Format)
	}
}

// LoadEnv overrides fields from <prefix>_LEVEL, <prefix>_FORMAT and
// <prefix>_LABEL when they are set.
func (c Config) LoadEnv(prefix string) Config {
	if prefix != "" {
		prefix += "_"
	}
	if v, ok := os.LookupEnv(prefix + "LEVEL"); ok {
		c.Level = v
	}
	if v, ok := os.LookupEnv(prefix + "FORMAT"); ok {
		c.Format = v
	}
	if v, ok := os.LookupEnv(prefix + "LABEL"); ok {
		c.Label = v
	}
	return c
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
