package config

import (
	"github.com/b64webp/b64webp/internal/convert"
)

// Config represents the complete application configuration.
// Values come from, in increasing precedence: built-in defaults, the
// optional config file, and B64WEBP_* environment variables.
// The input and output paths are fixed and have no config keys.
type Config struct {
	WebP    WebPConfig    `mapstructure:"webp"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// WebPConfig contains WebP encoder settings
type WebPConfig struct {
	// Quality is the lossy quality factor (0-100). Ignored when Lossless is set.
	Quality  int  `mapstructure:"quality"`
	Lossless bool `mapstructure:"lossless"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	// Level controls the minimum log level
	// Valid values: trace, debug, info, warn, error
	Level string `mapstructure:"level"`
}

// ConvertOptions maps the WebP section onto encoder options.
func (c *Config) ConvertOptions() convert.Options {
	return convert.Options{Quality: c.WebP.Quality, Lossless: c.WebP.Lossless}
}
