// Package config provides configuration loading for b64webp.
//
// Conversion paths are fixed (image.jpg -> output_image.webp) and are not part
// of Config; the config layer only exists so encoder and logging settings can
// be tuned without a rebuild.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/b64webp/b64webp/internal/convert"
)

// EnvPrefix is the environment variable prefix, e.g. B64WEBP_WEBP_QUALITY.
const EnvPrefix = "B64WEBP"

// ErrInvalid wraps every decode or validation failure returned by Load.
var ErrInvalid = errors.New("invalid configuration")


// SetDefaults registers default configuration values on v
func SetDefaults(v *viper.Viper) {
	// WebP defaults
	v.SetDefault("webp.quality", convert.DefaultQuality)
	v.SetDefault("webp.lossless", false)

	// Logging defaults
	v.SetDefault("logging.level", "info")
}

// BindEnv enables B64WEBP_* overrides for every known key.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load decodes the settings held by v into a Config and validates it. Keys
// outside the webp and logging sections are ignored.
//
// This function is safe to call multiple times (e.g., after a config reload)
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(v.AllSettings()); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal config: %w", ErrInvalid, err)
	}

	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return cfg, nil
}

// Validate checks value ranges that the decoder cannot express.
func (c *Config) Validate() error {
	if c.WebP.Quality < 0 || c.WebP.Quality > 100 {
		return fmt.Errorf("webp.quality must be between 0 and 100, got %d", c.WebP.Quality)
	}
	switch c.Logging.Level {
	case "", "trace", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown logging.level %q", c.Logging.Level)
	}
	return nil
}
