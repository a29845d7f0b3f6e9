// Package config holds the parameters of a long range fit experiment.
//
// Values are resolved with the precedence environment > file > defaults. The
// environment variables carry the LONGRANGE_ prefix and the upper case key,
// e.g. LONGRANGE_ALPHA or LONGRANGE_LOG_LEVEL.
package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/hammal/longrange/expfit"
	"github.com/hammal/longrange/logging"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable.
const EnvPrefix = "LONGRANGE"

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config collects everything an experiment needs.
type Config struct {
	// Exponent of the decay r^(-alpha)
	Alpha float64 `mapstructure:"alpha"`
	// Number of sampled sites
	Sites int `mapstructure:"sites"`
	// Number of exponential components
	Components int `mapstructure:"components"`
	// Pseudo-inverse cutoff of the shift operator
	RCond float64 `mapstructure:"rcond"`
	// Cutoff of the coefficient least squares problem
	LstsqRCond float64 `mapstructure:"lstsq_rcond"`
	// Coupling strength of the S+S- + S-S+ terms
	XY float64 `mapstructure:"xy"`
	// Coupling strength of the SzSz term
	Z float64 `mapstructure:"z"`
	// One of trace, debug, info, warn, error
	LogLevel string `mapstructure:"log_level"`
}

// Default returns the configuration of a 1/r interaction on 1000 sites with
// ten components.
func Default() *Config {
	return &Config{
		Alpha:      1,
		Sites:      1000,
		Components: 10,
		RCond:      expfit.DefaultRCond,
		LstsqRCond: expfit.DefaultLstsqRCond,
		XY:         1,
		Z:          1,
		LogLevel:   "info",
	}
}

// Load reads the configuration file at path, if path is not empty, applies the
// environment on top and validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "config: read %s", path)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "config: decode")
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults registers every key, which also makes viper consult the
// environment for it on Unmarshal.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("alpha", d.Alpha)
	v.SetDefault("sites", d.Sites)
	v.SetDefault("components", d.Components)
	v.SetDefault("rcond", d.RCond)
	v.SetDefault("lstsq_rcond", d.LstsqRCond)
	v.SetDefault("xy", d.XY)
	v.SetDefault("z", d.Z)
	v.SetDefault("log_level", d.LogLevel)
}

// Validate applies the fit parameter rules of expfit.LongRangeCoeffs and checks
// the cutoffs, coupling strengths and log level.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.Wrap(ErrInvalidConfig, "nil")
	}
	if err := expfit.ValidateParameters(cfg.Alpha, cfg.Sites, cfg.Components); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if cfg.RCond < 0 || math.IsNaN(cfg.RCond) {
		return errors.Wrapf(ErrInvalidConfig, "rcond %v must be >= 0", cfg.RCond)
	}
	if cfg.LstsqRCond < 0 || math.IsNaN(cfg.LstsqRCond) {
		return errors.Wrapf(ErrInvalidConfig, "lstsq_rcond %v must be >= 0", cfg.LstsqRCond)
	}
	if math.IsNaN(cfg.XY) || math.IsInf(cfg.XY, 0) || math.IsNaN(cfg.Z) || math.IsInf(cfg.Z, 0) {
		return errors.Wrapf(ErrInvalidConfig, "coupling strengths xy = %v, z = %v", cfg.XY, cfg.Z)
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
