// Package config holds the library-wide settings that control
// how assertion failures are reported, logged and counted.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"digital.vasic.truthext/pkg/env"
)

// EnvPrefix is prepended to every environment key read by
// FromEnv.
const EnvPrefix = "TRUTHEXT_"

// Config is the complete library configuration.
type Config struct {
	// Locale is the BCP-47 tag used by locale-sensitive
	// derivations that are called without an explicit locale.
	Locale string `yaml:"locale" json:"locale" validate:"required,bcp47"`

	// Logging controls failure logging.
	Logging Logging `yaml:"logging" json:"logging"`

	// Report controls failure rendering.
	Report Report `yaml:"report" json:"report"`

	// Metrics controls assertion outcome counting.
	Metrics Metrics `yaml:"metrics" json:"metrics"`
}

// Logging configures the failure logger.
type Logging struct {
	// Format selects the logger: none, json or console.
	Format string `yaml:"format" json:"format" validate:"oneof=none json console"`

	// Level is the minimum level written.
	Level string `yaml:"level" json:"level" validate:"oneof=debug info warn error"`

	// Output is a log file path. Empty means the logger's
	// default stream.
	Output string `yaml:"output" json:"output"`
}

// Report configures failure rendering.
type Report struct {
	// Format is text, json or yaml.
	Format string `yaml:"format" json:"format" validate:"oneof=text json yaml"`

	// MaxValueLength truncates long fact values.
	MaxValueLength int `yaml:"max_value_length" json:"max_value_length" validate:"gte=16"`
}

// Metrics configures outcome counting.
type Metrics struct {
	// Enabled registers Prometheus collectors.
	Enabled bool `yaml:"enabled" json:"enabled"`

	// Namespace prefixes every metric name.
	Namespace string `yaml:"namespace" json:"namespace" validate:"required_if=Enabled true"`
}

// Default returns the configuration used when nothing else is
// supplied.
func Default() Config {
	return Config{
		Locale: "en-US",
		Logging: Logging{
			Format: "none",
			Level:  "info",
		},
		Report: Report{
			Format:         "text",
			MaxValueLength: 200,
		},
		Metrics: Metrics{
			Namespace: "truthext",
		},
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("bcp47", func(fl validator.FieldLevel) bool {
		_, err := language.Parse(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf(
				"invalid config field %s: failed %q",
				verrs[0].Namespace(), verrs[0].Tag(),
			)
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LocaleTag returns the parsed locale, or English when the
// locale cannot be parsed.
func (c Config) LocaleTag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

// Load reads a YAML file over the defaults and validates the
// result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// FromEnv builds a configuration from the environment. The
// loader should resolve keys with EnvPrefix, as returned by
// NewEnvLoader. CONFIG names an optional YAML file that is
// applied first; individual variables override it.
func FromEnv(loader env.Loader) (Config, error) {
	cfg := Default()
	if path := loader.Get("CONFIG"); path != "" {
		loaded, err := Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	cfg.Locale = loader.GetWithDefault("LOCALE", cfg.Locale)
	cfg.Logging.Format = loader.GetWithDefault(
		"LOG_FORMAT", cfg.Logging.Format,
	)
	cfg.Logging.Level = loader.GetWithDefault(
		"LOG_LEVEL", cfg.Logging.Level,
	)
	cfg.Logging.Output = loader.GetWithDefault(
		"LOG_OUTPUT", cfg.Logging.Output,
	)
	cfg.Report.Format = loader.GetWithDefault(
		"REPORT_FORMAT", cfg.Report.Format,
	)
	cfg.Metrics.Namespace = loader.GetWithDefault(
		"METRICS_NAMESPACE", cfg.Metrics.Namespace,
	)

	n, err := loader.GetInt(
		"MAX_VALUE_LENGTH", cfg.Report.MaxValueLength,
	)
	if err != nil {
		return cfg, err
	}
	cfg.Report.MaxValueLength = n

	enabled, err := loader.GetBool(
		"METRICS_ENABLED", cfg.Metrics.Enabled,
	)
	if err != nil {
		return cfg, err
	}
	cfg.Metrics.Enabled = enabled

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// NewEnvLoader returns a loader resolving keys with EnvPrefix.
func NewEnvLoader() *env.DefaultLoader {
	return env.NewPrefixedLoader(EnvPrefix)
}
