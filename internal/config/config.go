// Package config loads alertdemo settings from an optional YAML file and
// UIKIT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"uikit/internal/alert"
)

// EnvPrefix prefixes every environment override, e.g. UIKIT_ALERTS_DISMISS_DELAY.
const EnvPrefix = "UIKIT"

// Config is the full settings tree.
type Config struct {
	Alerts    AlertsConfig    `mapstructure:"alerts"`
	Log       LogConfig       `mapstructure:"log"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// AlertsConfig controls the alert store.
type AlertsConfig struct {
	DismissDelay    time.Duration `mapstructure:"dismiss_delay"`
	DefaultVariant  string        `mapstructure:"default_variant"`
	DefaultPosition string        `mapstructure:"default_position"`
}

// LogConfig controls the structured logger. An empty File discards output.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// TelemetryConfig controls OTLP trace export. An empty Endpoint disables it.
type TelemetryConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	ServiceName string `mapstructure:"service_name"`
	Insecure    bool   `mapstructure:"insecure"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Alerts: AlertsConfig{
			DismissDelay:    alert.DefaultDismissDelay,
			DefaultVariant:  alert.VariantInfo.String(),
			DefaultPosition: alert.PositionTopRight.String(),
		},
		Log: LogConfig{
			Level: zerolog.InfoLevel.String(),
		},
		Telemetry: TelemetryConfig{
			ServiceName: "uikit",
			Insecure:    true,
		},
	}
}

// Load reads path (if non-empty), applies environment overrides on top of
// the defaults and validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("alerts.dismiss_delay", d.Alerts.DismissDelay)
	v.SetDefault("alerts.default_variant", d.Alerts.DefaultVariant)
	v.SetDefault("alerts.default_position", d.Alerts.DefaultPosition)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("telemetry.endpoint", d.Telemetry.Endpoint)
	v.SetDefault("telemetry.service_name", d.Telemetry.ServiceName)
	v.SetDefault("telemetry.insecure", d.Telemetry.Insecure)
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Alerts.DismissDelay <= 0 {
		errs = append(errs, fmt.Errorf("alerts.dismiss_delay must be positive, got %s", c.Alerts.DismissDelay))
	}
	if _, err := c.Alerts.Variant(); err != nil {
		errs = append(errs, fmt.Errorf("alerts.default_variant: %w", err))
	}
	if _, err := c.Alerts.Position(); err != nil {
		errs = append(errs, fmt.Errorf("alerts.default_position: %w", err))
	}
	// ParseLevel accepts "" as NoLevel, which would log everything.
	if c.Log.Level == "" {
		errs = append(errs, errors.New("log.level must not be empty"))
	} else if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	return errors.Join(errs...)
}

// Variant returns the parsed default variant.
func (a AlertsConfig) Variant() (alert.Variant, error) {
	return alert.ParseVariant(a.DefaultVariant)
}

// Position returns the parsed default position.
func (a AlertsConfig) Position() (alert.Position, error) {
	return alert.ParsePosition(a.DefaultPosition)
}

// WriteDefault writes the built-in settings to path as YAML. It refuses to
// overwrite an existing file.
func WriteDefault(path string) error {
	d := Default()
	doc := map[string]any{
		"alerts": map[string]any{
			"dismiss_delay":    d.Alerts.DismissDelay.String(),
			"default_variant":  d.Alerts.DefaultVariant,
			"default_position": d.Alerts.DefaultPosition,
		},
		"log": map[string]any{
			"level": d.Log.Level,
			"file":  d.Log.File,
		},
		"telemetry": map[string]any{
			"endpoint":     d.Telemetry.Endpoint,
			"service_name": d.Telemetry.ServiceName,
			"insecure":     d.Telemetry.Insecure,
		},
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding default config: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
