package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/moneywiz-decoder/internal/model"
	"github.com/carson-networks/moneywiz-decoder/internal/storage"
)

// EnvPrefix prefixes every environment override, e.g. MONEYWIZ_WORKERS.
const EnvPrefix = "MONEYWIZ_"

type Config struct {
	DatabasePath      string `koanf:"database_path"`
	ReadOnly          bool   `koanf:"read_only"`
	Workers           int    `koanf:"workers"`
	QueueSize         int    `koanf:"queue_size"`
	LogLevel          string `koanf:"log_level"`
	ToleranceDefault  string `koanf:"tolerance_default"`
	ToleranceWithdraw string `koanf:"tolerance_withdraw"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"database_path":      "",
		"read_only":          true,
		"workers":            4,
		"queue_size":         1000,
		"log_level":          "info",
		"tolerance_default":  model.DefaultTolerance.String(),
		"tolerance_withdraw": model.WithdrawTolerance.String(),
	}
}

// Load layers the defaults, the YAML file at path (skipped when path is
// empty) and MONEYWIZ_ environment variables, in that order.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	envKey := func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ProcessEnvironmentVariables loads the defaults and environment overrides
// without a config file.
func ProcessEnvironmentVariables() (*Config, error) {
	return Load("")
}

func (c *Config) Validate() error {
	if c.Workers < 1 {
		return errors.New("workers must be at least 1")
	}
	if c.QueueSize < 1 {
		return errors.New("queue_size must be at least 1")
	}
	if _, err := c.Tolerances(); err != nil {
		return err
	}
	return nil
}

// Tolerances parses the configured comparison tolerances.
func (c *Config) Tolerances() (model.Tolerances, error) {
	def, err := parseTolerance("tolerance_default", c.ToleranceDefault)
	if err != nil {
		return model.Tolerances{}, err
	}
	withdraw, err := parseTolerance("tolerance_withdraw", c.ToleranceWithdraw)
	if err != nil {
		return model.Tolerances{}, err
	}
	return model.Tolerances{Default: def, Withdraw: withdraw}, nil
}

func parseTolerance(key, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", key, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%s: must not be negative", key)
	}
	return d, nil
}

// Storage returns the storage settings.
func (c *Config) Storage() storage.Config {
	return storage.Config{
		Path:     c.DatabasePath,
		ReadOnly: c.ReadOnly,
	}
}
