// Package config resolves the plainsight configuration from defaults,
// an optional YAML file, and environment overrides, in that order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config captures the resolved service configuration.
type Config struct {
	// APIAddr is the listen address for the detection API.
	APIAddr string `mapstructure:"api_addr"`

	// MetricsAddr is the listen address for the Prometheus endpoint; empty
	// disables it.
	MetricsAddr string `mapstructure:"metrics_addr"`

	// AuditLog is an optional file path audit events are appended to, in
	// addition to stdout.
	AuditLog string `mapstructure:"audit_log"`

	// DefaultTopN caps ranked responses when requests do not specify top_n.
	DefaultTopN int `mapstructure:"default_top_n"`

	// SolverTimeout bounds how long one request may spend searching.
	SolverTimeout time.Duration `mapstructure:"solver_timeout"`

	// VigenereMaxKeyLen bounds the Vigenère key lengths searched.
	VigenereMaxKeyLen int `mapstructure:"vigenere_max_key_len"`

	// SubstitutionMaxIters caps hill-climb scoring evaluations.
	SubstitutionMaxIters int `mapstructure:"substitution_max_iters"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		APIAddr:              "127.0.0.1:8089",
		MetricsAddr:          "",
		AuditLog:             "",
		DefaultTopN:          3,
		SolverTimeout:        10 * time.Second,
		VigenereMaxKeyLen:    12,
		SubstitutionMaxIters: 10000,
	}
}

// Load resolves the configuration. When path is non-empty only that file is
// read; otherwise plainsight.yml is looked up in the working directory and
// in ~/.plainsight. A missing file is not an error. Environment variables
// prefixed with PLAINSIGHT_ take precedence over file values.
func Load(path string) (Config, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("api_addr", defaults.APIAddr)
	v.SetDefault("metrics_addr", defaults.MetricsAddr)
	v.SetDefault("audit_log", defaults.AuditLog)
	v.SetDefault("default_top_n", defaults.DefaultTopN)
	v.SetDefault("solver_timeout", defaults.SolverTimeout)
	v.SetDefault("vigenere_max_key_len", defaults.VigenereMaxKeyLen)
	v.SetDefault("substitution_max_iters", defaults.SubstitutionMaxIters)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("plainsight")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.plainsight")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	v.SetEnvPrefix("PLAINSIGHT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the service cannot run with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.APIAddr) == "" {
		return errors.New("api_addr must be provided")
	}
	if c.DefaultTopN < 1 {
		return fmt.Errorf("default_top_n must be at least 1, got %d", c.DefaultTopN)
	}
	if c.SolverTimeout <= 0 {
		return fmt.Errorf("solver_timeout must be positive, got %s", c.SolverTimeout)
	}
	if c.VigenereMaxKeyLen < 1 {
		return fmt.Errorf("vigenere_max_key_len must be at least 1, got %d", c.VigenereMaxKeyLen)
	}
	if c.SubstitutionMaxIters < 1 {
		return fmt.Errorf("substitution_max_iters must be at least 1, got %d", c.SubstitutionMaxIters)
	}
	return nil
}
