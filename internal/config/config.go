// Package config handles loading and validating the application
// configuration from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	score "github.com/greenverse/greenscore/pkg/scorer"
)

// Config is the top-level application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Catalog CatalogConfig `yaml:"catalog"`
	Scoring ScoringConfig `yaml:"scoring"`
	Prefs   PrefsConfig   `yaml:"prefs"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// CatalogConfig defines where the alternatives catalog comes from and how
// often it is refreshed.
type CatalogConfig struct {
	// Path to a local catalog JSON file. Used when URL is empty.
	Path string `yaml:"path"`
	// URL of a remote catalog snapshot. Takes precedence over Path.
	URL             string        `yaml:"url"`
	RefreshInterval time.Duration `yaml:"refresh_interval"`
	FetchPerSecond  float64       `yaml:"fetch_per_second"`
	FetchBurst      int           `yaml:"fetch_burst"`
}

// ScoringConfig selects the scoring policy and optional correction clamp.
type ScoringConfig struct {
	// Policy names a predefined weight set: default, flat, environmental.
	Policy string `yaml:"policy"`
	// CorrectionCap, when positive, clamps the carbon correction
	// multiplier to ±cap regardless of the policy's own setting.
	CorrectionCap float64 `yaml:"correction_cap"`
}

// PrefsConfig carries the recognized user preference defaults. These are a
// declared configuration surface for the extension layer; the scoring
// pipeline does not consume the weights.
type PrefsConfig struct {
	StrictOrganic bool    `yaml:"strict_organic"`
	OrganicWeight float64 `yaml:"organic_weight"`
	PriceWeight   float64 `yaml:"price_weight"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Policy resolves the configured scoring policy, applying the optional
// correction cap override.
func (c *Config) Policy() (score.Policy, error) {
	p, err := score.PolicyByName(c.Scoring.Policy)
	if err != nil {
		return score.Policy{}, err
	}
	if c.Scoring.CorrectionCap > 0 {
		p.CapCorrection = true
		p.CorrectionCap = c.Scoring.CorrectionCap
	}
	return p, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyCatalogDefaults(&cfg.Catalog)
	applyScoringDefaults(&cfg.Scoring)
	applyPrefsDefaults(&cfg.Prefs)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyCatalogDefaults(c *CatalogConfig) {
	if c.Path == "" {
		c.Path = "data/alternatives.json"
	}
	if c.RefreshInterval == 0 {
		c.RefreshInterval = 6 * time.Hour
	}
	if c.FetchPerSecond == 0 {
		c.FetchPerSecond = 1.0
	}
	if c.FetchBurst == 0 {
		c.FetchBurst = 1
	}
}

func applyScoringDefaults(s *ScoringConfig) {
	if s.Policy == "" {
		s.Policy = "default"
	}
}

func applyPrefsDefaults(p *PrefsConfig) {
	if p.OrganicWeight == 0 {
		p.OrganicWeight = 0.7
	}
	if p.PriceWeight == 0 {
		p.PriceWeight = 0.3
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if _, err := score.PolicyByName(cfg.Scoring.Policy); err != nil {
		errs = append(errs, err)
	}

	if cfg.Scoring.CorrectionCap < 0 {
		errs = append(errs, fmt.Errorf("scoring.correction_cap must not be negative"))
	}

	if cfg.Prefs.OrganicWeight < 0 || cfg.Prefs.OrganicWeight > 1 {
		errs = append(errs, fmt.Errorf("prefs.organic_weight must be in [0,1]"))
	}

	if cfg.Catalog.FetchPerSecond < 0 {
		errs = append(errs, fmt.Errorf("catalog.fetch_per_second must not be negative"))
	}

	return errors.Join(errs...)
}
