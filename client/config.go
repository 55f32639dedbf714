package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Contract selects which backend API shape a client speaks.
type Contract string

const (
	// ContractLegacy is the /api contract used by the web frontend.
	ContractLegacy Contract = "legacy"
	// ContractV1 is the versioned /api/v1 catalog contract.
	ContractV1 Contract = "v1"
)

// ParseContract accepts "legacy" (or "a") and "v1" (or "b"), case-insensitive.
func ParseContract(s string) (Contract, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "legacy", "a":
		return ContractLegacy, nil
	case "v1", "b":
		return ContractV1, nil
	}
	return "", fmt.Errorf("unsupported contract %q (want legacy or v1)", s)
}

// DefaultBaseURL returns the local development base URL for the contract.
func (c Contract) DefaultBaseURL() string {
	if c == ContractV1 {
		return "http://localhost:8877"
	}
	return "http://localhost:8877/api"
}

// Config holds client settings.
// Environment variables are parsed from the XUAV_API_ prefix.
type Config struct {
	BaseURL       string        `envconfig:"BASE_URL" default:""`
	Contract      Contract      `envconfig:"CONTRACT" default:"legacy"`
	Timeout       time.Duration `envconfig:"TIMEOUT" default:"30s"`
	RetryAttempts int           `envconfig:"RETRY_ATTEMPTS" default:"1"`
	Debug         bool          `envconfig:"DEBUG" default:"false"`
}

// LoadConfig reads Config from the environment and resolves defaults.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("XUAV_API", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.ResolveDefaults(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ResolveDefaults normalizes the contract and derives BaseURL from it when unset.
func (c *Config) ResolveDefaults() error {
	contract, err := ParseContract(string(c.Contract))
	if err != nil {
		return err
	}
	c.Contract = contract
	if strings.TrimSpace(c.BaseURL) == "" {
		c.BaseURL = contract.DefaultBaseURL()
	}
	if c.Timeout == 0 {
		c.Timeout = 30 * time.Second
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be > 0, got %s", c.Timeout)
	}
	if c.RetryAttempts < 1 {
		c.RetryAttempts = 1
	}
	return nil
}

// Options converts the config into construction options. Extra options are
// applied after the config-derived ones.
func (c Config) Options(extra ...Option) []Option {
	opts := []Option{
		WithHTTPTimeout(c.Timeout),
		WithRetry(c.RetryAttempts),
		WithDebugLogging(c.Debug),
	}
	return append(opts, extra...)
}

// NewFromConfig builds a legacy Client from cfg.
func NewFromConfig(cfg Config, extra ...Option) (*Client, error) {
	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}
	return New(cfg.BaseURL, cfg.Options(extra...)...)
}

// NewV1FromConfig builds a V1Client from cfg.
func NewV1FromConfig(cfg Config, extra ...Option) (*V1Client, error) {
	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}
	return NewV1(cfg.BaseURL, cfg.Options(extra...)...)
}
