// Package config loads process-level settings for the xuav binaries.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"github.com/CannonJunior/x-uav/internal/logger"
)

// Config holds settings shared by the CLI, the dev proxy and the MCP server.
// Environment variables are parsed from the XUAV_ prefix; backend client
// settings live in client.Config under XUAV_API_.
type Config struct {
	LogLevel  string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat logger.Format `envconfig:"LOG_FORMAT" default:"console"`

	// Dev proxy
	ProxyListen    string `envconfig:"PROXY_LISTEN" default:":7676"`
	ProxyTarget    string `envconfig:"PROXY_TARGET" default:"http://localhost:8877"`
	ProxyPrefix    string `envconfig:"PROXY_PREFIX" default:"/api"`
	ProxyStaticDir string `envconfig:"PROXY_STATIC_DIR" default:""`

	// MCP server
	MCPServerName    string `envconfig:"MCP_SERVER_NAME" default:"xuav-mcp-server"`
	MCPServerVersion string `envconfig:"MCP_SERVER_VERSION" default:"0.1.0"`
	MCPHTTPAddr      string `envconfig:"MCP_HTTP_ADDR" default:":7677"`

	// HTTP servers
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	HTTPReadTimeout time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"5s"`
	HTTPIdleTimeout time.Duration `envconfig:"HTTP_IDLE_TIMEOUT" default:"120s"`
}

// New creates a Config by parsing environment variables.
// Example: XUAV_PROXY_LISTEN=:9000 XUAV_LOG_FORMAT=json
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("XUAV", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("log_level", cfg.LogLevel).
		Str("log_format", string(cfg.LogFormat)).
		Str("proxy_listen", cfg.ProxyListen).
		Str("proxy_target", cfg.ProxyTarget).
		Str("proxy_prefix", cfg.ProxyPrefix).
		Str("mcp_http_addr", cfg.MCPHTTPAddr).
		Msg("Configuration loaded")

	return &cfg, nil
}

// ResolveDefaults validates the loaded values and normalizes the proxy prefix.
func (c *Config) ResolveDefaults() error {
	switch c.LogFormat {
	case logger.FormatJSON, logger.FormatConsole:
	case "":
		c.LogFormat = logger.FormatConsole
	default:
		return fmt.Errorf("unsupported LOG_FORMAT: %s", c.LogFormat)
	}

	u, err := url.Parse(c.ProxyTarget)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid PROXY_TARGET: %q", c.ProxyTarget)
	}

	c.ProxyPrefix = "/" + strings.Trim(c.ProxyPrefix, "/")
	if c.ProxyPrefix == "/" {
		return fmt.Errorf("PROXY_PREFIX must not be the root path")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be > 0")
	}
	return nil
}

// NewForTesting returns a config with defaults suitable for tests.
func NewForTesting() *Config {
	return &Config{
		LogLevel:         "debug",
		LogFormat:        logger.FormatConsole,
		ProxyListen:      "127.0.0.1:0",
		ProxyTarget:      "http://localhost:8877",
		ProxyPrefix:      "/api",
		MCPServerName:    "xuav-mcp-test",
		MCPServerVersion: "0.0.0",
		MCPHTTPAddr:      "127.0.0.1:0",
		ShutdownTimeout:  time.Second,
		HTTPReadTimeout:  time.Second,
		HTTPIdleTimeout:  time.Second,
	}
}
