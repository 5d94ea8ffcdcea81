// Package config handles configuration for the server, layering defaults,
// environment variables, and command-line flags.
package config

import (
	"errors"
	"time"
)

// DefaultTokenTTL is the session token lifetime used unless overridden.
const DefaultTokenTTL = time.Hour

// Config holds runtime settings for the Daybook server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx).
//   - SecretKey: HMAC secret for signing session tokens (HS256).
//   - TokenTTL: session token lifetime.
//   - SecureCookies: mark the session cookie Secure (set in production).
type Config struct {
	EndpointAddr  string
	DatabaseDSN   string
	SecretKey     string
	TokenTTL      time.Duration
	SecureCookies bool
}

// LoadDefaults populates Config with development defaults. DatabaseDSN and
// SecretKey have no defaults on purpose: both must be supplied explicitly.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":4000"
	c.TokenTTL = DefaultTokenTTL
	c.SecureCookies = false
}

// Validate reports whether the configuration is complete enough to start.
// A missing DSN or signing secret is fatal at startup, never a per-request
// condition.
func (c *Config) Validate() error {
	if c.DatabaseDSN == "" {
		return errors.New("config: database DSN is not set (DATABASE_DSN)")
	}
	if c.SecretKey == "" {
		return errors.New("config: token signing secret is not set (JWT_SECRET)")
	}
	if c.TokenTTL <= 0 {
		return errors.New("config: token TTL must be positive")
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from environment variables and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
