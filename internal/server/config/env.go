package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config fields from environment variables.
//
// Recognized variables:
//
//	ADDRESS         HTTP bind address (e.g. ":4000")
//	DATABASE_DSN    PostgreSQL DSN
//	JWT_SECRET      HMAC secret for session tokens
//	TOKEN_TTL       token lifetime, Go duration syntax (e.g. "1h")
//	SECURE_COOKIES  "true" to mark the session cookie Secure
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("JWT_SECRET"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("TOKEN_TTL"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenTTL = d
		}
	}
	if v, ok := os.LookupEnv("SECURE_COOKIES"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			config.SecureCookies = b
		}
	}
}
