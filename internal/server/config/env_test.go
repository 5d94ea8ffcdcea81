package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseEnv_OverlaysValues(t *testing.T) {
	t.Setenv("ADDRESS", "127.0.0.1:9090")
	t.Setenv("DATABASE_DSN", "postgres://localhost/daybook")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("SECURE_COOKIES", "true")

	c := &Config{}
	c.LoadDefaults()
	parseEnv(c)

	assert.Equal(t, "127.0.0.1:9090", c.EndpointAddr)
	assert.Equal(t, "postgres://localhost/daybook", c.DatabaseDSN)
	assert.Equal(t, "env-secret", c.SecretKey)
	assert.Equal(t, 30*time.Minute, c.TokenTTL)
	assert.True(t, c.SecureCookies)
}

func TestParseEnv_InvalidValuesKeepDefaults(t *testing.T) {
	t.Setenv("TOKEN_TTL", "not-a-duration")
	t.Setenv("SECURE_COOKIES", "not-a-bool")

	c := &Config{}
	c.LoadDefaults()
	parseEnv(c)

	assert.Equal(t, time.Hour, c.TokenTTL)
	assert.False(t, c.SecureCookies)
}
