package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected *Config
	}{
		{
			name: "all flags set",
			args: []string{"cmd", "-a", "127.0.0.1:9090", "-d", "db", "-s", "secret", "-t", "90", "-k"},
			expected: &Config{
				EndpointAddr:  "127.0.0.1:9090",
				DatabaseDSN:   "db",
				SecretKey:     "secret",
				TokenTTL:      90 * time.Minute,
				SecureCookies: true,
			},
		},
		{
			name: "unknown flags ignored",
			args: []string{"cmd", "-d", "db", "-x", "ignored"},
			expected: &Config{
				DatabaseDSN: "db",
				TokenTTL:    0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origArgs := os.Args
			defer func() { os.Args = origArgs }()
			os.Args = tt.args

			config := &Config{}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Equal(t, tt.expected, config)
		})
	}
}
