package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-d", "postgres://db", "-a", "localhost"},
			allowedFlags: []string{"-d", "--dsn"},
			want:         []string{"-d", "postgres://db"},
		},
		{
			name:         "long flag with equals",
			args:         []string{"--dsn=postgres://db", "-a", "localhost"},
			allowedFlags: []string{"-d", "--dsn"},
			want:         []string{"--dsn=postgres://db"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-d", "--dsn"},
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept as-is",
			args:         []string{"-d"},
			allowedFlags: []string{"-d"},
			want:         []string{"-d"},
		},
		{
			name:         "do not treat next dash-starting token as value",
			args:         []string{"-d", "-s"},
			allowedFlags: []string{"-d"},
			want:         []string{"-d"},
		},
		{
			name:         "multiple allowed flags kept in order",
			args:         []string{"-a", "localhost:8080", "-s", "secret", "--other", "x"},
			allowedFlags: []string{"-a", "-s"},
			want:         []string{"-a", "localhost:8080", "-s", "secret"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-d"},
			want:         []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterArgs(tc.args, tc.allowedFlags)
			assert.Equal(t, tc.want, got)
		})
	}
}
