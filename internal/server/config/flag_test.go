package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{
				"-a", "127.0.0.1:9090", "-d", "db", "-s", "secret", "-t", "15",
				"-k", "redis", "-r", "cache:6379", "-g", "SG.key", "-f", "mail@example.com",
				"-m", ":9100", "-l", "debug",
			},
			expected: &Config{
				EndpointAddrGRPC: "127.0.0.1:9090",
				DatabaseDSN:      "db",
				SecretKey:        "secret",
				TokenExpireTime:  "15",
				CodeStore:        "redis",
				RedisAddr:        "cache:6379",
				SendGridAPIKey:   "SG.key",
				MailFrom:         "mail@example.com",
				MetricsAddr:      ":9100",
				LogLevel:         "debug",
			},
		},
		{
			name:     "foreign flags are ignored",
			args:     []string{"-c", "conf.json", "-env", "x.env", "-s", "k"},
			expected: &Config{SecretKey: "k"},
		},
		{
			name:        "flag without value panics",
			args:        []string{"-s"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config, tt.args) })
				return
			}

			require.NotPanics(t, func() { parseFlags(config, tt.args) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
