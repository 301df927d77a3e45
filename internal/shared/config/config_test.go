package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, "prod", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiration)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "8081")
	t.Setenv("JWT_EXPIRATION", "15m")
	t.Setenv("ENVIRONMENT", "dev")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, 15*time.Minute, cfg.JWTExpiration)
	assert.False(t, cfg.IsEnvProd())
}

func TestNewConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := NewConfig()
	assert.Error(t, err)
}

func TestIsEnvProd(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want bool
	}{
		{"prod with DSN", Config{Environment: "prod", SentryDSN: "https://key@sentry.example/1"}, true},
		{"prod without DSN", Config{Environment: "prod"}, false},
		{"dev with DSN", Config{Environment: "dev", SentryDSN: "https://key@sentry.example/1"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.IsEnvProd())
		})
	}
}
