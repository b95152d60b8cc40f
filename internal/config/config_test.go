package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setValidEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_URL", "https://scanresume.example.com")
	t.Setenv("GEMINI_API_KEY", "AIzaSyDummyKeyForTests1234567890abcdefgh")
	t.Setenv("API_TOKEN", strings.Repeat("t", 32))
	t.Setenv("APP_ENV", "test")
	t.Setenv("RESEND_API_KEY", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("RATE_LIMIT_REQUESTS", "")
	t.Setenv("RATE_LIMIT_WINDOW_MS", "")
	t.Setenv("PORT", "")
}

func TestLoadValidEnvironment(t *testing.T) {
	setValidEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://scanresume.example.com", cfg.Server.AppURL)
	assert.Equal(t, "test", cfg.Server.Env)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, 10, cfg.RateLimit.MaxRequests)
	assert.Equal(t, 60*time.Second, cfg.RateLimit.Window)
	assert.False(t, cfg.IsProduction())
}

func TestLoadRateLimitOverrides(t *testing.T) {
	setValidEnv(t)
	t.Setenv("RATE_LIMIT_REQUESTS", "25")
	t.Setenv("RATE_LIMIT_WINDOW_MS", "30000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.RateLimit.MaxRequests)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
}

func TestLoadEnumeratesEveryViolation(t *testing.T) {
	setValidEnv(t)
	t.Setenv("APP_URL", "not a url")
	t.Setenv("API_TOKEN", "short")
	t.Setenv("RATE_LIMIT_REQUESTS", "-3")
	t.Setenv("APP_ENV", "staging")

	_, err := Load()
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "environment validation failed")
	assert.Contains(t, msg, "APP_URL")
	assert.Contains(t, msg, "API_TOKEN")
	assert.Contains(t, msg, "RATE_LIMIT_REQUESTS")
	assert.Contains(t, msg, "APP_ENV")
}

func TestLoadMissingRequiredKeys(t *testing.T) {
	setValidEnv(t)
	t.Setenv("GEMINI_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestValidCredentialShape(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		service string
		want    bool
	}{
		{"gemini well formed", "AIza" + strings.Repeat("x", 35), "gemini", true},
		{"gemini wrong prefix", strings.Repeat("x", 40), "gemini", false},
		{"gemini too short", "AIzaShort", "gemini", false},
		{"resend well formed", "re_" + strings.Repeat("k", 20), "resend", true},
		{"resend wrong prefix", strings.Repeat("k", 24), "resend", false},
		{"unknown service length rule", strings.Repeat("a", 10), "other", true},
		{"unknown service too short", "abc", "other", false},
		{"empty key", "", "gemini", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidCredentialShape(tt.key, tt.service))
		})
	}
}
