package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Gemini    GeminiConfig
	Auth      AuthConfig
	Mail      MailConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port   string
	Env    string
	AppURL string
}

type GeminiConfig struct {
	APIKey string
}

type AuthConfig struct {
	// APIToken is the inbound bearer token compared byte-for-byte on the
	// analyze route.
	APIToken string
}

type MailConfig struct {
	// APIKey is optional; when empty the feedback endpoint answers 503
	// instead of attempting to send.
	APIKey string
	From   string
	To     string
}

type RedisConfig struct {
	// URL is optional; when empty rate limiting is disabled (fail-open).
	URL string
}

type RateLimitConfig struct {
	MaxRequests int
	Window      time.Duration
}

const (
	defaultRateLimitRequests = 10
	defaultRateLimitWindow   = 60_000 * time.Millisecond

	minGeminiKeyLen = 10
	minAPITokenLen  = 20
)

// Load reads and validates the process environment once at startup. On
// failure the error enumerates every violated variable, not just the first,
// so an operator can fix all problems in one pass.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using process environment.")
	}

	var violations []string
	invalid := func(key, msg string) {
		violations = append(violations, fmt.Sprintf("%s: %s", key, msg))
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:   getEnv("PORT", "3000"),
			Env:    getEnv("APP_ENV", "development"),
			AppURL: os.Getenv("APP_URL"),
		},
		Gemini: GeminiConfig{
			APIKey: os.Getenv("GEMINI_API_KEY"),
		},
		Auth: AuthConfig{
			APIToken: os.Getenv("API_TOKEN"),
		},
		Mail: MailConfig{
			APIKey: os.Getenv("RESEND_API_KEY"),
			From:   getEnv("FEEDBACK_MAIL_FROM", "Scanresume Feedback <noreply@scanresume.com>"),
			To:     getEnv("FEEDBACK_MAIL_TO", "feedback@scanresume.com"),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		RateLimit: RateLimitConfig{
			MaxRequests: defaultRateLimitRequests,
			Window:      defaultRateLimitWindow,
		},
	}

	if u, err := url.Parse(cfg.Server.AppURL); err != nil || u.Scheme == "" || u.Host == "" {
		invalid("APP_URL", "must be a valid absolute URL")
	}
	if len(cfg.Gemini.APIKey) < minGeminiKeyLen {
		invalid("GEMINI_API_KEY", "is required")
	}
	if len(cfg.Auth.APIToken) < minAPITokenLen {
		invalid("API_TOKEN", fmt.Sprintf("must be at least %d characters", minAPITokenLen))
	}
	switch cfg.Server.Env {
	case "development", "production", "test":
	default:
		invalid("APP_ENV", "must be one of development, production, test")
	}

	// Rate limit knobs are optional; when unset the defaults (10 requests
	// per 60s window) apply, but a set-and-broken value is a configuration
	// error.
	if raw := os.Getenv("RATE_LIMIT_REQUESTS"); raw != "" {
		if n, err := strconv.Atoi(raw); err != nil || n <= 0 {
			invalid("RATE_LIMIT_REQUESTS", "must be a positive number")
		} else {
			cfg.RateLimit.MaxRequests = n
		}
	}
	if raw := os.Getenv("RATE_LIMIT_WINDOW_MS"); raw != "" {
		if ms, err := strconv.Atoi(raw); err != nil || ms <= 0 {
			invalid("RATE_LIMIT_WINDOW_MS", "must be a positive number")
		} else {
			cfg.RateLimit.Window = time.Duration(ms) * time.Millisecond
		}
	}

	if len(violations) > 0 {
		return nil, fmt.Errorf("environment validation failed:\n%s", strings.Join(violations, "\n"))
	}

	return cfg, nil
}

// IsDevelopment reports whether the process runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction reports whether the process runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// ValidCredentialShape checks a credential against the issuing service's
// prefix/length convention. Defense-in-depth only; it never gates requests.
func ValidCredentialShape(key, service string) bool {
	if key == "" {
		return false
	}
	switch service {
	case "gemini":
		return strings.HasPrefix(key, "AIza") && len(key) >= 39
	case "resend":
		return strings.HasPrefix(key, "re_") && len(key) >= 20
	default:
		return len(key) >= 10
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
