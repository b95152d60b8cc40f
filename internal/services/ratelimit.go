package services

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter bounds request volume per client using a fixed window counter
// in Redis. When Redis is absent or unreachable every check fails open:
// availability is preferred over strict enforcement.
type RateLimiter interface {
	IsRateLimited(ctx context.Context, clientID string) bool
	RemainingRequests(ctx context.Context, clientID string) int
	// Connected reports whether the backing store answers, so operators can
	// tell "no abuse" apart from "rate limiting silently disabled".
	Connected(ctx context.Context) bool
	Limit() int
}

type rateLimiter struct {
	client      *redis.Client
	maxRequests int
	window      time.Duration
}

// NewRateLimiter connects to redisURL. An empty or malformed URL yields a
// disabled limiter rather than an error.
func NewRateLimiter(redisURL string, maxRequests int, window time.Duration) RateLimiter {
	rl := &rateLimiter{maxRequests: maxRequests, window: window}

	if redisURL == "" {
		log.Println("⚠️  REDIS_URL not set, rate limiting disabled")
		return rl
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("⚠️  Invalid REDIS_URL, rate limiting disabled: %v\n", err)
		return rl
	}
	opts.DialTimeout = time.Second
	opts.MaxRetries = 1

	rl.client = redis.NewClient(opts)
	return rl
}

// NewRateLimiterWithClient wires an existing Redis client. Used by tests and
// by callers that manage the connection themselves.
func NewRateLimiterWithClient(client *redis.Client, maxRequests int, window time.Duration) RateLimiter {
	return &rateLimiter{client: client, maxRequests: maxRequests, window: window}
}

func rateLimitKey(clientID string) string {
	return "rate-limit:" + clientID
}

// IsRateLimited implements RateLimiter.
//
// Window state machine per client: first request creates the counter with the
// window TTL; requests under the limit increment it; at or over the limit the
// request is denied without incrementing; TTL expiry resets the client. The
// check-then-increment is not atomic; concurrent requests may over-admit
// slightly within one window.
func (rl *rateLimiter) IsRateLimited(ctx context.Context, clientID string) bool {
	if rl.client == nil {
		return false
	}

	key := rateLimitKey(clientID)

	count, err := rl.client.Get(ctx, key).Result()
	if err == redis.Nil {
		// First request in the window.
		if err := rl.client.Set(ctx, key, 1, rl.window).Err(); err != nil {
			log.Printf("⚠️  Rate limiter error: %v\n", err)
		}
		return false
	}
	if err != nil {
		// Fail open: allow the request if the store misbehaves.
		log.Printf("⚠️  Rate limiter error: %v\n", err)
		return false
	}

	current, err := strconv.Atoi(count)
	if err != nil {
		log.Printf("⚠️  Rate limiter error: corrupt counter %q\n", count)
		return false
	}

	if current >= rl.maxRequests {
		return true
	}

	if err := rl.client.Incr(ctx, key).Err(); err != nil {
		log.Printf("⚠️  Rate limiter error: %v\n", err)
	}
	return false
}

// RemainingRequests implements RateLimiter. Returns the configured max when
// the store is unavailable, otherwise max minus the current count floored at
// zero.
func (rl *rateLimiter) RemainingRequests(ctx context.Context, clientID string) int {
	if rl.client == nil {
		return rl.maxRequests
	}

	count, err := rl.client.Get(ctx, rateLimitKey(clientID)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("⚠️  Rate limiter error: %v\n", err)
		}
		return rl.maxRequests
	}

	current, err := strconv.Atoi(count)
	if err != nil {
		return rl.maxRequests
	}
	if remaining := rl.maxRequests - current; remaining > 0 {
		return remaining
	}
	return 0
}

// Connected implements RateLimiter.
func (rl *rateLimiter) Connected(ctx context.Context) bool {
	if rl.client == nil {
		return false
	}
	return rl.client.Ping(ctx).Err() == nil
}

// Limit implements RateLimiter.
func (rl *rateLimiter) Limit() int {
	return rl.maxRequests
}

// ClientID derives the rate-limit identity from proxy headers. Distinct
// clients behind the same proxy may collide under "unknown".
func ClientID(forwardedFor, realIP string) string {
	if forwardedFor != "" {
		return forwardedFor
	}
	if realIP != "" {
		return realIP
	}
	return "unknown"
}
