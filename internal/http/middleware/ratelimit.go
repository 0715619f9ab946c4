// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements request rate limiting. Two backends satisfy the same
// Allower contract:
//
//   - RateLimiter: an in-memory, per-client token bucket built on
//     golang.org/x/time/rate with opportunistic garbage collection. It suits a
//     single replica.
//   - ratelimit.FixedWindowLimiter: a Redis fixed window shared by every
//     replica (see internal/ratelimit).
//
// The limiter is edge-level cost protection for the provider; it is not an
// authorization mechanism.
package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Allower decides whether the request identified by key may proceed.
type Allower interface {
	Allow(ctx context.Context, key string) bool
}

// retryAfterer is optionally implemented by an Allower that knows when the
// quota resets.
type retryAfterer interface {
	RetryAfter() int
}

// keyFunc selects the identity used to key a rate-limit bucket.
type keyFunc func(*gin.Context) string

// KeyByClientIP keys buckets by client address ("ip:203.0.113.7").
func KeyByClientIP() keyFunc {
	return func(c *gin.Context) string {
		return "ip:" + c.ClientIP()
	}
}

// visitor holds a single rate limiter and the last time it was seen.
// Used to opportunistically evict idle buckets.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter implements a per-key token-bucket rate limiter.
//
// Buckets are created on demand and stored in an internal map guarded by a
// mutex. Idle buckets are evicted after a TTL via opportunistic cleanup during
// lookups to keep memory usage bounded.
//
// This type is safe for concurrent use.
type RateLimiter struct {
	rps      rate.Limit
	burst    int
	mu       sync.Mutex
	visitors map[string]*visitor

	ttl      time.Duration
	cleanupN uint64
}

// NewRateLimiter constructs a RateLimiter with the given tokens-per-second
// and burst size. Bucket identity comes from the keyFunc passed to RateLimit.
//
//   - rps:   tokens replenished per second (0 allows only the burst; use >0).
//   - burst: maximum burst size; values <= 0 are coerced to 1.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		rps:      rate.Limit(rps),
		burst:    burst,
		visitors: make(map[string]*visitor),
		ttl:      10 * time.Minute, // evict idle entries after TTL
	}
}

// getVisitor returns (and updates) the limiter for key, creating it if absent.
// It also performs opportunistic GC of idle entries after ~5000 lookups.
//
// GC runs before the requested visitor is touched so an old bucket can be
// evicted even when it is the one being fetched.
func (rl *RateLimiter) getVisitor(key string) *rate.Limiter {
	now := time.Now()

	rl.mu.Lock()
	rl.cleanupN++
	if rl.cleanupN >= 5000 {
		for k, vv := range rl.visitors {
			if now.Sub(vv.lastSeen) >= rl.ttl {
				delete(rl.visitors, k)
			}
		}
		rl.cleanupN = 0
	}

	if v, ok := rl.visitors[key]; ok {
		v.lastSeen = now
		lim := v.limiter
		rl.mu.Unlock()
		return lim
	}

	lim := rate.NewLimiter(rl.rps, rl.burst)
	rl.visitors[key] = &visitor{limiter: lim, lastSeen: now}
	rl.mu.Unlock()
	return lim
}

// Allow implements Allower.
func (rl *RateLimiter) Allow(_ context.Context, key string) bool {
	return rl.getVisitor(key).Allow()
}

// RateLimit returns a Gin middleware that consults a for every request.
//
// Denied requests get:
//
//	HTTP/1.1 429 Too Many Requests
//	Retry-After: <seconds>
//	{
//	  "request_id": "<uuid>",
//	  "code":       "rate_limited",
//	  "error":      "rate limit exceeded"
//	}
func RateLimit(a Allower, keyFn keyFunc) gin.HandlerFunc {
	if keyFn == nil {
		keyFn = KeyByClientIP()
	}
	return func(c *gin.Context) {
		if a.Allow(c.Request.Context(), keyFn(c)) {
			c.Next()
			return
		}

		retry := 1
		if ra, ok := a.(retryAfterer); ok {
			retry = ra.RetryAfter()
		}
		c.Header("Retry-After", strconv.Itoa(retry))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"request_id": c.Writer.Header().Get(requestIDHeader),
			"code":       "rate_limited",
			"error":      "rate limit exceeded",
		})
	}
}
