package mw

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/MrSnakeDoc/soccerfront/internal/relay"
	"github.com/MrSnakeDoc/soccerfront/internal/utils"
)

const msgTooManyRequests = "⚠️ 요청이 너무 많습니다. 잠시 후 다시 시도해주세요."

// RateLimitConfig sets a per-client token bucket.
type RateLimitConfig struct {
	Burst      int           // bucket capacity
	PerMinute  int           // tokens refilled per minute
	MaxEntries int           // forces a sweep when this many clients are tracked, 0 = no cap
	IdleTTL    time.Duration // clients idle this long are forgotten
	TrustProxy bool          // key on the forwarded client IP
	Now        func() time.Time
}

type tokens struct {
	level    float64
	refilled time.Time
}

type ipLimiter struct {
	cfg       RateLimitConfig
	perSecond float64

	mu        sync.Mutex
	clients   map[string]*tokens
	lastSweep time.Time
}

func newIPLimiter(cfg RateLimitConfig) *ipLimiter {
	cfg.Burst = max(cfg.Burst, 1)
	cfg.PerMinute = max(cfg.PerMinute, 1)
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = 15 * time.Minute
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &ipLimiter{
		cfg:       cfg,
		perSecond: float64(cfg.PerMinute) / 60,
		clients:   make(map[string]*tokens),
		lastSweep: cfg.Now(),
	}
}

// take consumes one token for key. When empty it reports how many seconds
// until the next token.
func (l *ipLimiter) take(key string) (ok bool, remaining, retryAfter int) {
	now := l.cfg.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) >= l.cfg.IdleTTL ||
		(l.cfg.MaxEntries > 0 && len(l.clients) >= l.cfg.MaxEntries) {
		l.sweep(now)
	}

	t, found := l.clients[key]
	if !found {
		t = &tokens{level: float64(l.cfg.Burst), refilled: now}
		l.clients[key] = t
	}

	if elapsed := now.Sub(t.refilled).Seconds(); elapsed > 0 {
		t.level = min(float64(l.cfg.Burst), t.level+elapsed*l.perSecond)
		t.refilled = now
	}

	if t.level < 1 {
		wait := int(math.Ceil((1 - t.level) / l.perSecond))
		return false, 0, max(wait, 1)
	}
	t.level--
	return true, int(t.level), 0
}

func (l *ipLimiter) sweep(now time.Time) {
	for key, t := range l.clients {
		if now.Sub(t.refilled) > l.cfg.IdleTTL {
			delete(l.clients, key)
		}
	}
	l.lastSweep = now
}

// RateLimit rejects clients that exceed their bucket with 429 and a
// Retry-After header.
func RateLimit(cfg RateLimitConfig) func(http.Handler) http.Handler {
	l := newIPLimiter(cfg)
	limit := strconv.Itoa(l.cfg.Burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ok, remaining, retry := l.take(utils.ClientIP(r, l.cfg.TrustProxy))

			w.Header().Set("X-RateLimit-Limit", limit)
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			if !ok {
				w.Header().Set("Retry-After", strconv.Itoa(retry))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(relay.Envelope{Code: http.StatusTooManyRequests, Message: msgTooManyRequests})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
