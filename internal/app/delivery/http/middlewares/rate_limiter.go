package middlewares

import (
	"net"
	"net/http"
	"senehorario-service/internal/pkg/constvars"
	"senehorario-service/internal/pkg/exceptions"
	"senehorario-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter throttles one expensive endpoint per client IP. A client that
// exhausts its allowance is blocked outright for blockTime; allowance refills
// evenly across the window, so requests spaced out over a minute never hit
// the block.
type RateLimiter struct {
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	log       *zap.Logger
	requests  int
	per       time.Duration
	blockTime time.Duration
}

func NewRateLimiter(log *zap.Logger, requests int, per, blockTime time.Duration) *RateLimiter {
	return &RateLimiter{
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		log:       log,
		requests:  requests,
		per:       per,
		blockTime: blockTime,
	}
}

// GenerateRateLimit builds the per-IP limiter for the schedule-generation
// endpoint from the configured allowance and block time.
func (m *Middlewares) GenerateRateLimit() func(http.Handler) http.Handler {
	limiter := NewRateLimiter(
		m.Log,
		m.InternalConfig.App.GenerateMaxRequestsPerMinute,
		time.Minute,
		time.Duration(m.InternalConfig.App.GenerateBlockTimeInMinutes)*time.Minute,
	)
	return limiter.Limit
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			// RemoteAddr without a port, seen behind some proxies.
			ip = req.RemoteAddr
		}

		r.mu.Lock()

		if blockedUntil, found := r.blocked[ip]; found {
			if time.Now().Before(blockedUntil) {
				r.mu.Unlock()

				utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyGenerateRequests(nil))
				return
			}

			delete(r.blocked, ip)
		}

		limiter, exists := r.limiters[ip]
		if !exists {
			limiter = rate.NewLimiter(rate.Every(r.per/time.Duration(r.requests)), r.requests)
			r.limiters[ip] = limiter
		}

		r.mu.Unlock()

		if !limiter.Allow() {
			r.mu.Lock()
			defer r.mu.Unlock()

			r.blocked[ip] = time.Now().Add(r.blockTime)
			r.log.Warn("client exceeded schedule generation allowance, blocking",
				zap.String(constvars.LoggingClientIPKey, ip),
				zap.Duration("block_time", r.blockTime),
			)
			utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyGenerateRequests(nil))
			return
		}

		next.ServeHTTP(w, req)
	})
}
