package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/BruksfildServices01/sorriso-perfeito/internal/httperr"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/i18n"
)

// limiterIdleTTL is how long a client IP may stay silent before its
// bucket is dropped. A full bucket refills well within it.
const limiterIdleTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	every     rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
	log       *logrus.Logger
}

// NewRateLimiter allows perMinute requests per IP, with bursts of the same size.
func NewRateLimiter(perMinute int, log *logrus.Logger) *RateLimiter {
	if perMinute <= 0 {
		perMinute = 30
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &RateLimiter{
		visitors:  make(map[string]*visitor),
		every:     rate.Every(time.Minute / time.Duration(perMinute)),
		burst:     perMinute,
		idleTTL:   limiterIdleTTL,
		lastSweep: time.Now(),
		now:       time.Now,
		log:       log,
	}
}

func (r *RateLimiter) getLimiter(ip string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if now.Sub(r.lastSweep) >= r.idleTTL {
		r.sweep(now)
	}

	v, exists := r.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(r.every, r.burst)}
		r.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

// sweep drops idle visitors. Callers hold r.mu.
func (r *RateLimiter) sweep(now time.Time) {
	for ip, v := range r.visitors {
		if now.Sub(v.lastSeen) >= r.idleTTL {
			delete(r.visitors, ip)
		}
	}
	r.lastSweep = now
}

func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !r.getLimiter(ip).Allow() {
			r.log.WithFields(logrus.Fields{"ip": ip, "path": c.FullPath()}).Warn("rate limit exceeded")
			httperr.TooManyRequests(c, "rate_limited", Localizer(c).T(i18n.KeyErrRateLimited))
			return
		}
		c.Next()
	}
}
