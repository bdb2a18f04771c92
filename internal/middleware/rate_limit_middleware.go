package middleware

import (
	"net/http"
	"sync"
	"time"

	"go-pet-storefront/internal/pkg/apperror"
	"go-pet-storefront/internal/pkg/response"
	"go-pet-storefront/internal/session"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var ErrTooManyRequests = apperror.New(
	apperror.CodeTooManyRequests,
	"Too many requests, slow down",
	http.StatusTooManyRequests,
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type userLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	rps       rate.Limit
	burst     int
	idle      time.Duration
	lastSweep time.Time
}

func (l *userLimiter) get(key string, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	// at most one sweep per idle window
	if now.Sub(l.lastSweep) >= l.idle {
		for k, v := range l.visitors {
			if now.Sub(v.lastSeen) > l.idle {
				delete(l.visitors, k)
			}
		}
		l.lastSweep = now
	}

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter
}

func newUserLimiter(rps rate.Limit, burst int, idle time.Duration, now time.Time) *userLimiter {
	return &userLimiter{
		visitors:  make(map[string]*visitor),
		rps:       rps,
		burst:     burst,
		idle:      idle,
		lastSweep: now,
	}
}

// RateLimitByUser limits requests per session (falling back to client IP).
// Must run after RequireSession to key by session.
func RateLimitByUser(rps float64, burst int) gin.HandlerFunc {
	l := newUserLimiter(rate.Limit(rps), burst, 10*time.Minute, time.Now())

	return func(c *gin.Context) {
		key := c.ClientIP()
		if sess, ok := session.FromContext(c); ok {
			key = sess.ID
		}

		if !l.get(key, time.Now()).Allow() {
			response.FromError(c, ErrTooManyRequests)
			c.Abort()
			return
		}
		c.Next()
	}
}
