package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	cachecontrol "go.eigsys.de/gin-cachecontrol/v2"
	"golang.org/x/time/rate"
)

const (
	headerRequestID = "X-Request-Id"

	limiterIdleTTL = 10 * time.Minute
)

type ctxKey string

const requestIDKey ctxKey = "request_id"

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiter keeps one token bucket per client IP.
// Buckets idle for longer than idleTTL are dropped on the next sweep.
type rateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*clientLimiter
	rps       int
	burst     int
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func newRateLimiter(rps, burst int) *rateLimiter {
	if rps <= 0 {
		rps = 1
	}
	if burst <= 0 {
		burst = 1
	}

	return &rateLimiter{
		limiters: make(map[string]*clientLimiter),
		rps:      rps,
		burst:    burst,
		idleTTL:  limiterIdleTTL,
		now:      time.Now,
	}
}

func (that *rateLimiter) get(key string) *rate.Limiter {
	that.mu.Lock()
	defer that.mu.Unlock()

	now := that.now()
	that.sweep(now)

	if client, ok := that.limiters[key]; ok {
		client.lastSeen = now
		return client.limiter
	}

	lim := rate.NewLimiter(rate.Every(time.Second/time.Duration(that.rps)), that.burst)
	that.limiters[key] = &clientLimiter{limiter: lim, lastSeen: now}

	return lim
}

// sweep drops idle buckets, at most once per idleTTL. Callers hold mu.
func (that *rateLimiter) sweep(now time.Time) {
	if now.Sub(that.lastSweep) < that.idleTTL {
		return
	}
	that.lastSweep = now

	for key, client := range that.limiters {
		if now.Sub(client.lastSeen) >= that.idleTTL {
			delete(that.limiters, key)
		}
	}
}

func (that *rateLimiter) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !that.get(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}

// requestIDMiddleware - reuses the caller's X-Request-Id or creates one.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(headerRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		ctx := context.WithValue(c.Request.Context(), requestIDKey, reqID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(headerRequestID, reqID)
		c.Next()
	}
}

func requestIDFromContext(ctx context.Context) string {
	reqID, _ := ctx.Value(requestIDKey).(string)
	return reqID
}

func requestLogMiddleware(logger *slog.Logger) gin.HandlerFunc {
	log := logger.With("component", "http")

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.DebugContext(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"request_id", requestIDFromContext(c.Request.Context()),
		)
	}
}

// cacheControlMiddleware - pages always reflect the current game, static assets may be cached in production.
func cacheControlMiddleware(staticAge time.Duration, production bool) gin.HandlerFunc {
	noStore := cachecontrol.New(cachecontrol.Config{
		NoStore:        true,
		NoCache:        true,
		MustRevalidate: true,
	})

	static := cachecontrol.New(cachecontrol.Config{
		Public: true,
		MaxAge: cachecontrol.Duration(staticAge),
	})

	return func(c *gin.Context) {
		if production && strings.HasPrefix(c.Request.URL.Path, "/static/") {
			static(c)
			c.Header("Vary", "Accept-Encoding")
			return
		}

		noStore(c)
	}
}
