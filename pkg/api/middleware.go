package api

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// requestTimeout bounds every authenticated request.
const requestTimeout = 15 * time.Second

// Rate limit buckets, per credential, in requests per minute.
const (
	bucketPendingReads = "pending_reads"
	bucketMutations    = "mutations"
	bucketQuarantine   = "quarantine_batch"

	limitPendingReads = 30
	limitMutations    = 60
	limitQuarantine   = 10
)

// bearerAuth enforces the reviewer API credential.
func bearerAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		presented, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
			respondError(c, http.StatusUnauthorized, CodeUnauthorized, "invalid or missing bearer credential")
			return
		}
		c.Next()
	}
}

// withDeadline attaches the per-request deadline so downstream I/O is
// cancelled when the client gives up.
func withDeadline() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := contextWithTimeout(c)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// rateLimiters hands out one token-bucket limiter per credential and
// bucket. Minute-granularity quotas with burst equal to the quota.
type rateLimiters struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func newRateLimiters() *rateLimiters {
	return &rateLimiters{limiters: make(map[string]*rate.Limiter)}
}

func (r *rateLimiters) get(credential, bucket string, perMinute int) *rate.Limiter {
	key := credential + "|" + bucket
	r.mu.Lock()
	defer r.mu.Unlock()
	if lim, ok := r.limiters[key]; ok {
		return lim
	}
	lim := rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), perMinute)
	r.limiters[key] = lim
	return lim
}

// limit enforces the named bucket for the presenting credential.
func (r *rateLimiters) limit(bucket string, perMinute int) gin.HandlerFunc {
	return func(c *gin.Context) {
		credential := c.GetHeader("Authorization")
		if !r.get(credential, bucket, perMinute).Allow() {
			respondError(c, http.StatusTooManyRequests, CodeRateLimited, "rate limit exceeded")
			return
		}
		c.Next()
	}
}
