package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/eduface/eduface/internal/app/models/dto"
	"github.com/eduface/eduface/internal/db"
)

// RateLimiter enforces a per-IP request budget. With redis configured the
// budget is a shared fixed window so every replica counts against the same
// limit; otherwise an in-memory token bucket covers the single-process case.
// Redis failures fall back to the in-memory bucket rather than blocking
// traffic.
type RateLimiter struct {
	capacity int
	rate     int
	redis    *db.Redis
	mu       sync.Mutex
	state    map[string]*clientBucket
}

type clientBucket struct {
	tokens int
	last   time.Time
}

// NewRateLimiter creates a limiter allowing perMinute requests per client IP.
// redis may be nil.
func NewRateLimiter(perMinute int, redis *db.Redis) *RateLimiter {
	if perMinute <= 0 {
		perMinute = 60
	}
	return &RateLimiter{
		capacity: perMinute,
		rate:     perMinute,
		redis:    redis,
		state:    make(map[string]*clientBucket),
	}
}

// Handler returns the gin middleware enforcing the limit.
func (l *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}

		allowed := false
		if l.redis != nil {
			ok, err := l.allowRedis(c, ip)
			if err != nil {
				log.Warn().Err(err).Msg("Redis rate limit check failed, using in-memory limiter")
				allowed = l.allow(ip)
			} else {
				allowed = ok
			}
		} else {
			allowed = l.allow(ip)
		}

		if !allowed {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Too many requests")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse(errorDetail))
			return
		}
		c.Next()
	}
}

// allowRedis counts the request in a per-minute fixed window shared across
// processes.
func (l *RateLimiter) allowRedis(c *gin.Context, key string) (bool, error) {
	ctx := c.Request.Context()
	window := time.Now().Unix() / 60
	redisKey := fmt.Sprintf("ratelimit:%s:%d", key, window)

	n, err := l.redis.Client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		l.redis.Client.Expire(ctx, redisKey, 2*time.Minute)
	}
	return n <= int64(l.rate), nil
}

func (l *RateLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	b, ok := l.state[key]
	if !ok {
		l.state[key] = &clientBucket{tokens: l.capacity - 1, last: now}
		return true
	}

	elapsed := now.Sub(b.last).Minutes()
	refill := int(elapsed * float64(l.rate))
	if refill > 0 {
		b.tokens += refill
		if b.tokens > l.capacity {
			b.tokens = l.capacity
		}
		b.last = now
	}
	if b.tokens <= 0 {
		return false
	}
	b.tokens--
	return true
}
