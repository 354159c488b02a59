package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"stayops/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// SearchRateLimit throttles the public availability search per client IP
// with a fixed window counter in Redis. Fails open: a Redis outage must not
// take room search down with it.
func SearchRateLimit(rdb *redis.Client, cfg config.RedisConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ratelimit:search:" + c.ClientIP()
		ctx := c.Request.Context()

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			slog.Warn("rate limiter unavailable", "error", err.Error())
			c.Next()
			return
		}
		if count == 1 {
			if err := rdb.Expire(ctx, key, cfg.SearchRateWindow).Err(); err != nil {
				slog.Warn("failed to set rate limit window", "error", err.Error())
			}
		}

		if count > int64(cfg.SearchRateLimit) {
			ttl, _ := rdb.TTL(ctx, key).Result()
			if ttl > 0 {
				c.Header("Retry-After", time.Now().Add(ttl).UTC().Format(http.TimeFormat))
			}
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many search requests",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
