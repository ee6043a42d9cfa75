package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	apperrors "github.com/spec-kit/user-management/pkg/util"
)

const rateLimitWindow = time.Minute

// RateLimiter applies a fixed-window per-IP request budget backed by Redis,
// so the budget holds across process restarts. Redis being unreachable
// fails open: availability over strictness for this tier.
func RateLimiter(client *redis.Client, limitPerMinute int, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if client == nil || limitPerMinute <= 0 {
			return c.Next()
		}

		window := time.Now().Unix() / int64(rateLimitWindow.Seconds())
		key := fmt.Sprintf("ratelimit:%s:%d", c.IP(), window)

		ctx := c.UserContext()
		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			logger.Warn("rate limiter unavailable", zap.Error(err))
			return c.Next()
		}
		if count == 1 {
			client.Expire(ctx, key, rateLimitWindow)
		}

		if count > int64(limitPerMinute) {
			return apperrors.NewDomainError("RATE_LIMITED", "too many requests, please try again later", http.StatusTooManyRequests, nil)
		}
		return c.Next()
	}
}
