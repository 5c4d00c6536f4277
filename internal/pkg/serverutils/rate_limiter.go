package serverutils

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// RateLimitMiddleware caps requests per caller per minute using a redis
// counter. Keyed on user id when authenticated, client IP otherwise.
// Redis being unreachable fails open so the endpoint stays usable.
func RateLimitMiddleware(rdb *redis.Client, prefix string, maxPerMinute int) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		caller := ctx.IP()
		if userId, ok := ctx.Locals("user_id").(string); ok && userId != "" {
			caller = userId
		}

		window := time.Now().Unix() / 60
		key := fmt.Sprintf("ratelimit:%s:%s:%d", prefix, caller, window)

		count, err := rdb.Incr(ctx.Context(), key).Result()
		if err != nil {
			return ctx.Next()
		}
		if count == 1 {
			rdb.Expire(ctx.Context(), key, time.Minute)
		}
		if count > int64(maxPerMinute) {
			return fiber.NewError(fiber.StatusTooManyRequests, "rate limit exceeded, try again shortly")
		}

		return ctx.Next()
	}
}
