package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// IdempotencyMiddleware deduplicates mutating requests by X-Correlation-ID.
// A retried booking submission within the TTL gets the cached response back
// instead of creating a second booking. Keys are scoped to the authenticated
// user so one user's correlation ID can never replay another user's response.
func IdempotencyMiddleware(redisClient *redis.Client, ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodPost && c.Method() != fiber.MethodPatch && c.Method() != fiber.MethodPut {
			return c.Next()
		}

		correlationID := c.Get("X-Correlation-ID")
		if correlationID == "" {
			// no correlation ID, no idempotency check
			return c.Next()
		}

		userID, _ := c.Locals(UserIDKey).(string)
		key := fmt.Sprintf("idempotency:booking:%s:%s", userID, correlationID)
		ctx := context.Background()

		cached, err := redisClient.Get(ctx, key).Bytes()
		if err == nil && len(cached) > 0 {
			c.Set("X-Idempotent-Replay", "true")
			c.Set("Content-Type", "application/json")
			return c.Send(cached)
		}

		if err := c.Next(); err != nil {
			return err
		}

		// Cache successful responses only
		statusCode := c.Response().StatusCode()
		if statusCode >= 200 && statusCode < 300 {
			body := c.Response().Body()
			if len(body) > 0 {
				setCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
				defer cancel()
				redisClient.Set(setCtx, key, append([]byte(nil), body...), ttl)
			}
		}

		return nil
	}
}
