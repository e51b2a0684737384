package middleware

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"

	"github.com/forestbar/api/internal/pkg/constants"
	apperrors "github.com/forestbar/api/internal/pkg/errors"
	"github.com/forestbar/api/internal/pkg/logger"
	"github.com/forestbar/api/internal/utils"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	RedisClient *redis.Client
	Resource    string        // Route name used in the Redis key
	Limit       int           // Maximum number of requests per window
	Period      time.Duration // Window length
	Now         func() time.Time
}

// RateLimiterMiddleware counts requests per client IP in a fixed Redis window.
// Requests are let through when Redis is unavailable.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	if config.Now == nil {
		config.Now = time.Now
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.RedisClient == nil || config.Limit <= 0 {
				return next(c)
			}

			ctx := c.Request().Context()
			key := fmt.Sprintf(constants.KeyRateLimit, config.Resource, c.RealIP())

			pipe := config.RedisClient.TxPipeline()
			incr := pipe.Incr(ctx, key)
			ttlCmd := pipe.TTL(ctx, key)
			if _, err := pipe.Exec(ctx); err != nil {
				logger.WarnCtx(ctx, "Rate limiter unavailable, allowing request",
					logger.String("resource", config.Resource),
					logger.Err(err))
				return next(c)
			}

			count := int(incr.Val())
			ttl := ttlCmd.Val()
			if ttl < 0 {
				// first hit in this window, or a key left without expiry
				if err := config.RedisClient.Expire(ctx, key, config.Period).Err(); err != nil {
					logger.WarnCtx(ctx, "Failed to set rate limit window", logger.Err(err))
				}
				ttl = config.Period
			}

			remaining := config.Limit - count
			if remaining < 0 {
				remaining = 0
			}

			header := c.Response().Header()
			header.Set(constants.HeaderRateLimitLimit, strconv.Itoa(config.Limit))
			header.Set(constants.HeaderRateLimitRemaining, strconv.Itoa(remaining))
			header.Set(constants.HeaderRateLimitReset, strconv.FormatInt(config.Now().Add(ttl).Unix(), 10))

			if count > config.Limit {
				header.Set(constants.HeaderRetryAfter, strconv.FormatInt(int64(ttl.Seconds()), 10))
				return utils.DomainErrorResponse(c, apperrors.ErrRateLimited)
			}

			return next(c)
		}
	}
}

// IPRateLimiter creates a client-IP based limiter for one resource
func IPRateLimiter(resource string, limit int, period time.Duration, redisClient *redis.Client) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: redisClient,
		Resource:    resource,
		Limit:       limit,
		Period:      period,
	})
}
