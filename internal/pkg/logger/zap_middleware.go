package logger

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/forestbar/api/internal/pkg/requestcontext"
)

// ZapEchoMiddleware logs one line per request with status, latency and the request and identity ids
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path

			err := next(c)
			if err != nil {
				// let echo render the error first so the logged status is the one sent
				c.Error(err)
			}

			ctx := c.Request().Context()
			userID := requestcontext.GetIdentityID(ctx)
			if userID == "" {
				userID = "anonymous"
			}

			requestID := c.Response().Header().Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = requestcontext.GetRequestID(ctx)
			}

			logger.LogHTTPRequest(
				c.Request().Method,
				path,
				c.RealIP(),
				userID,
				requestID,
				c.Response().Status,
				time.Since(start),
				err,
			)

			return nil
		}
	}
}
