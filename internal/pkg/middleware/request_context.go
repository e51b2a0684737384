package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/forestbar/api/internal/pkg/requestcontext"
)

const contextKeyRequestContext = "request_context"

// RequestContextMiddleware assigns request and trace ids, exposes them as response headers
// and stores them on the request context for logging
func RequestContextMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqCtx := requestcontext.FromEchoContext(c)
			c.Set(contextKeyRequestContext, reqCtx)

			ctx := requestcontext.WithRequestContext(c.Request().Context(), reqCtx)
			c.SetRequest(c.Request().WithContext(ctx))

			c.Response().Header().Set(echo.HeaderXRequestID, reqCtx.RequestID)
			c.Response().Header().Set(requestcontext.HeaderXTraceID, reqCtx.TraceID)

			return next(c)
		}
	}
}

// GetRequestContext extracts request context from Echo context
func GetRequestContext(c echo.Context) *requestcontext.RequestContext {
	if reqCtx, ok := c.Get(contextKeyRequestContext).(*requestcontext.RequestContext); ok {
		return reqCtx
	}
	return nil
}
