package requestcontext

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey type for context keys to avoid collisions
type ContextKey string

const (
	RequestIDKey  ContextKey = "request_id"
	TraceIDKey    ContextKey = "trace_id"
	IdentityIDKey ContextKey = "identity_id"
	ClientIPKey   ContextKey = "client_ip"
)

// HeaderXTraceID carries the trace id across services
const HeaderXTraceID = "X-Trace-ID"

// RequestContext holds request-specific information
type RequestContext struct {
	RequestID  string
	TraceID    string
	IdentityID string
	ClientIP   string
	StartTime  time.Time
}

// FromEchoContext builds the request context, honoring ids supplied by the caller
func FromEchoContext(c echo.Context) *RequestContext {
	req := c.Request()
	reqCtx := &RequestContext{
		RequestID: req.Header.Get(echo.HeaderXRequestID),
		TraceID:   req.Header.Get(HeaderXTraceID),
		ClientIP:  c.RealIP(),
		StartTime: time.Now(),
	}

	if reqCtx.RequestID == "" {
		reqCtx.RequestID = uuid.New().String()
	}
	if reqCtx.TraceID == "" {
		reqCtx.TraceID = reqCtx.RequestID
	}

	return reqCtx
}

// WithRequestContext adds request context to the given context
func WithRequestContext(ctx context.Context, reqCtx *RequestContext) context.Context {
	ctx = context.WithValue(ctx, RequestIDKey, reqCtx.RequestID)
	ctx = context.WithValue(ctx, TraceIDKey, reqCtx.TraceID)
	ctx = context.WithValue(ctx, ClientIPKey, reqCtx.ClientIP)
	if reqCtx.IdentityID != "" {
		ctx = context.WithValue(ctx, IdentityIDKey, reqCtx.IdentityID)
	}
	return ctx
}

// WithIdentityID records the authenticated identity on ctx
func WithIdentityID(ctx context.Context, identityID string) context.Context {
	return context.WithValue(ctx, IdentityIDKey, identityID)
}

// GetRequestID extracts request ID from context
func GetRequestID(ctx context.Context) string {
	return stringValue(ctx, RequestIDKey)
}

// GetTraceID extracts trace ID from context
func GetTraceID(ctx context.Context) string {
	return stringValue(ctx, TraceIDKey)
}

// GetIdentityID extracts the authenticated identity ID from context
func GetIdentityID(ctx context.Context) string {
	return stringValue(ctx, IdentityIDKey)
}

// GetClientIP extracts the caller address from context
func GetClientIP(ctx context.Context) string {
	return stringValue(ctx, ClientIPKey)
}

func stringValue(ctx context.Context, key ContextKey) string {
	if v, ok := ctx.Value(key).(string); ok {
		return v
	}
	return ""
}
