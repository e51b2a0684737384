package requestcontext

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestFromEchoContext(t *testing.T) {
	e := echo.New()

	t.Run("uses caller supplied ids", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderXRequestID, "req-1")
		req.Header.Set(HeaderXTraceID, "trace-1")
		c := e.NewContext(req, httptest.NewRecorder())

		reqCtx := FromEchoContext(c)

		assert.Equal(t, "req-1", reqCtx.RequestID)
		assert.Equal(t, "trace-1", reqCtx.TraceID)
	})

	t.Run("generates ids when missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())

		reqCtx := FromEchoContext(c)

		assert.Len(t, reqCtx.RequestID, 36)
		assert.Equal(t, reqCtx.RequestID, reqCtx.TraceID)
		assert.False(t, reqCtx.StartTime.IsZero())
	})
}

func TestContextValues(t *testing.T) {
	ctx := WithRequestContext(context.Background(), &RequestContext{
		RequestID: "req-1",
		TraceID:   "trace-1",
		ClientIP:  "10.0.0.1",
	})

	assert.Equal(t, "req-1", GetRequestID(ctx))
	assert.Equal(t, "trace-1", GetTraceID(ctx))
	assert.Equal(t, "10.0.0.1", GetClientIP(ctx))
	assert.Empty(t, GetIdentityID(ctx))

	ctx = WithIdentityID(ctx, "identity-1")
	assert.Equal(t, "identity-1", GetIdentityID(ctx))

	assert.Empty(t, GetRequestID(context.Background()))
}
