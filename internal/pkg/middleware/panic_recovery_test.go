package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/forestbar/api/internal/pkg/logger"
	"github.com/forestbar/api/internal/utils"
)

func TestPanicRecoveryWithZapMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		panicValue interface{}
		wantType   string
	}{
		{"string panic", "test panic message", "string"},
		{"error panic", errors.New("test error panic"), "*errors.errorString"},
		{"int panic", 42, "int"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			zl := logger.NewZapLoggerWithCore(core, "test")

			e := echo.New()
			h := RequestContextMiddleware()(PanicRecoveryWithZapMiddleware(zl)(func(c echo.Context) error {
				panic(tt.panicValue)
			}))

			req := httptest.NewRequest(http.MethodPost, "/auth/verify-code", nil)
			req.Header.Set(echo.HeaderAuthorization, "Bearer secret-token")
			req.Header.Set(echo.HeaderXRequestID, "req-42")
			rec := httptest.NewRecorder()

			require.NotPanics(t, func() {
				_ = h(e.NewContext(req, rec))
			})

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			var body utils.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)

			entries := logs.FilterMessage("Panic recovered during request processing").All()
			require.Len(t, entries, 1)
			fields := entries[0].ContextMap()
			assert.Equal(t, tt.wantType, fields["panic_type"])
			assert.Equal(t, "req-42", fields["request_id"])
			assert.Equal(t, "anonymous", fields["user_id"])
			assert.NotEmpty(t, fields["stack_trace"])

			headers, ok := fields["headers"].(map[string]string)
			require.True(t, ok)
			assert.NotContains(t, headers, echo.HeaderAuthorization)
		})
	}
}

func TestPanicRecoveryMiddleware_RequiresLogger(t *testing.T) {
	assert.Panics(t, func() {
		PanicRecoveryMiddleware(PanicRecoveryConfig{})
	})
}

func TestRequestContextMiddleware(t *testing.T) {
	e := echo.New()
	var seen string
	h := RequestContextMiddleware()(func(c echo.Context) error {
		seen = GetRequestContext(c).RequestID
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(echo.HeaderXRequestID))
	assert.Equal(t, seen, rec.Header().Get("X-Trace-ID"))
}
