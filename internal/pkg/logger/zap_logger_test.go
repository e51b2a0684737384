package logger

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/forestbar/api/internal/pkg/requestcontext"
)

func newObservedLogger() (*ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewZapLoggerWithCore(core, "forestbar-auth-test"), logs
}

func TestNewZapLogger_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "auth.log")

	zl, err := NewZapLogger(ZapConfig{Level: "debug", FilePath: path, Service: "svc"})
	require.NoError(t, err)

	zl.Info("hello", String("k", "v"))
	require.NoError(t, zl.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
	assert.Contains(t, string(data), `"service":"svc"`)
	assert.Equal(t, path, zl.GetFilePath())
}

func TestNewZapLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	zl, err := NewZapLogger(ZapConfig{Level: "loud"})
	require.NoError(t, err)
	assert.False(t, zl.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, zl.Core().Enabled(zapcore.InfoLevel))
}

func TestLogHTTPRequest_LevelByStatus(t *testing.T) {
	zl, logs := newObservedLogger()

	zl.LogHTTPRequest(http.MethodGet, "/ok", "1.1.1.1", "u", "r", 200, time.Millisecond, nil)
	zl.LogHTTPRequest(http.MethodGet, "/bad", "1.1.1.1", "u", "r", 404, time.Millisecond, nil)
	zl.LogHTTPRequest(http.MethodGet, "/boom", "1.1.1.1", "u", "r", 503, time.Millisecond, errors.New("db down"))

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "db down", entries[2].ContextMap()["error"])
	assert.Equal(t, "forestbar-auth-test", entries[0].ContextMap()["service"])
}

func TestFromContext(t *testing.T) {
	zl, logs := newObservedLogger()
	previous := GetGlobalLogger()
	SetGlobalLogger(zl)
	t.Cleanup(func() { SetGlobalLogger(previous) })

	ctx := requestcontext.WithRequestContext(context.Background(), &requestcontext.RequestContext{
		RequestID: "req-1",
		TraceID:   "trace-1",
	})
	ctx = requestcontext.WithIdentityID(ctx, "identity-1")

	InfoCtx(ctx, "with context")

	entries := logs.FilterMessage("with context").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "trace-1", fields["trace_id"])
	assert.Equal(t, "identity-1", fields["user_id"])
}

func TestZapEchoMiddleware(t *testing.T) {
	zl, logs := newObservedLogger()
	e := echo.New()

	handler := ZapEchoMiddleware(zl)(func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})

	req := httptest.NewRequest(http.MethodPost, "/auth/send-code", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(http.StatusTeapot), fields["status"])
	assert.Equal(t, "/auth/send-code", fields["path"])
	assert.Equal(t, "anonymous", fields["user_id"])
}
