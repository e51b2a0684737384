package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/forestbar/api/internal/pkg/logger"
)

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(context.Context) error {
	return f.err
}

func setupEcho(checkers map[string]HealthChecker) (*echo.Echo, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	svc := NewHealthService(logger.NewZapLoggerWithCore(core, "test"))
	for name, checker := range checkers {
		svc.AddChecker(name, checker)
	}

	e := echo.New()
	RegisterHealthEndpoints(e, "forestbar-auth", "1.2.3", svc)
	return e, logs
}

func serve(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRegisterHealthEndpoints(t *testing.T) {
	e, _ := setupEcho(nil)

	tests := []struct {
		path         string
		wantContains string
	}{
		{"/", "Forest Bar API"},
		{"/health", `"status":"healthy"`},
		{"/healthz", "OK"},
		{"/ping", `"service_name":"forestbar-auth"`},
		{"/ready", `"status":"healthy"`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := serve(e, tt.path)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantContains)
		})
	}
}

func TestNewPingHandler(t *testing.T) {
	e, _ := setupEcho(nil)

	rec := serve(e, "/ping")
	require.Equal(t, http.StatusOK, rec.Code)

	var info BuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.NotEmpty(t, info.Hostname)
	assert.False(t, info.ServerTime.IsZero())
}

func TestReadyHandler_DependencyDown(t *testing.T) {
	e, logs := setupEcho(map[string]HealthChecker{
		"postgres": NewPingChecker(fakePinger{}),
		"redis":    NewPingChecker(fakePinger{err: errors.New("connection refused")}),
	})

	rec := serve(e, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var response HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "unhealthy", response.Status)
	assert.Equal(t, "forestbar-auth", response.Service)
	assert.Equal(t, "healthy", response.Dependencies["postgres"].Status)
	assert.Equal(t, "unhealthy", response.Dependencies["redis"].Status)
	assert.Equal(t, "connection refused", response.Dependencies["redis"].Error)

	assert.Equal(t, 1, logs.FilterMessage("Health check failed").Len())

	// liveness does not depend on the database
	assert.Equal(t, http.StatusOK, serve(e, "/healthz").Code)
}

func TestPingChecker_NilClient(t *testing.T) {
	assert.NoError(t, NewPingChecker(nil).CheckHealth(context.Background()))
}
