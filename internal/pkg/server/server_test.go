package server

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/forestbar/api/internal/pkg/logger"
)

func newTestLogger() (*logger.ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return logger.NewZapLoggerWithCore(core, "test"), logs
}

func TestNewGracefulServer_DefaultTimeout(t *testing.T) {
	zl, _ := newTestLogger()

	gs := NewGracefulServer(echo.New(), zl, 8080, 0)
	assert.Equal(t, defaultShutdownTimeout, gs.shutdownTimeout)

	gs = NewGracefulServer(echo.New(), zl, 8080, 5*time.Second)
	assert.Equal(t, 5*time.Second, gs.shutdownTimeout)
}

func TestGracefulServer_RunStopsOnContextCancel(t *testing.T) {
	zl, logs := newTestLogger()
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	gs := NewGracefulServer(e, zl, 0, time.Second)
	cleaned := make(chan struct{})
	gs.OnShutdown(func(context.Context) error {
		close(cleaned)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- gs.Run(ctx) }()

	require.Eventually(t, func() bool { return e.ListenerAddr() != nil }, 2*time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}

	select {
	case <-cleaned:
	default:
		t.Fatal("cleanup was not run")
	}
	assert.Equal(t, 1, logs.FilterMessage("Server shutdown completed").Len())
}

func TestGracefulServer_RunReturnsListenError(t *testing.T) {
	zl, _ := newTestLogger()

	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer ln.Close()
	port := ln.Addr().(*net.TCPAddr).Port

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	gs := NewGracefulServer(e, zl, port, time.Second)

	err = gs.Run(context.Background())
	assert.Error(t, err)
}

func TestShutdownManager_ReverseOrderAndErrors(t *testing.T) {
	zl, logs := newTestLogger()
	sm := NewShutdownManager(zl)

	var order []int
	for i := 0; i < 3; i++ {
		i := i
		sm.Register(func(context.Context) error {
			order = append(order, i)
			if i == 1 {
				return errors.New("close failed")
			}
			return nil
		})
	}

	err := sm.Shutdown(context.Background())

	assert.EqualError(t, err, "close failed")
	assert.Equal(t, []int{2, 1, 0}, order)
	assert.Equal(t, 1, logs.FilterMessage("Error during component shutdown").Len())
}

func TestShutdownManager_Empty(t *testing.T) {
	zl, _ := newTestLogger()
	assert.NoError(t, NewShutdownManager(zl).Shutdown(context.Background()))
}
