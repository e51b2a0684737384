package health

import (
	"context"
	"sort"
	"time"

	"github.com/forestbar/api/internal/pkg/logger"
)

// HealthChecker defines the interface for health checking dependencies
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// Pinger is satisfied by the database clients
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingChecker adapts any Pinger into a HealthChecker
type PingChecker struct {
	client Pinger
}

// NewPingChecker creates a checker that pings client
func NewPingChecker(client Pinger) *PingChecker {
	return &PingChecker{client: client}
}

// CheckHealth pings the dependency
func (p *PingChecker) CheckHealth(ctx context.Context) error {
	if p.client == nil {
		return nil
	}
	return p.client.Ping(ctx)
}

// HealthService manages health checks for multiple dependencies
type HealthService struct {
	checkers map[string]HealthChecker
	logger   *logger.ZapLogger
	now      func() time.Time
}

// NewHealthService creates a new health service
func NewHealthService(zapLogger *logger.ZapLogger) *HealthService {
	return &HealthService{
		checkers: make(map[string]HealthChecker),
		logger:   zapLogger,
		now:      time.Now,
	}
}

// AddChecker registers a health checker for a dependency
func (h *HealthService) AddChecker(name string, checker HealthChecker) {
	h.checkers[name] = checker
}

// HealthResponse represents the readiness check response
type HealthResponse struct {
	Status       string                    `json:"status"`
	Timestamp    time.Time                 `json:"timestamp"`
	Service      string                    `json:"service"`
	Version      string                    `json:"version,omitempty"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
}

// DependencyInfo represents health info for a dependency
type DependencyInfo struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Healthy reports whether every dependency answered
func (r HealthResponse) Healthy() bool {
	return r.Status == statusHealthy
}

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

// CheckAllHealth performs health checks on all registered dependencies
func (h *HealthService) CheckAllHealth(ctx context.Context) HealthResponse {
	response := HealthResponse{
		Status:       statusHealthy,
		Timestamp:    h.now(),
		Dependencies: make(map[string]DependencyInfo, len(h.checkers)),
	}

	names := make([]string, 0, len(h.checkers))
	for name := range h.checkers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := h.checkers[name].CheckHealth(ctx); err != nil {
			if h.logger != nil {
				h.logger.Error("Health check failed",
					logger.String("dependency", name),
					logger.Err(err))
			}
			response.Dependencies[name] = DependencyInfo{Status: statusUnhealthy, Error: err.Error()}
			response.Status = statusUnhealthy
			continue
		}
		response.Dependencies[name] = DependencyInfo{Status: statusHealthy}
	}

	return response
}
