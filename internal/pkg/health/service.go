package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/fleetlocation/internal/pkg/logger"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// HealthService manages health checks for multiple dependencies
type HealthService struct {
	names    []string
	checkers map[string]HealthChecker
}

// NewHealthService creates a new health service
func NewHealthService() *HealthService {
	return &HealthService{checkers: make(map[string]HealthChecker)}
}

// AddChecker registers a health checker for a dependency
func (h *HealthService) AddChecker(name string, checker HealthChecker) {
	if _, exists := h.checkers[name]; !exists {
		h.names = append(h.names, name)
		sort.Strings(h.names)
	}
	h.checkers[name] = checker
}

// HealthResponse represents the health check response
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

// CheckAllHealth runs every registered checker
func (h *HealthService) CheckAllHealth(ctx context.Context) HealthResponse {
	response := HealthResponse{
		Status:       StatusHealthy,
		Timestamp:    time.Now(),
		Dependencies: make(map[string]DependencyInfo, len(h.names)),
	}

	for _, name := range h.names {
		if err := h.checkers[name].CheckHealth(ctx); err != nil {
			logger.Error("Health check failed",
				logger.String("dependency", name),
				logger.ErrorField(err))
			response.Dependencies[name] = DependencyInfo{Status: StatusUnhealthy, Error: err.Error()}
			response.Status = StatusUnhealthy
			continue
		}
		response.Dependencies[name] = DependencyInfo{Status: StatusHealthy}
	}

	return response
}

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	GitCommit   string    `json:"git_commit"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

func newBuildInfo(serviceName, version string) BuildInfo {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	gitCommit := os.Getenv("GIT_COMMIT")
	if gitCommit == "" {
		gitCommit = "unknown"
	}
	return BuildInfo{
		Version:     version,
		GitCommit:   gitCommit,
		ServiceName: serviceName,
		GoVersion:   runtime.Version(),
		Hostname:    hostname,
	}
}

// RegisterHealthEndpoints registers /ping and the /health probes
func RegisterHealthEndpoints(e *echo.Echo, serviceName, version string, healthService *HealthService) {
	buildInfo := newBuildInfo(serviceName, version)
	e.GET("/ping", func(c echo.Context) error {
		info := buildInfo
		info.ServerTime = time.Now()
		return c.JSON(http.StatusOK, info)
	})

	healthGroup := e.Group("/health")

	// Basic health check (for load balancers)
	healthGroup.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":    "ok",
			"service":   serviceName,
			"timestamp": time.Now(),
		})
	})

	healthGroup.GET("/detailed", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		response := healthService.CheckAllHealth(ctx)
		response.Service = serviceName
		response.Version = version

		statusCode := http.StatusOK
		if response.Status == StatusUnhealthy {
			statusCode = http.StatusServiceUnavailable
		}
		return c.JSON(statusCode, response)
	})

	// Readiness probe (for Kubernetes)
	healthGroup.GET("/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
		defer cancel()

		response := healthService.CheckAllHealth(ctx)
		response.Service = serviceName
		if response.Status == StatusUnhealthy {
			return c.JSON(http.StatusServiceUnavailable, response)
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "ready",
			"service": serviceName,
		})
	})

	// Liveness probe (for Kubernetes)
	healthGroup.GET("/live", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "alive",
			"service": serviceName,
		})
	})
}
