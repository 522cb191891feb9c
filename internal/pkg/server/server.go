package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/fleetlocation/internal/pkg/logger"
	"github.com/piresc/fleetlocation/internal/pkg/models"
)

const defaultShutdownTimeout = 30 * time.Second

// GracefulServer wraps Echo server with graceful shutdown capabilities
type GracefulServer struct {
	echo            *echo.Echo
	logger          *logger.ZapLogger
	addr            string
	shutdownTimeout time.Duration
	shutdown        *ShutdownManager
}

// NewGracefulServer creates a new server with graceful shutdown
func NewGracefulServer(e *echo.Echo, zapLogger *logger.ZapLogger, cfg models.ServerConfig) *GracefulServer {
	if cfg.ReadTimeout > 0 {
		e.Server.ReadTimeout = time.Duration(cfg.ReadTimeout) * time.Second
	}
	if cfg.WriteTimeout > 0 {
		e.Server.WriteTimeout = time.Duration(cfg.WriteTimeout) * time.Second
	}

	timeout := defaultShutdownTimeout
	if cfg.ShutdownTimeout > 0 {
		timeout = time.Duration(cfg.ShutdownTimeout) * time.Second
	}

	return &GracefulServer{
		echo:            e,
		logger:          zapLogger,
		addr:            fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		shutdownTimeout: timeout,
		shutdown:        NewShutdownManager(zapLogger),
	}
}

// OnShutdown registers a component to close after the HTTP server stopped
func (s *GracefulServer) OnShutdown(name string, fn func(context.Context) error) {
	s.shutdown.Register(name, fn)
}

// Start serves until SIGINT or SIGTERM, then shuts down gracefully
func (s *GracefulServer) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is done, then shuts down gracefully
func (s *GracefulServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", logger.String("address", s.addr))
		errCh <- s.echo.Start(s.addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		s.logger.Error("HTTP server stopped", logger.ErrorField(err))
		_ = s.shutdown.Shutdown(context.Background())
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
		s.logger.Info("Received shutdown signal")
	}

	return s.Shutdown()
}

// Shutdown drains in-flight requests, then closes registered components
func (s *GracefulServer) Shutdown() error {
	s.logger.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	err := s.echo.Shutdown(ctx)
	if err != nil {
		s.logger.Error("Server forced to shutdown", logger.ErrorField(err))
	}
	if shutdownErr := s.shutdown.Shutdown(ctx); err == nil {
		err = shutdownErr
	}

	s.logger.Info("Server shutdown completed")
	return err
}

type component struct {
	name string
	fn   func(context.Context) error
}

// ShutdownManager closes registered components in reverse registration order
type ShutdownManager struct {
	logger     *logger.ZapLogger
	components []component
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager(zapLogger *logger.ZapLogger) *ShutdownManager {
	return &ShutdownManager{logger: zapLogger}
}

// Register adds a cleanup function to be called during shutdown
func (sm *ShutdownManager) Register(name string, fn func(context.Context) error) {
	sm.components = append(sm.components, component{name: name, fn: fn})
}

// Shutdown runs every cleanup function and returns the first error
func (sm *ShutdownManager) Shutdown(ctx context.Context) error {
	var firstErr error
	for i := len(sm.components) - 1; i >= 0; i-- {
		c := sm.components[i]
		if err := c.fn(ctx); err != nil {
			sm.logger.Error("Error during component shutdown",
				logger.String("component", c.name),
				logger.ErrorField(err))
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to close %s: %w", c.name, err)
			}
		}
	}
	sm.components = nil
	return firstErr
}
