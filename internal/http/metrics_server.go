package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/allisson/securenotes/internal/metrics"
)

const (
	readTimeout  = 15 * time.Second
	writeTimeout = 15 * time.Second
	idleTimeout  = 60 * time.Second
)

// newStdServer returns an http.Server with the timeouts shared by the API and metrics listeners.
func newStdServer(host string, port int, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", host, port),
		Handler:      handler,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
}

// listenAndServe blocks until srv stops. A clean shutdown returns nil.
func listenAndServe(srv *http.Server, name string, logger *slog.Logger) error {
	logger.Info("starting "+name, slog.String("addr", srv.Addr))

	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return fmt.Errorf("%s stopped: %w", name, err)
}

// MetricsServer exposes the Prometheus scrape endpoint on its own port, outside the access gate.
type MetricsServer struct {
	server *http.Server
	logger *slog.Logger
}

func NewMetricsServer(host string, port int, logger *slog.Logger, provider *metrics.Provider) *MetricsServer {
	router := gin.New()
	router.Use(gin.Recovery())

	if provider != nil {
		router.GET("/metrics", gin.WrapH(provider.Handler()))
	}

	return &MetricsServer{
		server: newStdServer(host, port, router),
		logger: logger,
	}
}

func (m *MetricsServer) GetHandler() http.Handler {
	return m.server.Handler
}

func (m *MetricsServer) Start(_ context.Context) error {
	return listenAndServe(m.server, "metrics server", m.logger)
}

func (m *MetricsServer) Shutdown(ctx context.Context) error {
	m.logger.Info("shutting down metrics server")
	return m.server.Shutdown(ctx)
}
