// Package app wires the service together. Every component is built on first access
// and cached with its error, so a failed dependency fails every later lookup too.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	authDomain "github.com/allisson/securenotes/internal/auth/domain"
	"github.com/allisson/securenotes/internal/config"
	cryptoService "github.com/allisson/securenotes/internal/crypto/service"
	"github.com/allisson/securenotes/internal/database"
	"github.com/allisson/securenotes/internal/http"
	"github.com/allisson/securenotes/internal/metrics"
	notesHTTP "github.com/allisson/securenotes/internal/notes/http"
	notesUseCase "github.com/allisson/securenotes/internal/notes/usecase"
)

const dbConnectTimeout = 10 * time.Second

// Container holds the service components.
type Container struct {
	config *config.Config

	logger          lazy[*slog.Logger]
	db              lazy[*sql.DB]
	txManager       lazy[database.TxManager]
	metricsProvider lazy[*metrics.Provider]
	businessMetrics lazy[metrics.BusinessMetrics]

	aeadManager lazy[cryptoService.AEADManager]
	engine      lazy[*cryptoService.Engine]
	gate        lazy[*authDomain.Gate]

	noteRepository lazy[notesUseCase.NoteRepository]
	noteUseCase    lazy[notesUseCase.NoteUseCase]
	noteHandler    lazy[*notesHTTP.NoteHandler]

	httpServer    lazy[*http.Server]
	metricsServer lazy[*http.MetricsServer]
}

func NewContainer(cfg *config.Config) *Container {
	return &Container{config: cfg}
}

func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns a JSON logger on stdout at LOG_LEVEL.
func (c *Container) Logger() *slog.Logger {
	return c.logger.must(func() *slog.Logger {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: logLevel(c.config.LogLevel),
		}))
	})
}

func (c *Container) DB() (*sql.DB, error) {
	return c.db.get(func() (*sql.DB, error) {
		ctx, cancel := context.WithTimeout(context.Background(), dbConnectTimeout)
		defer cancel()

		db, err := database.Connect(ctx, database.Config{
			Driver:             c.config.DBDriver,
			ConnectionString:   c.config.DBConnectionString,
			MaxOpenConnections: c.config.DBMaxOpenConnections,
			MaxIdleConnections: c.config.DBMaxIdleConnections,
			ConnMaxLifetime:    c.config.DBConnMaxLifetime,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return db, nil
	})
}

func (c *Container) TxManager() (database.TxManager, error) {
	return c.txManager.get(func() (database.TxManager, error) {
		db, err := c.DB()
		if err != nil {
			return nil, err
		}
		return database.NewTxManager(db), nil
	})
}

// MetricsProvider is nil when METRICS_ENABLED is false.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	return c.metricsProvider.get(func() (*metrics.Provider, error) {
		if !c.config.MetricsEnabled {
			return nil, nil
		}
		provider, err := metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			return nil, fmt.Errorf("failed to create metrics provider: %w", err)
		}
		return provider, nil
	})
}

// BusinessMetrics falls back to a no-op recorder when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	return c.businessMetrics.get(func() (metrics.BusinessMetrics, error) {
		provider, err := c.MetricsProvider()
		if err != nil {
			return nil, err
		}
		if provider == nil {
			return metrics.NewNoOpBusinessMetrics(), nil
		}
		return metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	})
}

// HTTPServer returns the API server with its router configured. ctx bounds the
// background work started by middleware and only matters on the first call.
//
// The gate and the note handler (and with it the encryption engine) are resolved
// before the database, so a bad key or token fails without opening a connection.
func (c *Container) HTTPServer(ctx context.Context) (*http.Server, error) {
	return c.httpServer.get(func() (*http.Server, error) {
		gate, err := c.Gate()
		if err != nil {
			return nil, err
		}

		noteHandler, err := c.NoteHandler()
		if err != nil {
			return nil, err
		}

		provider, err := c.MetricsProvider()
		if err != nil {
			return nil, err
		}

		db, err := c.DB()
		if err != nil {
			return nil, err
		}

		server := http.NewServer(db, c.config.ServerHost, c.config.ServerPort, c.Logger())
		server.SetupRouter(ctx, c.config, gate, noteHandler, provider)
		return server, nil
	})
}

// MetricsServer is nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	return c.metricsServer.get(func() (*http.MetricsServer, error) {
		provider, err := c.MetricsProvider()
		if err != nil || provider == nil {
			return nil, err
		}
		return http.NewMetricsServer(c.config.ServerHost, c.config.MetricsPort, c.Logger(), provider), nil
	})
}

// Shutdown flushes metrics and closes the database pool if they were created.
// Servers are stopped by their callers.
func (c *Container) Shutdown(ctx context.Context) error {
	var errs []error

	if provider := c.metricsProvider.peek(); provider != nil {
		if err := provider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if db := c.db.peek(); db != nil {
		if err := db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("database close: %w", err))
		}
	}

	return errors.Join(errs...)
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
