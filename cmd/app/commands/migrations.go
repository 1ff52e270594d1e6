package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/allisson/securenotes/internal/app"
	"github.com/allisson/securenotes/internal/config"
	"github.com/allisson/securenotes/internal/database"
)

// RunMigrate applies migrations for the configured database.
func RunMigrate() error {
	cfg := config.Load()

	container := app.NewContainer(cfg)
	logger := container.Logger()
	defer closeContainer(container, logger)

	return RunMigrations(logger, cfg.DBDriver, cfg.DBConnectionString)
}

// RunMigrations applies all pending migrations for the driver's migration set.
// A database that is already up to date is not an error.
func RunMigrations(logger *slog.Logger, dbDriver, dbConnectionString string) error {
	logger.Info("running database migrations", slog.String("driver", dbDriver))

	migrationsPath, err := database.MigrationsPath(dbDriver)
	if err != nil {
		return fmt.Errorf("failed to resolve migrations: %w", err)
	}

	m, err := migrate.New(migrationsPath, migrateURL(dbDriver, dbConnectionString))
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			logger.Error("failed to close migrate",
				slog.Any("source_error", srcErr),
				slog.Any("database_error", dbErr))
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("migrations completed successfully")
	return nil
}

// migrateURL turns a driver DSN into the URL form golang-migrate expects.
// PostgreSQL DSNs are already URLs; MySQL DSNs need the mysql:// scheme.
func migrateURL(dbDriver, dbConnectionString string) string {
	if dbDriver == database.DriverMySQL {
		return "mysql://" + dbConnectionString
	}
	return dbConnectionString
}
