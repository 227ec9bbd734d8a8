// Package database manages the PostgreSQL connection pool and applies
// embedded schema migrations at startup.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/lumenlab/vista/pkg/lifecycle"
)

// System manages the database connection lifecycle.
type System interface {
	Start(lc *lifecycle.Coordinator) error
	Connection() *sql.DB
}

type system struct {
	cfg        *Config
	db         *sql.DB
	logger     *slog.Logger
	migrations fs.FS
}

// New opens the connection pool described by cfg and verifies connectivity.
// Migrations from the provided filesystem are applied when Start runs.
func New(cfg *Config, migrations fs.FS, logger *slog.Logger) (System, error) {
	db, err := sql.Open("pgx", cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnTimeoutDuration())
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &system{
		cfg:        cfg,
		db:         db,
		logger:     logger.With("system", "database"),
		migrations: migrations,
	}, nil
}

// Connection returns the underlying connection pool.
func (s *system) Connection() *sql.DB {
	return s.db
}

// Start applies pending migrations and registers pool cleanup with the
// lifecycle coordinator.
func (s *system) Start(lc *lifecycle.Coordinator) error {
	if err := s.migrate(); err != nil {
		return err
	}

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		if err := s.db.Close(); err != nil {
			s.logger.Error("failed to close database", "error", err)
		} else {
			s.logger.Info("database connection closed")
		}
	})

	return nil
}

func (s *system) migrate() error {
	source, err := iofs.New(s.migrations, ".")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	driver, err := pgxmigrate.WithInstance(s.db, &pgxmigrate.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, s.cfg.Name, driver)
	if err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	s.logger.Info("migrations applied")
	return nil
}
