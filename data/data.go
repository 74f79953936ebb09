// Package data manages PostgreSQL persistence.
package data

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver

	"carmarket/config"
	"carmarket/logging/logger"
)

// Data holds the database handle shared by the repositories.
type Data struct {
	db  *sql.DB
	log *logger.Logger
}

// New opens the database described by cfg and verifies it with a ping.
func New(cfg *config.Data, log *logger.Logger) (*Data, error) {
	if cfg == nil || cfg.Database == nil || cfg.Database.Source == "" {
		return nil, fmt.Errorf("data: database configuration is empty")
	}
	node := cfg.Database

	driver := node.Driver
	if driver == "" {
		driver = "pgx"
	}
	db, err := sql.Open(driver, node.Source)
	if err != nil {
		return nil, fmt.Errorf("data: failed to open connection: %w", err)
	}

	if node.MaxIdleConn > 0 {
		db.SetMaxIdleConns(node.MaxIdleConn)
	}
	if node.MaxOpenConn > 0 {
		db.SetMaxOpenConns(node.MaxOpenConn)
	}
	if node.ConnMaxLifeTime > 0 {
		db.SetConnMaxLifetime(node.ConnMaxLifeTime)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("data: failed to ping database: %w", err)
	}

	log.Info(ctx, "Database connected", "driver", driver)
	return &Data{db: db, log: log}, nil
}

// DB exposes the underlying handle for the repositories.
func (d *Data) DB() *sql.DB {
	return d.db
}

// Ping verifies database connectivity.
func (d *Data) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

// Close releases the database handle.
func (d *Data) Close() error {
	return d.db.Close()
}
