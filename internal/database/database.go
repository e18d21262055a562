// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	_ "github.com/lib/pq"

	"github.com/tomtom215/cinefilter/internal/config"
	"github.com/tomtom215/cinefilter/internal/database/query"
	"github.com/tomtom215/cinefilter/internal/logging"
)

// memoryPath opens an in-process DuckDB store that disappears on Close.
const memoryPath = ":memory:"

// DB is the relational store behind the catalog and the recommender.
// All methods are safe for concurrent use.
type DB struct {
	conn    *sql.DB
	cfg     *config.DatabaseConfig
	dialect query.Dialect
	breaker *queryBreaker
}

// New opens the store selected by cfg.Driver, configures the connection pool
// and, for DuckDB, creates the schema. PostgreSQL schemas are owned by the
// ingestion side and are only pinged.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	driver, dsn, err := dataSource(cfg)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	db := &DB{
		conn:    conn,
		cfg:     cfg,
		dialect: query.DialectForDriver(driver),
		breaker: newQueryBreaker(driver, cfg.BreakerFailures, cfg.BreakerTimeout),
	}
	db.configureConnectionPool()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to connect to %s database: %w", driver, err)
	}

	if driver == config.DriverDuckDB {
		if err := db.EnsureSchema(ctx); err != nil {
			closeQuietly(conn)
			return nil, err
		}
	}

	logging.Info().
		Str("driver", driver).
		Str("path", cfg.Path).
		Msg("Database connection established")

	return db, nil
}

// dataSource resolves the database/sql driver name and connection string.
func dataSource(cfg *config.DatabaseConfig) (driver, dsn string, err error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		if cfg.DSN == "" {
			return "", "", fmt.Errorf("database dsn is required for driver %q", cfg.Driver)
		}
		return config.DriverPostgres, cfg.DSN, nil

	case config.DriverDuckDB, "":
		path := cfg.Path
		if path == "" {
			path = memoryPath
		}
		if path != memoryPath {
			if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
				return "", "", fmt.Errorf("failed to create database directory: %w", err)
			}
		}

		threads := cfg.Threads
		if threads <= 0 {
			threads = runtime.NumCPU()
		}
		dsn = fmt.Sprintf("%s?threads=%d", path, threads)
		if cfg.MaxMemory != "" {
			dsn += "&max_memory=" + cfg.MaxMemory
		}
		return config.DriverDuckDB, dsn, nil

	default:
		return "", "", fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// configureConnectionPool sets connection pool parameters
func (db *DB) configureConnectionPool() {
	maxOpen := db.cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = runtime.NumCPU()
	}
	maxIdle := db.cfg.MaxIdleConns
	if maxIdle <= 0 {
		maxIdle = 2
	}
	lifetime := db.cfg.ConnMaxLifetime
	if lifetime <= 0 {
		lifetime = time.Hour
	}

	db.conn.SetMaxOpenConns(maxOpen)
	db.conn.SetMaxIdleConns(maxIdle)
	db.conn.SetConnMaxLifetime(lifetime)
	db.conn.SetConnMaxIdleTime(5 * time.Minute)
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}
	return db.conn.Close()
}

// Ping checks if the database connection is alive
func (db *DB) Ping(ctx context.Context) error {
	if db.conn == nil {
		return fmt.Errorf("database connection is nil")
	}
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	return db.conn.PingContext(ctx)
}

// Driver returns the configured driver name.
func (db *DB) Driver() string {
	if db.dialect == query.DialectDollar {
		return config.DriverPostgres
	}
	return config.DriverDuckDB
}

// BreakerState reports the query circuit breaker state for readiness checks.
func (db *DB) BreakerState() string {
	return db.breaker.state()
}
