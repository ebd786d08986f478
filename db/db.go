// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open connects to the configured database and applies the pool limits.
// It does not contact the server; call Ping for that.
func Open(cfg Config) (*sql.DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	conn, err := sql.Open(cfg.DriverName(), cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.Client, err)
	}

	conn.SetMaxOpenConns(cfg.PoolMax)
	conn.SetMaxIdleConns(cfg.PoolMin)
	conn.SetConnMaxIdleTime(5 * time.Minute)

	return conn, nil
}

// Ping checks the connection within the configured acquire timeout
func Ping(ctx context.Context, conn *sql.DB, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := conn.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Version returns the server version string, used by the readiness report
func Version(ctx context.Context, conn *sql.DB, client string) (string, error) {
	query := "SELECT version()"
	if client == ClientSQLite {
		query = "SELECT sqlite_version()"
	}
	var v string
	if err := conn.QueryRowContext(ctx, query).Scan(&v); err != nil {
		return "", fmt.Errorf("failed to read server version: %w", err)
	}
	return v, nil
}
