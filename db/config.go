// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"
)

const (
	ClientSQLite   = "sqlite"
	ClientPostgres = "postgres"
)

var (
	ErrUnknownClient = errors.New("unknown database client")
	ErrInvalidPool   = errors.New("invalid pool size")
)

// Config mirrors the CMS database settings. The gateway reads the same
// variables so its readiness probe checks the database the CMS uses.
type Config struct {
	Client   string `env:"DATABASE_CLIENT" envDefault:"sqlite"`
	URL      string `env:"DATABASE_URL"`
	Host     string `env:"DATABASE_HOST" envDefault:"localhost"`
	Port     int    `env:"DATABASE_PORT" envDefault:"5432"`
	Name     string `env:"DATABASE_NAME" envDefault:"strapi"`
	Username string `env:"DATABASE_USERNAME" envDefault:"strapi"`
	Password string `env:"DATABASE_PASSWORD" envDefault:"strapi"`
	Schema   string `env:"DATABASE_SCHEMA" envDefault:"public"`

	SSL                   bool `env:"DATABASE_SSL" envDefault:"false"`
	SSLRejectUnauthorized bool `env:"DATABASE_SSL_REJECT_UNAUTHORIZED" envDefault:"true"`

	PoolMin int `env:"DATABASE_POOL_MIN" envDefault:"2"`
	PoolMax int `env:"DATABASE_POOL_MAX" envDefault:"10"`
	// ConnectionTimeoutMS is the acquire timeout in milliseconds
	ConnectionTimeoutMS int `env:"DATABASE_CONNECTION_TIMEOUT" envDefault:"60000"`

	// Dir is the CMS project directory; the sqlite file lives in Dir/.tmp
	Dir      string `env:"DATABASE_DIR" envDefault:"."`
	Filename string `env:"DATABASE_FILENAME" envDefault:"data.db"`

	// Readiness enables the database check in /health/ready
	Readiness bool `env:"DATABASE_READINESS" envDefault:"false"`
}

// ConnectionTimeout returns the acquire timeout as a Duration
func (c Config) ConnectionTimeout() time.Duration {
	return time.Duration(c.ConnectionTimeoutMS) * time.Millisecond
}

// Validate checks the client selector and pool sizing
func (c Config) Validate() error {
	switch c.Client {
	case ClientSQLite, ClientPostgres:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownClient, c.Client)
	}
	if c.PoolMin < 0 || c.PoolMax < 1 || c.PoolMin > c.PoolMax {
		return fmt.Errorf("%w: min=%d max=%d", ErrInvalidPool, c.PoolMin, c.PoolMax)
	}
	return nil
}

// SQLitePath returns the database file used by the sqlite client
func (c Config) SQLitePath() string {
	if c.Filename == ":memory:" {
		return c.Filename
	}
	return filepath.Join(c.Dir, ".tmp", c.Filename)
}

// DriverName returns the database/sql driver for the configured client
func (c Config) DriverName() string {
	if c.Client == ClientPostgres {
		return "postgres"
	}
	return "sqlite"
}

// DSN builds the connection string for the configured client.
// DATABASE_URL wins over discrete postgres parameters. The sqlite file is
// opened read-only since the gateway never writes to it.
func (c Config) DSN() string {
	if c.Client != ClientPostgres {
		p := c.SQLitePath()
		if p == ":memory:" {
			return p
		}
		return "file:" + p + "?mode=ro"
	}

	if c.URL != "" {
		return c.URL
	}

	sslmode := "disable"
	if c.SSL {
		sslmode = "verify-full"
		if !c.SSLRejectUnauthorized {
			sslmode = "require"
		}
	}

	params := []string{
		kv("host", c.Host),
		kv("port", fmt.Sprint(c.Port)),
		kv("dbname", c.Name),
		kv("user", c.Username),
		kv("password", c.Password),
		kv("sslmode", sslmode),
		kv("search_path", c.Schema),
	}
	if secs := c.ConnectionTimeoutMS / 1000; secs > 0 {
		params = append(params, kv("connect_timeout", fmt.Sprint(secs)))
	}
	return strings.Join(params, " ")
}

// Redacted returns DSN with the password hidden, for logs
func (c Config) Redacted() string {
	if c.Client != ClientPostgres {
		return c.DSN()
	}
	if c.URL != "" {
		if u, err := url.Parse(c.URL); err == nil {
			return u.Redacted()
		}
		return "<unparseable DATABASE_URL>"
	}
	redacted := c
	redacted.Password = "xxxxx"
	return redacted.DSN()
}

// kv quotes a key=value pair for the lib/pq connection string format
func kv(key, value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, `'`, `\'`)
	return key + "='" + value + "'"
}
