// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"

	"github.com/polaris-parent/sitegate/db"
	"github.com/polaris-parent/sitegate/storage"
)

const (
	DefaultCMSURL = "http://localhost:1337"
	DefaultAPIURL = "http://127.0.0.1:5000/api/v1"
)

var (
	ErrInvalidPort        = errors.New("invalid port")
	ErrInvalidURL         = errors.New("invalid upstream URL")
	ErrInvalidUploadLimit = errors.New("invalid upload limit")
	ErrInvalidTimeout     = errors.New("invalid upstream timeout")
)

// dotenvFiles are loaded in order when present. Variables already set in
// the process environment are never overridden.
var dotenvFiles = []string{".env.local", ".env"}

type Config struct {
	Port int `env:"PORT" envDefault:"3000"`

	// CMS base URL: STRAPI_INTERNAL_URL, then NEXT_PUBLIC_STRAPI_URL
	CMSInternalURL string `env:"STRAPI_INTERNAL_URL"`
	CMSPublicURL   string `env:"NEXT_PUBLIC_STRAPI_URL"`
	CMSURL         string
	CMSToken       string `env:"STRAPI_UPLOAD_TOKEN"`

	// Site API base URL: NEXT_SERVER_API_URL, then NEXT_PUBLIC_API_URL
	APIServerURL string `env:"NEXT_SERVER_API_URL"`
	APIPublicURL string `env:"NEXT_PUBLIC_API_URL"`
	APIURL       string

	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"30s"`
	UploadLimit     string        `env:"MAX_UPLOAD_SIZE" envDefault:"50MB"`
	MaxUploadBytes  int64

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`

	Database db.Config
	Storage  storage.Config
}

// ParseFlags loads .env files, reads the environment, then applies CLI
// flags on top. Flags win over environment, environment wins over defaults.
func ParseFlags(args []string) (Config, error) {
	loadDotenv()
	return parse(args, nil)
}

func loadDotenv() {
	for _, f := range dotenvFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			slog.Warn("failed to load env file", "file", f, "error", err)
			continue
		}
		slog.Info("loaded env file", "file", f)
	}
}

// parse reads environ (the process environment when nil) and args.
func parse(args []string, environ map[string]string) (Config, error) {
	var cfg Config

	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.CMSURL = firstNonEmpty(cfg.CMSInternalURL, cfg.CMSPublicURL, DefaultCMSURL)
	cfg.APIURL = firstNonEmpty(cfg.APIServerURL, cfg.APIPublicURL, DefaultAPIURL)

	fs := flag.NewFlagSet("sitegate", flag.ContinueOnError)

	// Environment values become the flag defaults
	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	fs.StringVar(&cfg.CMSURL, "cms-url", cfg.CMSURL, "CMS base URL")
	fs.StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "Site API base URL")
	fs.DurationVar(&cfg.UpstreamTimeout, "timeout", cfg.UpstreamTimeout, "Upstream request timeout")
	fs.StringVar(&cfg.UploadLimit, "upload-limit", cfg.UploadLimit, "Maximum upload size (e.g. 50MB)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.CMSToken, "cms-token", cfg.CMSToken, "CMS API token (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, cfg.Port)
	}

	cfg.CMSURL = strings.TrimRight(cfg.CMSURL, "/")
	if err := checkURL(cfg.CMSURL); err != nil {
		return fmt.Errorf("CMS URL: %w", err)
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	if err := checkURL(cfg.APIURL); err != nil {
		return fmt.Errorf("API URL: %w", err)
	}

	if cfg.UpstreamTimeout <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTimeout, cfg.UpstreamTimeout)
	}

	n, err := humanize.ParseBytes(cfg.UploadLimit)
	if err != nil || n == 0 {
		return fmt.Errorf("%w: %q", ErrInvalidUploadLimit, cfg.UploadLimit)
	}
	cfg.MaxUploadBytes = int64(n)

	origins := cfg.CORSOrigins[:0]
	for _, o := range cfg.CORSOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	cfg.CORSOrigins = origins

	if cfg.Database.Readiness {
		if err := cfg.Database.Validate(); err != nil {
			return fmt.Errorf("database: %w", err)
		}
	}
	return nil
}

func checkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
