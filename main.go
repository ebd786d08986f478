package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/polaris-parent/sitegate/apiclient"
	"github.com/polaris-parent/sitegate/auth"
	"github.com/polaris-parent/sitegate/cliparse"
	"github.com/polaris-parent/sitegate/cms"
	"github.com/polaris-parent/sitegate/db"
	"github.com/polaris-parent/sitegate/router"
	"github.com/polaris-parent/sitegate/storage"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	cred := auth.NewCredential(cfg.CMSToken)
	if cred.IsZero() {
		slog.Warn("STRAPI_UPLOAD_TOKEN is not set; CMS writes will be refused")
	} else {
		slog.Info("CMS token loaded", "fingerprint", cred.Fingerprint())
	}

	cmsClient := cms.NewClient(cfg.CMSURL, cred, &http.Client{Timeout: cfg.UpstreamTimeout})
	api, err := apiclient.New(cfg.APIURL, cfg.UpstreamTimeout)
	if err != nil {
		slog.Error("invalid site API URL", "error", err)
		os.Exit(1)
	}

	res := storage.Resolve(cfg.Storage)
	slog.Info("media storage", "provider", res.Provider, "bucket", res.Bucket, "reason", res.Reason)

	// The database is only opened for the readiness probe
	var dbConn *sql.DB
	if cfg.Database.Readiness {
		dbConn, err = db.Open(cfg.Database)
		if err != nil {
			slog.Error("database open failed", "error", err)
			os.Exit(1)
		}
		defer dbConn.Close()
		slog.Info("database readiness enabled", "dsn", cfg.Database.Redacted())
	}

	handler := router.NewRouter(cfg, cmsClient, api, dbConn)

	server := http.Server{
		Handler:           handler,
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	slog.Info("Listening", "port", cfg.Port, "cms", cfg.CMSURL, "api", cfg.APIURL, "upload_limit", cfg.UploadLimit)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server closed")
}
