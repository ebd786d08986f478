// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"fmt"
	"log/slog"
	"strings"

	json "github.com/goccy/go-json"
)

const (
	ProviderGCS   = "gcs"
	ProviderLocal = "local"
)

// Config holds the object storage settings the CMS upload provider reads.
type Config struct {
	Bucket             string `env:"GCS_BUCKET_NAME"`
	ServiceAccountJSON string `env:"GCS_SERVICE_ACCOUNT_JSON"`
	BasePath           string `env:"GCS_BASE_PATH" envDefault:"media"`
}

// Resolution is the provider the CMS will use for media. It never carries
// the service account private key.
type Resolution struct {
	Provider    string `json:"provider"`
	Bucket      string `json:"bucket,omitempty"`
	BasePath    string `json:"basePath,omitempty"`
	ProjectID   string `json:"projectId,omitempty"`
	ClientEmail string `json:"clientEmail,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

type serviceAccount struct {
	ProjectID   string `json:"project_id"`
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
}

// Resolve picks GCS when a bucket is named and the service account JSON
// parses with project_id, client_email and private_key. Any other
// combination falls back to local storage with a Reason.
func Resolve(cfg Config) Resolution {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return Resolution{Provider: ProviderLocal, Reason: "GCS not configured"}
	}

	if strings.TrimSpace(cfg.ServiceAccountJSON) == "" {
		slog.Warn("GCS_BUCKET_NAME set but GCS_SERVICE_ACCOUNT_JSON is missing, falling back to local storage")
		return Resolution{Provider: ProviderLocal, Reason: "service account JSON missing"}
	}

	var sa serviceAccount
	if err := json.Unmarshal([]byte(cfg.ServiceAccountJSON), &sa); err != nil {
		slog.Error("failed to parse GCS_SERVICE_ACCOUNT_JSON", "error", err)
		return Resolution{Provider: ProviderLocal, Reason: fmt.Sprintf("service account JSON invalid: %v", err)}
	}

	var missing []string
	if sa.ProjectID == "" {
		missing = append(missing, "project_id")
	}
	if sa.ClientEmail == "" {
		missing = append(missing, "client_email")
	}
	if sa.PrivateKey == "" {
		missing = append(missing, "private_key")
	}
	if len(missing) > 0 {
		slog.Error("GCS service account missing required fields", "fields", missing)
		return Resolution{
			Provider: ProviderLocal,
			Reason:   "service account missing " + strings.Join(missing, ", "),
		}
	}

	basePath := cfg.BasePath
	if basePath == "" {
		basePath = "media"
	}
	return Resolution{
		Provider:    ProviderGCS,
		Bucket:      cfg.Bucket,
		BasePath:    basePath,
		ProjectID:   sa.ProjectID,
		ClientEmail: sa.ClientEmail,
	}
}

// PublicURL returns the public object URL for a file stored under the
// resolved base path, or "" for local storage.
func (r Resolution) PublicURL(name string) string {
	if r.Provider != ProviderGCS {
		return ""
	}
	return "https://storage.googleapis.com/" + r.Bucket + "/" + strings.Trim(r.BasePath, "/") + "/" + strings.TrimLeft(name, "/")
}
