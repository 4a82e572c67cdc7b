package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/KeithKrenek/google-doc-pdf-converter/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath     string // DOCPDF_CONFIG: config file path
	Backend        string // DOCPDF_BACKEND: flowable or canvas
	Timeout        string // DOCPDF_TIMEOUT: PDF generation timeout
	Port           int    // DOCPDF_PORT: HTTP listen port
	Workers        int    // DOCPDF_WORKERS: converter pool size
	StorageDir     string // DOCPDF_STORAGE_DIR: object store root
	StorageBaseURL string // DOCPDF_STORAGE_BASE_URL: public URL prefix
	DocsBaseURL    string // DOCPDF_DOCS_BASE_URL: Google Docs API endpoint
	DocsToken      string // DOCPDF_DOCS_TOKEN: bearer token
}

// knownEnvVars lists valid DOCPDF_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"DOCPDF_CONFIG":           true,
	"DOCPDF_BACKEND":          true,
	"DOCPDF_TIMEOUT":          true,
	"DOCPDF_PORT":             true,
	"DOCPDF_WORKERS":          true,
	"DOCPDF_STORAGE_DIR":      true,
	"DOCPDF_STORAGE_BASE_URL": true,
	"DOCPDF_DOCS_BASE_URL":    true,
	"DOCPDF_DOCS_TOKEN":       true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:     os.Getenv("DOCPDF_CONFIG"),
		Backend:        os.Getenv("DOCPDF_BACKEND"),
		Timeout:        os.Getenv("DOCPDF_TIMEOUT"),
		StorageDir:     os.Getenv("DOCPDF_STORAGE_DIR"),
		StorageBaseURL: os.Getenv("DOCPDF_STORAGE_BASE_URL"),
		DocsBaseURL:    os.Getenv("DOCPDF_DOCS_BASE_URL"),
		DocsToken:      os.Getenv("DOCPDF_DOCS_TOKEN"),
	}

	if v := os.Getenv("DOCPDF_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Port = n
		}
	}
	if v := os.Getenv("DOCPDF_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Workers = n
		}
	}

	return cfg
}

// warnUnknownEnvVars reports DOCPDF_* variables that are not recognized,
// catching typos like DOCPDF_BACKND.
func warnUnknownEnvVars(w io.Writer) {
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, "DOCPDF_") && !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s\n", name)
		}
	}
}

// applyEnvToConfig overlays env values onto a loaded config.
// Precedence (low to high): config file, environment, flags.
func applyEnvToConfig(cfg *config.Config, env *envConfig) {
	if env.Backend != "" {
		cfg.Renderer.Backend = env.Backend
	}
	if env.Timeout != "" {
		cfg.Renderer.Timeout = env.Timeout
	}
	if env.Port != 0 {
		cfg.Server.Port = env.Port
	}
	if env.Workers != 0 {
		cfg.Server.Workers = env.Workers
	}
	if env.StorageDir != "" {
		cfg.Storage.Dir = env.StorageDir
	}
	if env.StorageBaseURL != "" {
		cfg.Storage.BaseURL = env.StorageBaseURL
	}
	if env.DocsBaseURL != "" {
		cfg.Docs.BaseURL = env.DocsBaseURL
	}
	if env.DocsToken != "" {
		cfg.Docs.Token = env.DocsToken
	}
}
