// Package config holds service configuration loaded from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/KeithKrenek/google-doc-pdf-converter/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidPort     = errors.New("invalid port")
	ErrInvalidTimeout  = errors.New("invalid timeout")
)

// Port bounds for the HTTP server.
const (
	MinPort = 1
	MaxPort = 65535
)

// Config holds all configuration for the conversion service.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Renderer RendererConfig `yaml:"renderer"`
	Storage  StorageConfig  `yaml:"storage"`
	Docs     DocsConfig     `yaml:"docs"`
}

// ServerConfig defines HTTP front-door options.
type ServerConfig struct {
	Port    int `yaml:"port"`    // Listen port (default: 8080)
	Workers int `yaml:"workers"` // Converter pool size (0 = auto from GOMAXPROCS)
}

// RendererConfig selects and tunes the rendering backend.
type RendererConfig struct {
	Backend string `yaml:"backend"` // "flowable" or "canvas" (default: "flowable")
	Timeout string `yaml:"timeout"` // PDF generation timeout as a duration string (default: "30s")
}

// StorageConfig defines where finished PDFs are stored.
type StorageConfig struct {
	Dir     string `yaml:"dir"`     // Object store root directory
	BaseURL string `yaml:"baseURL"` // Public URL prefix for stored objects
}

// DocsConfig defines the upstream document source.
type DocsConfig struct {
	BaseURL string `yaml:"baseURL"` // API endpoint (empty = production Google Docs)
	Token   string `yaml:"token"`   // Bearer token (empty = unauthenticated)
}

// DefaultConfig returns configuration with production defaults.
func DefaultConfig() *Config {
	return &Config{
		Server:   ServerConfig{Port: 8080},
		Renderer: RendererConfig{Backend: "flowable", Timeout: "30s"},
		Storage:  StorageConfig{Dir: "data", BaseURL: "http://localhost:8080/download"},
	}
}

// Validate checks bounds on loaded values.
func (c *Config) Validate() error {
	if c.Server.Port < MinPort || c.Server.Port > MaxPort {
		return fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidPort, c.Server.Port, MinPort, MaxPort)
	}
	if _, err := c.RenderTimeout(); err != nil {
		return err
	}
	return nil
}

// RenderTimeout parses the configured rendering timeout.
// An empty value means the 30s default.
func (c *Config) RenderTimeout() (time.Duration, error) {
	if c.Renderer.Timeout == "" {
		return 30 * time.Second, nil
	}
	d, err := time.ParseDuration(c.Renderer.Timeout)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeout, c.Renderer.Timeout)
	}
	return d, nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if strings.ContainsAny(nameOrPath, "/\\") {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/docpdf/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "docpdf", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
