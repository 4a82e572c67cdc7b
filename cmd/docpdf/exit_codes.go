package main

import (
	"errors"
	"os"

	docpdf "github.com/KeithKrenek/google-doc-pdf-converter"
	"github.com/KeithKrenek/google-doc-pdf-converter/internal/config"
	"github.com/KeithKrenek/google-doc-pdf-converter/internal/gdocs"
)

// Exit codes for the docpdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
	ExitFetch   = 5 // Document retrieval errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, docpdf.ErrBrowserConnect) ||
		errors.Is(err, docpdf.ErrPageCreate) ||
		errors.Is(err, docpdf.ErrPageLoad) {
		return ExitBrowser
	}

	// Document retrieval errors (exit 5)
	if errors.Is(err, gdocs.ErrFetch) ||
		errors.Is(err, gdocs.ErrNotFound) {
		return ExitFetch
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrWritePDF) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidPort) ||
		errors.Is(err, config.ErrInvalidTimeout) ||
		errors.Is(err, docpdf.ErrEmptyDocURL) ||
		errors.Is(err, docpdf.ErrInvalidDocURL) ||
		errors.Is(err, docpdf.ErrUnknownBackend) {
		return ExitUsage
	}

	return ExitGeneral
}
