package docpdf

import "errors"

// Sentinel errors for library operations.
var (
	ErrDocumentStructure = errors.New("malformed document structure")
	ErrInvalidDocURL     = errors.New("invalid document URL")
	ErrEmptyDocURL       = errors.New("document URL cannot be empty")
	ErrRender            = errors.New("PDF rendering failed")
	ErrUnknownBackend    = errors.New("unknown rendering backend")

	// Flowable backend errors.
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
)
