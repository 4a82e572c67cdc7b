package docpdf

import (
	"context"
	"fmt"
	"time"

	"github.com/KeithKrenek/google-doc-pdf-converter/internal/gdocs"
	"github.com/KeithKrenek/google-doc-pdf-converter/internal/store"
)

// DocumentFetcher retrieves raw document trees. Satisfied by *gdocs.Client;
// tests inject fakes.
type DocumentFetcher interface {
	Get(ctx context.Context, documentID string) (*gdocs.Document, error)
}

// Compile-time interface check.
var _ DocumentFetcher = (*gdocs.Client)(nil)

// defaultTimeout bounds PDF generation when no timeout is specified.
const defaultTimeout = 30 * time.Second

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	backend Backend
	timeout time.Duration
	now     func() time.Time
}

// Option configures a Converter.
type Option func(*Converter)

// WithBackend selects the rendering backend (default BackendFlowable).
func WithBackend(b Backend) Option {
	return func(c *Converter) {
		c.cfg.backend = b
	}
}

// WithTimeout sets the rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("docpdf: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithFetcher sets the document source collaborator.
func WithFetcher(f DocumentFetcher) Option {
	return func(c *Converter) {
		c.fetcher = f
	}
}

// WithStore sets the object-store collaborator for finished PDFs.
// Without a store, conversions succeed with an empty download URL.
func WithStore(s store.Store) Option {
	return func(c *Converter) {
		c.store = s
	}
}

// withRenderer injects a renderer directly, bypassing backend construction.
// Unexported: production code selects renderers via WithBackend.
func withRenderer(r Renderer) Option {
	return func(c *Converter) {
		c.renderer = r
	}
}

// withNow injects the clock used for object names.
func withNow(now func() time.Time) Option {
	return func(c *Converter) {
		c.cfg.now = now
	}
}

// Converter orchestrates the document-to-PDF pipeline: fetch, extract,
// derive cover fields, render, upload. Create with New, use Convert per
// request, and Close when done.
type Converter struct {
	cfg      converterConfig
	fetcher  DocumentFetcher
	renderer Renderer
	store    store.Store
}

// New creates a Converter with default configuration: flowable backend,
// production Google Docs client, no store.
// Returns an error for an unknown backend.
func New(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			backend: BackendFlowable,
			timeout: defaultTimeout,
			now:     time.Now,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.fetcher == nil {
		c.fetcher = gdocs.NewClient("", "")
	}

	// Create the renderer if not injected (e.g., by tests)
	if c.renderer == nil {
		r, err := NewRenderer(c.cfg.backend, c.cfg.timeout)
		if err != nil {
			return nil, err
		}
		c.renderer = r
	}

	return c, nil
}

// Backend reports the configured rendering backend.
func (c *Converter) Backend() Backend {
	return c.cfg.backend
}

// Convert runs one conversion: document URL in, stored PDF out.
//
// Extraction and rendering errors abort the conversion. A storage failure
// does not: the result then carries the rendered PDF, an empty DownloadURL,
// and the upload error in StorageErr.
func (c *Converter) Convert(ctx context.Context, input Input) (*ConvertResult, error) {
	documentID, err := ExtractDocumentID(input.DocURL)
	if err != nil {
		return nil, err
	}

	var model *DocumentModel
	if documentID == SelfTestDocumentID {
		model = selfTestModel(c.cfg.backend)
	} else {
		doc, err := c.fetcher.Get(ctx, documentID)
		if err != nil {
			return nil, fmt.Errorf("retrieving document: %w", err)
		}
		model, err = ExtractModel(doc)
		if err != nil {
			return nil, err
		}
	}

	cover := DeriveCover(model, input.Brand)

	pdfBytes, err := c.renderer.Render(ctx, model, cover)
	if err != nil {
		return nil, err
	}

	now := c.cfg.now().UTC()
	result := &ConvertResult{
		DocumentTitle: model.Title,
		Filename:      fmt.Sprintf("document_%s_%s.pdf", documentID, now.Format("20060102_150405")),
		PDF:           pdfBytes,
		Timestamp:     now,
	}

	if c.store != nil {
		url, err := c.store.Put(ctx, result.Filename, pdfBytes)
		if err != nil {
			result.StorageErr = err
		} else {
			result.DownloadURL = url
		}
	}

	return result, nil
}

// Close releases renderer resources (headless Chrome for the flowable backend).
func (c *Converter) Close() error {
	if c.renderer != nil {
		return c.renderer.Close()
	}
	return nil
}
