package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	docpdf "github.com/KeithKrenek/google-doc-pdf-converter"
	"github.com/KeithKrenek/google-doc-pdf-converter/internal/gdocs"
	"github.com/KeithKrenek/google-doc-pdf-converter/internal/store"
)

// stubFetcher serves a fixed document for any ID.
type stubFetcher struct {
	doc *gdocs.Document
	err error
}

func (s *stubFetcher) Get(ctx context.Context, documentID string) (*gdocs.Document, error) {
	return s.doc, s.err
}

func stubDocument() *gdocs.Document {
	return &gdocs.Document{
		Title: "Stub Report",
		Body: &gdocs.Body{Content: []gdocs.StructuralElement{
			{Paragraph: &gdocs.Paragraph{Elements: []gdocs.ParagraphElement{
				{TextRun: &gdocs.TextRun{
					Content: "Main Heading",
					TextStyle: &gdocs.TextStyle{
						Bold:     true,
						FontSize: &gdocs.FontSize{Magnitude: 18, Unit: "PT"},
					},
				}},
			}}},
			{Paragraph: &gdocs.Paragraph{Elements: []gdocs.ParagraphElement{
				{TextRun: &gdocs.TextRun{Content: "Body paragraph."}},
			}}},
		}},
	}
}

// testServer builds a server around the canvas backend, a stub document
// source, and an in-memory store. No browser involved.
func testServer(t *testing.T, fetcher docpdf.DocumentFetcher) (*server, *store.MemStore) {
	t.Helper()

	mem := store.NewMemStore()
	pool := docpdf.NewConverterPool(1,
		docpdf.WithBackend(docpdf.BackendCanvas),
		docpdf.WithFetcher(fetcher),
		docpdf.WithStore(mem),
	)
	t.Cleanup(func() { _ = pool.Close() })

	return &server{
		pool:    pool,
		store:   mem,
		backend: docpdf.BackendCanvas,
		now:     func() time.Time { return time.Date(2026, 3, 15, 10, 30, 45, 0, time.UTC) },
	}, mem
}

func TestHandleHealth(t *testing.T) {
	srv, _ := testServer(t, &stubFetcher{doc: stubDocument()})

	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["status"] != "healthy" || body["backend"] != "canvas" {
		t.Errorf("body = %v", body)
	}
}

func TestHandleConvert(t *testing.T) {
	srv, mem := testServer(t, &stubFetcher{doc: stubDocument()})

	req := httptest.NewRequest(http.MethodPost, "/convert",
		strings.NewReader(`{"doc_url": "https://docs.google.com/document/d/abc123/edit", "custom_input": "Acme"}`))
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp convertResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if !resp.Success {
		t.Error("success = false")
	}
	if resp.DocumentTitle != "Stub Report" {
		t.Errorf("document_title = %q", resp.DocumentTitle)
	}
	if !strings.HasPrefix(resp.PDFFilename, "document_abc123_") || !strings.HasSuffix(resp.PDFFilename, ".pdf") {
		t.Errorf("pdf_filename = %q", resp.PDFFilename)
	}
	if resp.Backend != "canvas" {
		t.Errorf("backend = %q", resp.Backend)
	}
	if resp.DownloadURL == "" {
		t.Error("download_url is empty")
	}
	if mem.Len() != 1 {
		t.Errorf("store holds %d objects, want 1", mem.Len())
	}
}

func TestHandleConvertBadRequests(t *testing.T) {
	srv, _ := testServer(t, &stubFetcher{doc: stubDocument()})

	tests := []struct {
		name string
		body string
		want int
	}{
		{"invalid JSON", "{not json", http.StatusBadRequest},
		{"missing doc_url", `{}`, http.StatusBadRequest},
		{"unparseable URL", `{"doc_url": "https://example.com/x"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/convert", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			srv.routes().ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestHandleConvertDocumentNotFound(t *testing.T) {
	srv, _ := testServer(t, &stubFetcher{err: gdocs.ErrNotFound})

	req := httptest.NewRequest(http.MethodPost, "/convert",
		strings.NewReader(`{"doc_url": "abc123"}`))
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

// The self-test sentinel converts without touching the document source.
func TestHandleConvertSelfTest(t *testing.T) {
	srv, _ := testServer(t, &stubFetcher{err: gdocs.ErrFetch})

	req := httptest.NewRequest(http.MethodPost, "/convert",
		strings.NewReader(`{"doc_url": "test-environment"}`))
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp convertResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if resp.DocumentTitle != "Environment Test Document" {
		t.Errorf("document_title = %q", resp.DocumentTitle)
	}
}

func TestHandleDownload(t *testing.T) {
	srv, mem := testServer(t, &stubFetcher{doc: stubDocument()})
	if _, err := mem.Put(context.Background(), "report.pdf", []byte("%PDF-fake")); err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/download/report.pdf", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q", ct)
	}
	if rec.Body.String() != "%PDF-fake" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestHandleDownloadMissing(t *testing.T) {
	srv, _ := testServer(t, &stubFetcher{doc: stubDocument()})

	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/download/nope.pdf", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{docpdf.ErrInvalidDocURL, http.StatusBadRequest},
		{docpdf.ErrDocumentStructure, http.StatusBadRequest},
		{gdocs.ErrNotFound, http.StatusNotFound},
		{docpdf.ErrRender, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
