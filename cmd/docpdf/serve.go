package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	docpdf "github.com/KeithKrenek/google-doc-pdf-converter"
	"github.com/KeithKrenek/google-doc-pdf-converter/internal/config"
	"github.com/KeithKrenek/google-doc-pdf-converter/internal/gdocs"
	"github.com/KeithKrenek/google-doc-pdf-converter/internal/store"
)

// runServeCmd starts the HTTP conversion service.
func runServeCmd(args []string, env *Environment) int {
	flags, err := parseServeFlags(args)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	cfg, err := loadConfiguration(flags.config, env)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	if flags.backend != "" {
		cfg.Renderer.Backend = flags.backend
	}
	if flags.port != 0 {
		cfg.Server.Port = flags.port
	}
	if flags.workers != 0 {
		cfg.Server.Workers = flags.workers
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	srv, err := newServer(cfg, env)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	defer func() { _ = srv.Close() }()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	if flags.verbose {
		fmt.Fprintf(env.Stderr, "Backend: %s, pool size: %d\n", srv.backend, srv.pool.Size())
	}
	fmt.Fprintf(env.Stderr, "Listening on %s\n", addr)

	if err := http.ListenAndServe(addr, srv.routes()); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitGeneral
	}
	return ExitSuccess
}

// server holds the HTTP service state: a converter pool and the shared store.
type server struct {
	pool    *docpdf.ConverterPool
	store   store.Store
	backend docpdf.Backend
	now     func() time.Time
}

// newServer assembles a server from configuration.
func newServer(cfg *config.Config, env *Environment) (*server, error) {
	backend, err := docpdf.ParseBackend(cfg.Renderer.Backend)
	if err != nil {
		return nil, err
	}

	opts, err := converterOptions(cfg, true)
	if err != nil {
		return nil, err
	}

	return &server{
		pool:    docpdf.NewConverterPool(docpdf.ResolvePoolSize(cfg.Server.Workers), opts...),
		store:   store.NewFSStore(cfg.Storage.Dir, cfg.Storage.BaseURL),
		backend: backend,
		now:     env.Now,
	}, nil
}

// Close releases pooled converter resources.
func (s *server) Close() error {
	return s.pool.Close()
}

// routes builds the HTTP handler.
func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /convert", s.handleConvert)
	mux.HandleFunc("GET /download/{filename}", s.handleDownload)
	return mux
}

// convertRequest is the POST /convert body.
type convertRequest struct {
	DocURL      string `json:"doc_url"`
	CustomInput string `json:"custom_input"`
}

// convertResponse is the POST /convert success body.
type convertResponse struct {
	Success       bool   `json:"success"`
	DocumentTitle string `json:"document_title"`
	PDFFilename   string `json:"pdf_filename"`
	DownloadURL   string `json:"download_url,omitempty"`
	StorageError  string `json:"storage_error,omitempty"`
	Timestamp     string `json:"timestamp"`
	Backend       string `json:"backend"`
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": s.now().UTC().Format(time.RFC3339),
		"backend":   string(s.backend),
	})
}

func (s *server) handleConvert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.DocURL == "" {
		writeError(w, http.StatusBadRequest, "doc_url is required")
		return
	}

	conv, err := s.pool.Acquire()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer s.pool.Release(conv)

	result, err := conv.Convert(r.Context(), docpdf.Input{
		DocURL: req.DocURL,
		Brand:  req.CustomInput,
	})
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	resp := convertResponse{
		Success:       true,
		DocumentTitle: result.DocumentTitle,
		PDFFilename:   result.Filename,
		DownloadURL:   result.DownloadURL,
		Timestamp:     result.Timestamp.Format(time.RFC3339),
		Backend:       string(s.backend),
	}
	// Storage failures degrade: render outcome is reported, URL stays empty.
	if result.StorageErr != nil {
		resp.StorageError = result.StorageErr.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *server) handleDownload(w http.ResponseWriter, r *http.Request) {
	filename := r.PathValue("filename")

	data, err := s.store.Get(r.Context(), filename)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "file not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "download failed")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(data)
}

// statusFor maps conversion errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, docpdf.ErrInvalidDocURL),
		errors.Is(err, docpdf.ErrEmptyDocURL),
		errors.Is(err, docpdf.ErrDocumentStructure):
		return http.StatusBadRequest
	case errors.Is(err, gdocs.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
