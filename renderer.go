package docpdf

import (
	"context"
	"fmt"
	"time"
)

// Backend selects a rendering implementation.
type Backend string

// Available rendering backends.
const (
	// BackendFlowable delegates wrapping and pagination to headless Chrome.
	BackendFlowable Backend = "flowable"
	// BackendCanvas draws at absolute positions with manual pagination.
	// Used as fallback when Chrome is unavailable.
	BackendCanvas Backend = "canvas"
)

// Renderer turns a document model plus derived cover fields into PDF bytes.
// Implementations must be safe for sequential reuse; one Render call is one
// independent job with no state shared across calls.
type Renderer interface {
	Render(ctx context.Context, model *DocumentModel, cover Cover) ([]byte, error)
	Close() error
}

// Compile-time interface implementation checks.
var (
	_ Renderer = (*flowableRenderer)(nil)
	_ Renderer = (*canvasRenderer)(nil)
)

// NewRenderer constructs the renderer for a backend.
// The backend is a startup-time configuration value, passed explicitly;
// there is no process-global renderer state.
func NewRenderer(backend Backend, timeout time.Duration) (Renderer, error) {
	switch backend {
	case BackendFlowable:
		return newFlowableRenderer(timeout), nil
	case BackendCanvas:
		return newCanvasRenderer(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// ParseBackend validates a backend name from configuration.
func ParseBackend(s string) (Backend, error) {
	switch Backend(s) {
	case BackendFlowable, BackendCanvas:
		return Backend(s), nil
	case "":
		return BackendFlowable, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, s)
	}
}
