package docpdf

import (
	"context"
	"fmt"
	"time"
)

// flowableRenderer is the high-level auto-flow backend: the block sequence is
// rendered to Markdown, converted to HTML, styled, and printed to PDF by
// headless Chrome. Wrapping and pagination are delegated to the browser's
// layout engine.
type flowableRenderer struct {
	htmlConverter htmlConverter
	engine        htmlEngine
}

// newFlowableRenderer creates the production flowable renderer.
func newFlowableRenderer(timeout time.Duration) *flowableRenderer {
	return &flowableRenderer{
		htmlConverter: newGoldmarkConverter(),
		engine:        newRodEngine(timeout),
	}
}

// Render produces the cover page followed by the auto-flowed body.
// Any backend failure wraps ErrRender; partial output is never returned.
func (r *flowableRenderer) Render(ctx context.Context, model *DocumentModel, cover Cover) ([]byte, error) {
	htmlContent, err := r.htmlConverter.ToHTML(ctx, modelToMarkdown(model))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	htmlContent = injectCSS(htmlContent, reportCSS)
	htmlContent = injectCover(htmlContent, cover)

	// Both sentinels stay inspectable: ErrRender for the taxonomy, the
	// engine's own error (browser connect, page load) for diagnostics.
	pdfBytes, err := r.engine.ToPDF(ctx, htmlContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}

	return pdfBytes, nil
}

// Close releases browser resources.
func (r *flowableRenderer) Close() error {
	if r.engine != nil {
		return r.engine.Close()
	}
	return nil
}
