package docpdf

import (
	"fmt"
	"strings"

	"github.com/KeithKrenek/google-doc-pdf-converter/internal/gdocs"
)

// headingFontSize is the threshold (in points) above which a bold run marks
// its paragraph as a heading rather than emphasized body text.
const headingFontSize = 14

// ExtractModel normalizes a raw document tree into a DocumentModel.
//
// Each paragraph's text runs are concatenated in order. Classification is
// last-wins: every bold run re-assigns the paragraph style, so when bold runs
// with conflicting sizes appear in one paragraph the final bold run decides
// between Heading and Bold. This matches the upstream service behavior and is
// pinned by tests; see DESIGN.md.
//
// Paragraphs that are empty after whitespace stripping produce no block.
// A document without a body is malformed and yields ErrDocumentStructure.
func ExtractModel(doc *gdocs.Document) (*DocumentModel, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", ErrDocumentStructure)
	}
	if doc.Body == nil {
		return nil, fmt.Errorf("%w: document has no body", ErrDocumentStructure)
	}
	if doc.Body.Content == nil {
		return nil, fmt.Errorf("%w: document body has no content", ErrDocumentStructure)
	}

	title := doc.Title
	if title == "" {
		title = DefaultTitle
	}

	model := &DocumentModel{Title: title}

	for _, elem := range doc.Body.Content {
		if elem.Paragraph == nil {
			continue // tables, section breaks, etc.
		}

		var text strings.Builder
		kind := KindNormal

		for _, pe := range elem.Paragraph.Elements {
			run := pe.TextRun
			if run == nil {
				continue
			}
			text.WriteString(run.Content)

			if run.TextStyle != nil && run.TextStyle.Bold {
				if run.TextStyle.FontSize != nil && run.TextStyle.FontSize.Magnitude > headingFontSize {
					kind = KindHeading
				} else {
					kind = KindBold
				}
			}
		}

		content := strings.TrimSpace(text.String())
		if content == "" {
			continue
		}

		model.Blocks = append(model.Blocks, ContentBlock{Kind: kind, Text: content})
	}

	return model, nil
}
