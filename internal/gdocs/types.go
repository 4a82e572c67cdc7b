// Package gdocs provides the Google Docs wire types and a minimal read-only
// API client. The rest of the module consumes only the tree shape; network
// access stays behind Client.
package gdocs

// Document is the raw styled-document tree returned by the documents.get API.
// Only the fields the extractor consumes are mapped.
type Document struct {
	Title string `json:"title"`
	Body  *Body  `json:"body"`
}

// Body holds the ordered structural elements of a document.
type Body struct {
	Content []StructuralElement `json:"content"`
}

// StructuralElement is one entry in a document body. Non-paragraph entries
// (tables, section breaks) leave Paragraph nil and are skipped downstream.
type StructuralElement struct {
	Paragraph *Paragraph `json:"paragraph,omitempty"`
}

// Paragraph is an ordered run of styled text elements.
type Paragraph struct {
	Elements []ParagraphElement `json:"elements"`
}

// ParagraphElement wraps a single text run. Inline objects and other element
// types leave TextRun nil.
type ParagraphElement struct {
	TextRun *TextRun `json:"textRun,omitempty"`
}

// TextRun carries literal text and its style descriptor.
type TextRun struct {
	Content   string     `json:"content"`
	TextStyle *TextStyle `json:"textStyle,omitempty"`
}

// TextStyle holds the style attributes relevant to block classification.
type TextStyle struct {
	Bold     bool      `json:"bold"`
	FontSize *FontSize `json:"fontSize,omitempty"`
}

// FontSize is a dimensioned font size; Magnitude is in points.
type FontSize struct {
	Magnitude float64 `json:"magnitude"`
	Unit      string  `json:"unit,omitempty"`
}
