package docpdf

import "time"

// BlockKind classifies a normalized content block.
type BlockKind int

// Block kinds, in increasing prominence.
const (
	KindNormal BlockKind = iota
	KindBold
	KindHeading
	KindTitle
)

// String returns the lowercase name of the kind.
func (k BlockKind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindBold:
		return "bold"
	case KindHeading:
		return "heading"
	case KindTitle:
		return "title"
	}
	return "unknown"
}

// ContentBlock is one normalized unit of document content.
// Text is non-empty with surrounding whitespace stripped.
type ContentBlock struct {
	Kind BlockKind
	Text string
}

// DocumentModel is the normalized extraction result for one source document.
// It is constructed once per conversion, never mutated afterwards.
type DocumentModel struct {
	Title  string
	Blocks []ContentBlock
}

// DefaultTitle is used when the source document carries no title.
const DefaultTitle = "Untitled Document"

// headings returns the Heading-classified blocks in document order.
func (m *DocumentModel) headings() []ContentBlock {
	var hs []ContentBlock
	for _, b := range m.Blocks {
		if b.Kind == KindHeading {
			hs = append(hs, b)
		}
	}
	return hs
}

// firstNormal returns the first Normal-classified block, or false if none exists.
func (m *DocumentModel) firstNormal() (ContentBlock, bool) {
	for _, b := range m.Blocks {
		if b.Kind == KindNormal {
			return b, true
		}
	}
	return ContentBlock{}, false
}

// Input contains conversion parameters for one request.
type Input struct {
	DocURL string // Google Docs URL or bare document ID (required)
	Brand  string // Optional branding string for the cover page
}

// ConvertResult holds the outcome of one conversion.
//
// A failed upload does not fail the conversion: PDF holds the rendered bytes,
// DownloadURL is empty, and StorageErr records why the upload failed.
type ConvertResult struct {
	DocumentTitle string
	Filename      string
	PDF           []byte
	DownloadURL   string
	StorageErr    error
	Timestamp     time.Time
}
