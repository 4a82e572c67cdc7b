package docpdf

import "strings"

// Cover fallback labels and derivation limits.
const (
	fallbackTitle    = "PROFESSIONAL DOCUMENT"
	defaultBrand     = "PROFESSIONAL BRAND"
	defaultSubtitle  = "Preliminary Insights: Defining the Core"
	subtitlePrefix   = "Preliminary Insights: "
	maxDerivedTitle  = 50  // document titles longer than this fall back to fallbackTitle
	maxSubtitleInput = 100 // first-paragraph text is cut here before sentence extraction
)

// Cover holds the derived cover-page fields.
// Derivation is backend-agnostic: both renderers consume the same values.
type Cover struct {
	MainTitle string
	Subtitle  string
	Brand     string
}

// DeriveCover computes cover-page fields from a model and an optional brand.
//
// MainTitle is the first Heading upper-cased, falling back to the document
// title (replaced wholesale by a fixed label when too long). Subtitle prefers
// the second Heading, then the brand, then the leading sentence of the first
// Normal block. Brand defaults to a fixed label when absent.
func DeriveCover(model *DocumentModel, brand string) Cover {
	c := Cover{
		MainTitle: deriveMainTitle(model),
		Subtitle:  deriveSubtitle(model, brand),
		Brand:     brand,
	}
	if c.Brand == "" {
		c.Brand = defaultBrand
	}
	return c
}

func deriveMainTitle(model *DocumentModel) string {
	for _, b := range model.Blocks {
		if b.Kind == KindHeading {
			return strings.ToUpper(b.Text)
		}
	}

	title := strings.ToUpper(model.Title)
	if len(title) > maxDerivedTitle {
		return fallbackTitle
	}
	return title
}

func deriveSubtitle(model *DocumentModel, brand string) string {
	if hs := model.headings(); len(hs) > 1 {
		return hs[1].Text
	}

	if brand != "" {
		return "Insights: " + brand
	}

	if first, ok := model.firstNormal(); ok {
		text := first.Text
		if len(text) > maxSubtitleInput {
			text = text[:maxSubtitleInput]
		}
		sentence, _, _ := strings.Cut(text, ".")
		return subtitlePrefix + sentence
	}

	return defaultSubtitle
}
