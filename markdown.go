package docpdf

import "strings"

// modelToMarkdown renders the block sequence as Markdown for the flowable
// pipeline. Heading blocks become level-2 headings so the stylesheet can
// attach the heading rule; Bold blocks become strong paragraphs; Normal and
// Title blocks pass through as plain paragraphs.
func modelToMarkdown(model *DocumentModel) string {
	var sb strings.Builder

	for i, b := range model.Blocks {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		switch b.Kind {
		case KindHeading:
			sb.WriteString("## ")
			sb.WriteString(b.Text)
		case KindBold:
			sb.WriteString("**")
			sb.WriteString(b.Text)
			sb.WriteString("**")
		default:
			sb.WriteString(b.Text)
		}
	}

	return sb.String()
}
