package docpdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"codeberg.org/go-pdf/fpdf"
)

// Cover-page geometry (pt from the top edge) and hard truncation caps.
// Truncation makes this backend lossy relative to the flowable renderer:
// cover strings beyond the caps are cut, by design of the fallback path.
const (
	coverTitleY    = 150.0
	coverSubtitleY = 200.0
	coverBrandY    = 300.0

	maxCoverTitle    = 50
	maxCoverSubtitle = 60
	maxCoverBrand    = 40
)

// Body layout constants.
const (
	bodyTopOffset = 80.0 // first baseline, pt from the top edge
	bottomMargin  = 80.0 // no line may be drawn within this distance of the bottom
	leftMargin    = 50.0
	lineHeight    = 15.0
	blockSpacing  = 10.0

	// wrapWidth is a character budget, not a measured width. The greedy
	// wrap must stay character-based for output parity with the upstream
	// service.
	wrapWidth = 80

	canvasHeadingPt = 13.0
	canvasBodyPt    = 11.0
)

// canvasRenderer is the manual fallback backend: absolute-position drawing
// with explicit pagination arithmetic, no automatic flow.
type canvasRenderer struct{}

// newCanvasRenderer creates the canvas renderer. It holds no state; every
// Render call builds a fresh document.
func newCanvasRenderer() *canvasRenderer {
	return &canvasRenderer{}
}

// Render draws the cover page and the manually paginated body.
func (r *canvasRenderer) Render(ctx context.Context, model *DocumentModel, cover Cover) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0) // pagination is ours
	pageW, pageH := pdf.GetPageSize()

	// Cover page: fixed offsets, hard-truncated strings.
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 20)
	drawCentered(pdf, pageW, coverTitleY, truncate(cover.MainTitle, maxCoverTitle))
	pdf.SetFont("Helvetica", "", 14)
	drawCentered(pdf, pageW, coverSubtitleY, truncate(cover.Subtitle, maxCoverSubtitle))
	pdf.SetFont("Helvetica", "B", 16)
	drawCentered(pdf, pageW, coverBrandY, truncate(cover.Brand, maxCoverBrand))

	// Body pages. An empty model produces a cover with no body pages.
	if len(model.Blocks) > 0 {
		currentPage := 0
		for _, line := range layoutBody(model.Blocks, pageH) {
			if line.Page > currentPage {
				pdf.AddPage()
				currentPage = line.Page
			}
			style := ""
			if line.Bold {
				style = "B"
			}
			pdf.SetFont("Helvetica", style, line.Size)
			pdf.Text(leftMargin, line.Y, line.Text)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}

// Close is a no-op; the canvas backend holds no resources.
func (r *canvasRenderer) Close() error { return nil }

// textLine is one positioned line of body output.
// Page is 1-based; Y is the baseline in pt from the top edge.
type textLine struct {
	Page int
	Y    float64
	Text string
	Bold bool
	Size float64
}

// layoutBody computes the positioned lines for the body blocks on pages of
// the given height. The vertical cursor starts bodyTopOffset below the top;
// the overflow check runs before every emitted line, not once per block, so
// no line lands within bottomMargin of the page bottom.
func layoutBody(blocks []ContentBlock, pageHeight float64) []textLine {
	var lines []textLine
	limit := pageHeight - bottomMargin

	page := 1
	y := bodyTopOffset

	for _, b := range blocks {
		bold := b.Kind == KindHeading
		size := canvasBodyPt
		if bold {
			size = canvasHeadingPt
		}

		for _, text := range wrapText(b.Text, wrapWidth) {
			if y > limit {
				page++
				y = bodyTopOffset
			}
			lines = append(lines, textLine{Page: page, Y: y, Text: text, Bold: bold, Size: size})
			y += lineHeight
		}
		y += blockSpacing
	}

	return lines
}

// wrapText greedily wraps text at a character budget, preserving word
// boundaries. A single word longer than the budget is emitted unsplit.
func wrapText(text string, width int) []string {
	if len(text) <= width {
		return []string{text}
	}

	var lines []string
	var current strings.Builder

	for _, word := range strings.Fields(text) {
		if current.Len() > 0 && current.Len()+1+len(word) > width {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}

	return lines
}

// truncate hard-cuts s to at most n bytes.
func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// drawCentered draws s horizontally centered at baseline y.
func drawCentered(pdf *fpdf.Fpdf, pageWidth, y float64, s string) {
	x := (pageWidth - pdf.GetStringWidth(s)) / 2
	if x < 0 {
		x = 0
	}
	pdf.Text(x, y, s)
}
